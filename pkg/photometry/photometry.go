package photometry

import "math"

// ReferenceFlux is the Oke & Gunn (1983) AB magnitude reference flux in
// nanojansky (often approximated as 3631e9).
var ReferenceFlux = 1e23 * math.Pow(10, 48.6/-2.5) * 1e9

// ABMagnitudeFromNanojansky converts a flux in nanojansky to AB magnitude.
func ABMagnitudeFromNanojansky(flux float64) float64 {
	return -2.5 * math.Log10(flux/ReferenceFlux)
}

// NanojanskyFromABMagnitude converts an AB magnitude to a flux in
// nanojansky.
func NanojanskyFromABMagnitude(magnitude float64) float64 {
	return math.Pow(10, magnitude/-2.5) * ReferenceFlux
}
