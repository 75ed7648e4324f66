// Package photometry converts between flux in nanojansky and AB magnitude.
//
// The conversions use the Oke & Gunn (1983) AB magnitude reference flux,
// often approximated as 3631 Jy:
//
//	mag := photometry.ABMagnitudeFromNanojansky(flux)
//	flux := photometry.NanojanskyFromABMagnitude(mag)
package photometry
