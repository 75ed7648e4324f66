package photometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skyward-labs/skykit/pkg/photometry"
)

func TestReferenceFlux(t *testing.T) {
	t.Parallel()

	// The exact reference flux is close to, but not exactly, 3631 Jy.
	assert.InDelta(t, 3631e9, photometry.ReferenceFlux, 1e9)
}

func TestABMagnitudeFromNanojansky(t *testing.T) {
	t.Parallel()

	// The reference flux is magnitude zero.
	assert.InDelta(t, 0, photometry.ABMagnitudeFromNanojansky(photometry.ReferenceFlux), 1e-12)

	// One hundred times fainter is five magnitudes fainter.
	assert.InDelta(t, 5, photometry.ABMagnitudeFromNanojansky(photometry.ReferenceFlux/100), 1e-12)

	// 1 nJy is close to magnitude 31.4.
	assert.InDelta(t, 31.4, photometry.ABMagnitudeFromNanojansky(1.0), 0.01)
}

func TestNanojanskyFromABMagnitude(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, photometry.ReferenceFlux, photometry.NanojanskyFromABMagnitude(0), 1)
	assert.InDelta(t, photometry.ReferenceFlux/100, photometry.NanojanskyFromABMagnitude(5), 1)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, mag := range []float64{-5, 0, 12.5, 24, 31.4} {
		flux := photometry.NanojanskyFromABMagnitude(mag)
		got := photometry.ABMagnitudeFromNanojansky(flux)
		assert.InDelta(t, mag, got, 1e-10, "mag %v", mag)
	}

	assert.True(t, math.IsInf(photometry.ABMagnitudeFromNanojansky(0), 1), "zero flux is infinitely faint")
}
