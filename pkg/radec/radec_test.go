package radec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyward-labs/skykit/pkg/radec"
)

func TestFormatRADeg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raDeg float64
		want  string
	}{
		{0, " 0:00: 0.00"},
		{15, " 1:00: 0.00"},
		{186.65, "12:26:36.00"},
		{359.99999, "23:59:60.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, radec.FormatRADeg(tt.raDeg), "ra %v", tt.raDeg)
	}
}

func TestFormatDecDeg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		decDeg float64
		want   string
	}{
		{0, "+ 0:00:00.00"},
		{-32.5, "-32:30:00.00"},
		{41.2625, "+41:15:45.00"},
		{-0.5, "- 0:30:00.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, radec.FormatDecDeg(tt.decDeg), "dec %v", tt.decDeg)
	}
}

func TestFormatPair(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "12:26:36.00 -32:30:00.00", radec.FormatRADecDeg(186.65, -32.5))
}

func TestRadianForms(t *testing.T) {
	t.Parallel()

	assert.Equal(t, radec.FormatRADeg(180), radec.FormatRARad(math.Pi))
	assert.Equal(t, radec.FormatDecDeg(-90), radec.FormatDecRad(-math.Pi/2))
}

func TestParseRADeg(t *testing.T) {
	t.Parallel()

	deg, err := radec.ParseRADeg("12:26:36.00")
	require.NoError(t, err)
	assert.InDelta(t, 186.65, deg, 1e-9)

	t.Run("custom delimiter", func(t *testing.T) {
		deg, err := radec.ParseRADeg("12 26 36.00", radec.WithDelimiter(" "))
		require.NoError(t, err)
		assert.InDelta(t, 186.65, deg, 1e-9)
	})

	t.Run("whole string must match", func(t *testing.T) {
		_, err := radec.ParseRADeg("12:26:36.00 junk")
		require.ErrorIs(t, err, radec.ErrParse)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := radec.ParseRADeg("not a coordinate")
		require.ErrorIs(t, err, radec.ErrParse)
	})
}

func TestParseDecDeg(t *testing.T) {
	t.Parallel()

	deg, err := radec.ParseDecDeg("+41:15:45.00")
	require.NoError(t, err)
	assert.InDelta(t, 41.2625, deg, 1e-9)

	t.Run("negative", func(t *testing.T) {
		deg, err := radec.ParseDecDeg("-32:30:00.00")
		require.NoError(t, err)
		assert.InDelta(t, -32.5, deg, 1e-9)
	})

	t.Run("negative zero degrees", func(t *testing.T) {
		deg, err := radec.ParseDecDeg("-00:30:00")
		require.NoError(t, err)
		assert.InDelta(t, -0.5, deg, 1e-9)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := radec.ParseDecDeg("north a bit")
		require.ErrorIs(t, err, radec.ErrParse)
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	for _, ra := range []float64{0.25, 15, 186.65, 273.9} {
		s := radec.FormatRADeg(ra)
		got, err := radec.ParseRADeg(s)
		require.NoError(t, err, "formatted %q", s)
		assert.InDelta(t, ra, got, 0.01/3600*15, "ra %v via %q", ra, s)
	}

	for _, dec := range []float64{-89.9, -0.5, 0.25, 41.2625} {
		s := radec.FormatDecDeg(dec)
		got, err := radec.ParseDecDeg(s)
		require.NoError(t, err, "formatted %q", s)
		assert.InDelta(t, dec, got, 0.01/3600, "dec %v via %q", dec, s)
	}
}
