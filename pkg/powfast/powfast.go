package powfast

import "math"

const (
	// twoP23 is 2^23, the float32 mantissa scale.
	twoP23 = 8388608.0

	// maxPrecision is the largest usable table precision in mantissa bits.
	maxPrecision = 18

	// invLog2E is 1/ln(2); invLog2Ten is log2(10).
	invLog2E   = 1.44269504088896
	invLog2Ten = 3.32192809488736
)

// PowFast approximates radix^x via a precision-bit mantissa lookup table.
// Construct with New; safe for concurrent use once built.
type PowFast struct {
	precision uint
	table     []uint32
}

// New builds the lookup table for the given precision in mantissa bits.
// Precisions above 18 are clamped to 18.
func New(precision uint) *PowFast {
	if precision > maxPrecision {
		precision = maxPrecision
	}

	table := make([]uint32, 1<<precision)
	zeroToOne := 1.0 / (float64(int(1)<<precision) * 2.0)
	for i := range table {
		f := (math.Pow(2.0, zeroToOne) - 1.0) * twoP23
		if f >= twoP23 {
			f = twoP23 - 1.0
		}
		table[i] = uint32(f)
		zeroToOne += 1.0 / float64(int(1)<<precision)
	}

	return &PowFast{precision: precision, table: table}
}

// Two approximates 2^x.
func (p *PowFast) Two(x float32) float32 {
	return p.lookup(x, 1.0)
}

// Exp approximates e^x.
func (p *PowFast) Exp(x float32) float32 {
	return p.lookup(x, invLog2E)
}

// Ten approximates 10^x.
func (p *PowFast) Ten(x float32) float32 {
	return p.lookup(x, invLog2Ten)
}

// Pow approximates radix^x for a positive radix.
func (p *PowFast) Pow(radix, x float32) float32 {
	return p.lookup(x, float32(math.Log(float64(radix)))*invLog2E)
}

// Precision returns the table precision in mantissa bits.
func (p *PowFast) Precision() uint {
	return p.precision
}

// lookup builds the float bits directly: the integer part of the scaled
// exponent becomes the biased float exponent, and the fractional part is
// replaced by the tabulated 2^frac mantissa.
func (p *PowFast) lookup(x, ilog2 float32) float32 {
	i := int32(x*(twoP23*ilog2) + 127.0*twoP23)
	bits := (uint32(i) & 0xFF800000) | p.table[(uint32(i)&0x7FFFFF)>>(23-p.precision)]
	return math.Float32frombits(bits)
}
