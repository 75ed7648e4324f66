// Package powfast approximates exponential functions using bit manipulation
// of IEEE 754 floats and a small mantissa lookup table.
//
// The technique follows Schraudolph's fast exponential approximation with
// the adjustable-accuracy mantissa table of Vinyals, Friedland and
// Mirghafori. Accuracy is tuned by the table precision (0 to 18 mantissa
// bits); higher precision costs memory (4 bytes per table entry) but not
// speed.
//
// # Usage
//
//	p := powfast.New(11)
//	y := p.Exp(1.0)      // ~ e
//	y = p.Two(10)        // ~ 1024
//	y = p.Ten(-3)        // ~ 0.001
//	y = p.Pow(2.5, 1.5)  // ~ 2.5^1.5
//
// The approximation is valid for exponents that keep the result within the
// normal float32 range; far outside it the result is undefined.
package powfast
