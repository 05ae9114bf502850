// Package dsp provides small filter primitives for shaping rendered audio.
package dsp

import "math"

// Biquad is a second-order IIR filter (no heap allocations in Process).
type Biquad struct {
	b0, b1, b2 float32
	a1, a2     float32

	x1, x2 float32
	y1, y2 float32
}

// NewLowpass builds a biquad lowpass at the given cutoff using the RBJ
// cookbook coefficients.
func NewLowpass(cutoff, sampleRate, q float32) *Biquad {
	omega := 2 * math.Pi * float64(cutoff) / float64(sampleRate)
	sn := float32(math.Sin(omega))
	cs := float32(math.Cos(omega))
	alpha := sn / (2 * q)

	b0 := (1 - cs) / 2
	b1 := 1 - cs
	b2 := (1 - cs) / 2
	a0 := 1 + alpha
	a1 := -2 * cs
	a2 := 1 - alpha

	return &Biquad{
		b0: b0 / a0,
		b1: b1 / a0,
		b2: b2 / a0,
		a1: a1 / a0,
		a2: a2 / a0,
	}
}

// Process runs one sample through the filter, Direct Form I.
func (b *Biquad) Process(input float32) float32 {
	output := b.b0*input + b.b1*b.x1 + b.b2*b.x2 - b.a1*b.y1 - b.a2*b.y2
	b.x2 = b.x1
	b.x1 = input
	b.y2 = b.y1
	b.y1 = output
	return output
}

// Reset clears the filter state.
func (b *Biquad) Reset() {
	b.x1, b.x2 = 0, 0
	b.y1, b.y2 = 0, 0
}
