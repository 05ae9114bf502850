package dsp

import (
	"math"
	"testing"
)

func responseRMS(freq float32, f *Biquad) float64 {
	const rate = 44100
	const n = 44100
	var sum float64
	for i := 0; i < n; i++ {
		in := float32(math.Sin(2 * math.Pi * float64(freq) * float64(i) / rate))
		out := float64(f.Process(in))
		if i > n/10 {
			sum += out * out
		}
	}
	return math.Sqrt(sum / float64(n*9/10))
}

func TestLowpassAttenuatesHighFrequencies(t *testing.T) {
	low := responseRMS(200, NewLowpass(1000, 44100, 0.707))
	high := responseRMS(10000, NewLowpass(1000, 44100, 0.707))
	if high >= low/4 {
		t.Fatalf("lowpass: high band rms=%v low band rms=%v", high, low)
	}
}

func TestBiquadReset(t *testing.T) {
	f := NewLowpass(1000, 44100, 0.707)
	first := f.Process(1)
	f.Process(0.5)
	f.Reset()
	if got := f.Process(1); got != first {
		t.Fatalf("Reset: got=%v want=%v", got, first)
	}
}
