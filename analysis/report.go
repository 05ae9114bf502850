// Package analysis computes summary measurements of rendered audio.
package analysis

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

const maxFFTSize = 16384

// Report contains summary measurements of a mono signal.
type Report struct {
	SampleRate    int     `json:"sample_rate"`
	Frames        int     `json:"frames"`
	DurationS     float64 `json:"duration_s"`
	RMS           float64 `json:"rms"`
	Peak          float64 `json:"peak"`
	ZeroCrossings int     `json:"zero_crossings"`
	DominantHz    float64 `json:"dominant_hz"`
}

// Analyze measures the signal. An empty signal yields a zero report.
func Analyze(samples []float32, sampleRate int) Report {
	r := Report{
		SampleRate: sampleRate,
		Frames:     len(samples),
	}
	if sampleRate > 0 {
		r.DurationS = float64(len(samples)) / float64(sampleRate)
	}
	if len(samples) == 0 {
		return r
	}
	r.RMS = RMS(samples)
	r.Peak = Peak(samples)
	r.ZeroCrossings = ZeroCrossings(samples)
	r.DominantHz = DominantFrequency(samples, sampleRate)
	return r
}

// RMS returns the root mean square level of the signal.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, v := range samples {
		f := float64(v)
		sum += f * f
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// Peak returns the largest absolute sample value.
func Peak(samples []float32) float64 {
	var peak float64
	for _, v := range samples {
		if a := math.Abs(float64(v)); a > peak {
			peak = a
		}
	}
	return peak
}

// ZeroCrossings counts sign changes between consecutive samples.
func ZeroCrossings(samples []float32) int {
	crossings := 0
	for i := 1; i < len(samples); i++ {
		if (samples[i-1] >= 0) != (samples[i] >= 0) {
			crossings++
		}
	}
	return crossings
}

// DominantFrequency returns the frequency of the strongest spectral bin
// of a Hann-windowed FFT over the head of the signal. Returns 0 when the
// signal is too short or silent.
func DominantFrequency(samples []float32, sampleRate int) float64 {
	if sampleRate <= 0 || len(samples) < 32 {
		return 0
	}
	fftSize := 32
	for fftSize*2 <= len(samples) && fftSize < maxFFTSize {
		fftSize *= 2
	}
	plan, err := algofft.NewPlanReal64(fftSize)
	if err != nil {
		return 0
	}

	buf := make([]float64, fftSize)
	for i := range buf {
		w := 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(fftSize-1))
		buf[i] = float64(samples[i]) * w
	}
	spec := make([]complex128, fftSize/2+1)
	plan.Forward(spec, buf)

	bestBin := 0
	bestMag := 0.0
	for k := 1; k < fftSize/2; k++ {
		if m := cmplx.Abs(spec[k]); m > bestMag {
			bestMag = m
			bestBin = k
		}
	}
	if bestBin == 0 || bestMag < 1e-9 {
		return 0
	}
	return float64(bestBin) * float64(sampleRate) / float64(fftSize)
}
