// Package osc provides the raw waveform generators behind the instrument
// layer: phase-accumulating oscillators for the classic periodic shapes
// plus uniform noise.
package osc

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-synth/music"
)

// Kind selects the waveform shape.
type Kind int

const (
	Sine Kind = iota
	Square
	Sawtooth
	Triangle
	Noise
)

func (k Kind) String() string {
	switch k {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Sawtooth:
		return "sawtooth"
	case Triangle:
		return "triangle"
	case Noise:
		return "noise"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind converts a waveform name to its Kind. "saw" is accepted as a
// shorthand for sawtooth.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sine":
		return Sine, nil
	case "square":
		return Square, nil
	case "saw", "sawtooth":
		return Sawtooth, nil
	case "triangle":
		return Triangle, nil
	case "noise":
		return Noise, nil
	}
	return 0, fmt.Errorf("waveform %q: %w", name, music.ErrInvalidParameter)
}

// Source supplies random draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Oscillator renders waveforms at a fixed sample rate, keeping phase
// between calls so consecutive buffers join without discontinuities.
type Oscillator struct {
	sampleRate int
	phase      float64 // cycles, wrapped to [0,1)
	rng        Source
}

// NewOscillator creates an oscillator. rng is only consulted for Noise
// and may be nil when no noise is rendered.
func NewOscillator(sampleRate int, rng Source) (*Oscillator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", sampleRate, music.ErrInvalidParameter)
	}
	return &Oscillator{sampleRate: sampleRate, rng: rng}, nil
}

// Render produces round(duration*sampleRate) samples of the given
// waveform at amplitude in [0,1]. A zero duration yields an empty buffer.
// Noise ignores freqHz and consumes the oscillator's random source.
func (o *Oscillator) Render(kind Kind, freqHz, duration, amplitude float64) ([]float32, error) {
	switch kind {
	case Sine, Square, Sawtooth, Triangle, Noise:
	default:
		return nil, fmt.Errorf("waveform kind %d: %w", int(kind), music.ErrInvalidParameter)
	}
	if kind != Noise && freqHz <= 0 {
		return nil, fmt.Errorf("frequency %g Hz: %w", freqHz, music.ErrInvalidParameter)
	}
	if duration < 0 {
		return nil, fmt.Errorf("duration %g s: %w", duration, music.ErrInvalidParameter)
	}
	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("amplitude %g: %w", amplitude, music.ErrInvalidParameter)
	}
	n := int(math.Round(duration * float64(o.sampleRate)))
	out := make([]float32, n)
	if n == 0 {
		return out, nil
	}
	if kind == Noise {
		if o.rng == nil {
			return nil, fmt.Errorf("noise requires a random source: %w", music.ErrInvalidParameter)
		}
		for i := range out {
			out[i] = float32(amplitude * (2*o.rng.Float64() - 1))
		}
		return out, nil
	}
	inc := freqHz / float64(o.sampleRate)
	for i := range out {
		out[i] = float32(amplitude * sampleAt(kind, o.phase))
		o.phase += inc
		if o.phase >= 1 {
			o.phase -= math.Floor(o.phase)
		}
	}
	return out, nil
}

func sampleAt(kind Kind, phase float64) float64 {
	switch kind {
	case Sine:
		return math.Sin(2 * math.Pi * phase)
	case Square:
		if math.Sin(2*math.Pi*phase) >= 0 {
			return 1
		}
		return -1
	case Sawtooth:
		return 2*phase - 1
	case Triangle:
		if phase < 0.5 {
			return 4*phase - 1
		}
		return 3 - 4*phase
	}
	return 0
}

// Render is the stateless convenience form for a single buffer.
func Render(kind Kind, freqHz, duration float64, sampleRate int, amplitude float64, rng Source) ([]float32, error) {
	o, err := NewOscillator(sampleRate, rng)
	if err != nil {
		return nil, err
	}
	return o.Render(kind, freqHz, duration, amplitude)
}
