// Package beat renders simple percussion patterns from step sequences.
package beat

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-approx"
	dspcore "github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-synth/dsp"
	"github.com/cwbudde/algo-synth/music"
)

// Step is one slot in a percussion pattern.
type Step int

const (
	StepRest Step = iota
	StepKick
	StepSnare
)

func (s Step) String() string {
	switch s {
	case StepRest:
		return "rest"
	case StepKick:
		return "kick"
	case StepSnare:
		return "snare"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// Source yields uniform random values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// ParsePattern parses a comma-separated step list such as
// "kick,rest,snare,rest". Surrounding whitespace is ignored.
func ParsePattern(s string) ([]Step, error) {
	fields := strings.Split(s, ",")
	out := make([]Step, 0, len(fields))
	for _, f := range fields {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "", "rest", "-":
			out = append(out, StepRest)
		case "kick":
			out = append(out, StepKick)
		case "snare":
			out = append(out, StepSnare)
		default:
			return nil, fmt.Errorf("beat step %q: %w", f, music.ErrInvalidParameter)
		}
	}
	return out, nil
}

// Kick renders a low sine thump with a fast exponential decay.
func Kick(duration float64, sampleRate int) []float32 {
	n := int(math.Round(duration * float64(sampleRate)))
	out := make([]float32, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		env := float64(approx.FastExp(float32(-8 * t)))
		v := math.Sin(2*math.Pi*60*t) * env
		out[i] = float32(dspcore.FlushDenormals(v))
	}
	return out
}

// Snare renders a burst of white noise with a sharp decay, lowpassed to
// take the edge off the raw noise.
func Snare(duration float64, sampleRate int, rng Source) []float32 {
	n := int(math.Round(duration * float64(sampleRate)))
	out := make([]float32, n)
	lp := dsp.NewLowpass(7000, float32(sampleRate), 0.707)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		env := float64(approx.FastExp(float32(-20 * t)))
		v := (2*rng.Float64() - 1) * env
		s := lp.Process(float32(dspcore.FlushDenormals(v)))
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		out[i] = s
	}
	return out
}

// Render concatenates the pattern at the given tempo. Each step occupies
// one beat of 60/tempoBPM seconds; hits fill half of their slot.
func Render(steps []Step, tempoBPM float64, sampleRate int, rng Source) ([]float32, error) {
	if tempoBPM <= 0 {
		return nil, fmt.Errorf("tempo %g bpm: %w", tempoBPM, music.ErrInvalidParameter)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", sampleRate, music.ErrInvalidParameter)
	}
	unit := 60 / tempoBPM
	slot := int(math.Round(unit * float64(sampleRate)))
	out := make([]float32, 0, slot*len(steps))
	for _, step := range steps {
		buf := make([]float32, slot)
		var hit []float32
		switch step {
		case StepRest:
		case StepKick:
			hit = Kick(unit/2, sampleRate)
		case StepSnare:
			if rng == nil {
				return nil, fmt.Errorf("snare step without random source: %w", music.ErrInvalidParameter)
			}
			hit = Snare(unit/2, sampleRate, rng)
		default:
			return nil, fmt.Errorf("beat step %d: %w", int(step), music.ErrInvalidParameter)
		}
		copy(buf, hit)
		out = append(out, buf...)
	}
	return out, nil
}
