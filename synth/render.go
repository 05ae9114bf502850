package synth

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-approx"
	dspcore "github.com/cwbudde/algo-dsp/dsp/core"

	"github.com/cwbudde/algo-synth/music"
	"github.com/cwbudde/algo-synth/osc"
)

// Renderer turns notes into sample buffers for one instrument. It keeps
// one oscillator per partial so consecutive notes join phase-continuously.
type Renderer struct {
	sampleRate int
	recipe     Recipe
	oscs       []*osc.Oscillator
}

// NewRenderer creates a renderer for a built-in instrument.
func NewRenderer(inst Instrument, sampleRate int, rng osc.Source) (*Renderer, error) {
	recipe, err := RecipeFor(inst)
	if err != nil {
		return nil, err
	}
	return NewRecipeRenderer(recipe, sampleRate, rng)
}

// NewRecipeRenderer creates a renderer for an explicit recipe.
func NewRecipeRenderer(recipe Recipe, sampleRate int, rng osc.Source) (*Renderer, error) {
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	r := &Renderer{sampleRate: sampleRate, recipe: recipe}
	for range recipe.Partials {
		o, err := osc.NewOscillator(sampleRate, rng)
		if err != nil {
			return nil, err
		}
		r.oscs = append(r.oscs, o)
	}
	return r, nil
}

// RenderNote renders one note through the instrument's harmonic recipe
// and envelope. The buffer holds exactly round(Duration*sampleRate)
// samples and stays within [-1, 1].
func (r *Renderer) RenderNote(n music.Note) ([]float32, error) {
	return r.RenderFrequency(n.Frequency(), n.Duration, n.Velocity)
}

// RenderFrequency is RenderNote for a raw fundamental in Hz.
func (r *Renderer) RenderFrequency(freqHz, duration, velocity float64) ([]float32, error) {
	if velocity < 0 || velocity > 1 {
		return nil, fmt.Errorf("velocity %g not in [0,1]: %w", velocity, music.ErrInvalidParameter)
	}
	if duration < 0 {
		return nil, fmt.Errorf("duration %g s: %w", duration, music.ErrInvalidParameter)
	}
	n := int(math.Round(duration * float64(r.sampleRate)))
	mix := make([]float32, n)
	if n == 0 {
		return mix, nil
	}

	for pi, p := range r.recipe.Partials {
		buf, err := r.oscs[pi].Render(p.Kind, freqHz*p.Ratio, duration, p.Gain*velocity)
		if err != nil {
			return nil, err
		}
		for i := range mix {
			mix[i] += buf[i]
		}
	}

	for i := range mix {
		g := r.recipe.Env.Gain(float64(i) / float64(n))
		if r.recipe.DecayRate > 0 {
			t := float32(i) / float32(r.sampleRate)
			g *= float64(approx.FastExp(-float32(r.recipe.DecayRate) * t))
		}
		v := mix[i] * float32(g)
		v = float32(dspcore.FlushDenormals(float64(v)))
		mix[i] = clamp(v)
	}
	return mix, nil
}

// RenderPiece renders a note sequence to one continuous buffer, with the
// per-note buffers concatenated in order. An empty sequence yields an
// empty buffer.
func (r *Renderer) RenderPiece(notes []music.Note) ([]float32, error) {
	var total int
	for _, n := range notes {
		if l := int(math.Round(n.Duration * float64(r.sampleRate))); l > 0 {
			total += l
		}
	}
	out := make([]float32, 0, total)
	for _, n := range notes {
		buf, err := r.RenderNote(n)
		if err != nil {
			return nil, err
		}
		out = append(out, buf...)
	}
	return out, nil
}

// RenderPiece is the convenience form for a built-in instrument.
func RenderPiece(notes []music.Note, inst Instrument, sampleRate int, rng osc.Source) ([]float32, error) {
	r, err := NewRenderer(inst, sampleRate, rng)
	if err != nil {
		return nil, err
	}
	return r.RenderPiece(notes)
}

func clamp(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
