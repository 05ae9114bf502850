// Package synth shapes raw oscillator output into instrument voices and
// renders note sequences to continuous sample buffers.
package synth

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-synth/music"
	"github.com/cwbudde/algo-synth/osc"
)

// Instrument selects a built-in timbre.
type Instrument int

const (
	Piano Instrument = iota
	Flute
	Pad
	Bass
)

func (i Instrument) String() string {
	switch i {
	case Piano:
		return "piano"
	case Flute:
		return "flute"
	case Pad:
		return "pad"
	case Bass:
		return "bass"
	}
	return fmt.Sprintf("instrument(%d)", int(i))
}

// ParseInstrument converts an instrument name to its Instrument.
func ParseInstrument(name string) (Instrument, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "piano":
		return Piano, nil
	case "flute":
		return Flute, nil
	case "pad":
		return Pad, nil
	case "bass":
		return Bass, nil
	}
	return 0, fmt.Errorf("instrument %q: %w", name, music.ErrInvalidParameter)
}

// Partial is one oscillator layer in a recipe. Gain scales the layer in
// (0,1], Ratio multiplies the note's fundamental frequency.
type Partial struct {
	Kind  osc.Kind
	Gain  float64
	Ratio float64
}

// Envelope is a linear ADSR. Attack, Decay and Release are fractions of
// the note duration; Sustain is the hold level in [0,1].
type Envelope struct {
	Attack  float64
	Decay   float64
	Sustain float64
	Release float64
}

// Gain returns the envelope multiplier at progress p in [0,1).
func (e Envelope) Gain(p float64) float64 {
	switch {
	case p < e.Attack:
		return p / e.Attack
	case p < e.Attack+e.Decay:
		return 1 - (p-e.Attack)/e.Decay*(1-e.Sustain)
	case p < 1-e.Release:
		return e.Sustain
	default:
		return e.Sustain * (1 - (p-(1-e.Release))/e.Release)
	}
}

// Recipe is the declarative description of an instrument timbre.
// DecayRate adds an exponential amplitude decay (per second) on top of
// the ADSR for percussive voices; zero leaves the ADSR alone.
type Recipe struct {
	Partials  []Partial
	Env       Envelope
	DecayRate float64
}

// Validate reports whether the recipe is renderable.
func (r Recipe) Validate() error {
	if len(r.Partials) == 0 {
		return fmt.Errorf("recipe has no partials: %w", music.ErrInvalidConfiguration)
	}
	for i, p := range r.Partials {
		if p.Gain <= 0 || p.Gain > 1 {
			return fmt.Errorf("partial %d gain %g not in (0,1]: %w", i, p.Gain, music.ErrInvalidConfiguration)
		}
		if p.Kind != osc.Noise && p.Ratio <= 0 {
			return fmt.Errorf("partial %d ratio %g not positive: %w", i, p.Ratio, music.ErrInvalidConfiguration)
		}
	}
	e := r.Env
	if e.Attack < 0 || e.Decay < 0 || e.Release < 0 || e.Attack+e.Decay+e.Release > 1 {
		return fmt.Errorf("envelope fractions %+v exceed the note: %w", e, music.ErrInvalidConfiguration)
	}
	if e.Sustain < 0 || e.Sustain > 1 {
		return fmt.Errorf("sustain level %g not in [0,1]: %w", e.Sustain, music.ErrInvalidConfiguration)
	}
	if r.DecayRate < 0 {
		return fmt.Errorf("decay rate %g negative: %w", r.DecayRate, music.ErrInvalidConfiguration)
	}
	return nil
}

// Harmonic stacks and decay rates follow the classic additive recipes:
// piano is a 1/2/3 harmonic stack with a fast exponential decay, flute a
// near-pure tone, pad a sub-octave chorus with slow attack, bass a
// sub-octave fundamental with a square edge.
var recipes = map[Instrument]Recipe{
	Piano: {
		Partials: []Partial{
			{Kind: osc.Sine, Gain: 1.0, Ratio: 1.0},
			{Kind: osc.Sine, Gain: 0.5, Ratio: 2.0},
			{Kind: osc.Sine, Gain: 0.25, Ratio: 3.0},
		},
		Env:       Envelope{Attack: 0.01, Decay: 0.2, Sustain: 0.6, Release: 0.2},
		DecayRate: 3.0,
	},
	Flute: {
		Partials: []Partial{
			{Kind: osc.Sine, Gain: 1.0, Ratio: 1.0},
			{Kind: osc.Triangle, Gain: 0.15, Ratio: 2.0},
		},
		Env:       Envelope{Attack: 0.08, Decay: 0.1, Sustain: 0.85, Release: 0.15},
		DecayRate: 0.8,
	},
	Pad: {
		Partials: []Partial{
			{Kind: osc.Sine, Gain: 0.6, Ratio: 1.0},
			{Kind: osc.Sine, Gain: 0.3, Ratio: 0.5},
			{Kind: osc.Sine, Gain: 0.2, Ratio: 1.5},
		},
		Env: Envelope{Attack: 0.25, Decay: 0.1, Sustain: 0.8, Release: 0.3},
	},
	Bass: {
		Partials: []Partial{
			{Kind: osc.Sine, Gain: 1.0, Ratio: 0.5},
			{Kind: osc.Square, Gain: 0.12, Ratio: 0.5},
		},
		Env:       Envelope{Attack: 0.02, Decay: 0.15, Sustain: 0.7, Release: 0.2},
		DecayRate: 1.5,
	},
}

// RecipeFor returns a copy of the instrument's recipe.
func RecipeFor(i Instrument) (Recipe, error) {
	r, ok := recipes[i]
	if !ok {
		return Recipe{}, fmt.Errorf("instrument %v has no recipe: %w", i, music.ErrInvalidConfiguration)
	}
	out := r
	out.Partials = append([]Partial(nil), r.Partials...)
	return out, nil
}

// SetRecipe replaces an instrument's recipe. Intended for preset loading
// during process initialization; recipes are read-only afterwards.
func SetRecipe(i Instrument, r Recipe) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if _, ok := recipes[i]; !ok {
		return fmt.Errorf("instrument %v has no recipe: %w", i, music.ErrInvalidConfiguration)
	}
	r.Partials = append([]Partial(nil), r.Partials...)
	recipes[i] = r
	return nil
}
