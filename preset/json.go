// Package preset loads JSON preset files that override instrument
// recipes, register emotion profiles and replace the melody model's
// training data.
package preset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/cwbudde/algo-synth/emotion"
	"github.com/cwbudde/algo-synth/melody"
	"github.com/cwbudde/algo-synth/music"
	"github.com/cwbudde/algo-synth/osc"
	"github.com/cwbudde/algo-synth/synth"
)

// File is the JSON schema for studio presets.
type File struct {
	Instruments map[string]InstrumentSetting  `json:"instruments"`
	Emotions    map[string]EmotionSetting     `json:"emotions"`
	Melody      map[string]map[string]float64 `json:"melody"`
}

// InstrumentSetting is a partial instrument override entry.
type InstrumentSetting struct {
	Partials  []PartialSetting `json:"partials"`
	Envelope  *EnvelopeSetting `json:"envelope"`
	DecayRate *float64         `json:"decay_rate"`
}

// PartialSetting describes one partial of an instrument recipe.
type PartialSetting struct {
	Wave  string  `json:"wave"`
	Gain  float64 `json:"gain"`
	Ratio float64 `json:"ratio"`
}

// EnvelopeSetting carries ADSR stage fractions.
type EnvelopeSetting struct {
	Attack  float64 `json:"attack"`
	Decay   float64 `json:"decay"`
	Sustain float64 `json:"sustain"`
	Release float64 `json:"release"`
}

// EmotionSetting describes a full emotion profile.
type EmotionSetting struct {
	Scale         []int    `json:"scale"`
	DurationScale float64  `json:"duration_scale"`
	Pattern       []string `json:"pattern"`
	Instrument    string   `json:"instrument"`
}

// LoadJSON loads a preset file and applies it. The returned transition
// table is nil when the file carries no melody section.
func LoadJSON(path string) (melody.TransitionTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return ApplyFile(&f)
}

// ApplyFile applies a parsed preset: instrument overrides via
// synth.SetRecipe, emotion profiles via emotion.Register. Returns the
// melody transition table, if any.
func ApplyFile(f *File) (melody.TransitionTable, error) {
	if f == nil {
		return nil, nil
	}

	names := make([]string, 0, len(f.Instruments))
	for name := range f.Instruments {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		inst, err := synth.ParseInstrument(name)
		if err != nil {
			return nil, fmt.Errorf("instruments[%s]: %w", name, err)
		}
		recipe, err := synth.RecipeFor(inst)
		if err != nil {
			return nil, err
		}
		if err := applyInstrument(&recipe, f.Instruments[name]); err != nil {
			return nil, fmt.Errorf("instruments[%s]: %w", name, err)
		}
		if err := synth.SetRecipe(inst, recipe); err != nil {
			return nil, fmt.Errorf("instruments[%s]: %w", name, err)
		}
	}

	names = names[:0]
	for name := range f.Emotions {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		profile, err := buildProfile(name, f.Emotions[name])
		if err != nil {
			return nil, fmt.Errorf("emotions[%s]: %w", name, err)
		}
		if err := emotion.Register(profile); err != nil {
			return nil, fmt.Errorf("emotions[%s]: %w", name, err)
		}
	}

	if len(f.Melody) == 0 {
		return nil, nil
	}
	table := make(melody.TransitionTable, len(f.Melody))
	for from, row := range f.Melody {
		fromPitch, err := music.ParsePitch(from)
		if err != nil {
			return nil, fmt.Errorf("melody[%s]: %w", from, err)
		}
		out := make(map[int]float64, len(row))
		for to, w := range row {
			toPitch, err := music.ParsePitch(to)
			if err != nil {
				return nil, fmt.Errorf("melody[%s][%s]: %w", from, to, err)
			}
			if w < 0 {
				return nil, fmt.Errorf("melody[%s][%s] weight %g: %w", from, to, w, music.ErrInvalidConfiguration)
			}
			out[toPitch] = w
		}
		table[fromPitch] = out
	}
	return table, nil
}

func applyInstrument(dst *synth.Recipe, s InstrumentSetting) error {
	if len(s.Partials) > 0 {
		partials := make([]synth.Partial, len(s.Partials))
		for i, p := range s.Partials {
			kind, err := osc.ParseKind(p.Wave)
			if err != nil {
				return fmt.Errorf("partial %d: %w", i, err)
			}
			partials[i] = synth.Partial{Kind: kind, Gain: p.Gain, Ratio: p.Ratio}
		}
		dst.Partials = partials
	}
	if s.Envelope != nil {
		dst.Env = synth.Envelope{
			Attack:  s.Envelope.Attack,
			Decay:   s.Envelope.Decay,
			Sustain: s.Envelope.Sustain,
			Release: s.Envelope.Release,
		}
	}
	if s.DecayRate != nil {
		dst.DecayRate = *s.DecayRate
	}
	return dst.Validate()
}

func buildProfile(name string, s EmotionSetting) (emotion.Profile, error) {
	inst := synth.Piano
	if s.Instrument != "" {
		var err error
		inst, err = synth.ParseInstrument(s.Instrument)
		if err != nil {
			return emotion.Profile{}, err
		}
	}
	pattern := make([]int, len(s.Pattern))
	for i, n := range s.Pattern {
		pitch, err := music.ParsePitch(n)
		if err != nil {
			return emotion.Profile{}, fmt.Errorf("pattern[%d]: %w", i, err)
		}
		pattern[i] = pitch
	}
	scale := s.DurationScale
	if scale == 0 {
		scale = 1
	}
	return emotion.Profile{
		Name:          name,
		Scale:         music.NewScale(s.Scale...),
		DurationScale: scale,
		Pattern:       pattern,
		Instrument:    inst,
	}, nil
}
