// Package emotion maps mood names onto melody-model parameters: a scale
// the melody is confined to, a duration scaling, a transition weight bias
// and a seed pattern the profile's transition table is trained on.
package emotion

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-synth/melody"
	"github.com/cwbudde/algo-synth/music"
	"github.com/cwbudde/algo-synth/synth"
)

// Bias factors applied to candidate weights relative to the profile scale.
const (
	inScaleBoost = 4.0
	outScaleCut  = 0.25
)

// Profile is a named emotional coloring. Profiles are immutable and
// selected by name.
type Profile struct {
	Name          string
	Scale         music.Scale
	DurationScale float64
	Pattern       []int
	Instrument    synth.Instrument
}

// Bias returns the weight bias pulling candidates into the scale.
func (p Profile) Bias() melody.WeightBias {
	return func(pitch int, w float64) float64 {
		if p.Scale.Contains(pitch) {
			return w * inScaleBoost
		}
		return w * outScaleCut
	}
}

// Remap snaps a pitch to the nearest pitch in the profile's scale.
func (p Profile) Remap(pitch int) int {
	return p.Scale.Nearest(pitch)
}

// Table returns a transition table trained on the profile's pattern.
func (p Profile) Table() melody.TransitionTable {
	return melody.Train(p.Pattern)
}

func (p Profile) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("profile without name: %w", music.ErrInvalidConfiguration)
	}
	if p.Scale.Empty() {
		return fmt.Errorf("profile %q has an empty scale: %w", p.Name, music.ErrInvalidConfiguration)
	}
	if p.DurationScale <= 0 {
		return fmt.Errorf("profile %q duration scale %g: %w", p.Name, p.DurationScale, music.ErrInvalidConfiguration)
	}
	if len(p.Pattern) < 2 {
		return fmt.Errorf("profile %q pattern too short: %w", p.Name, music.ErrInvalidConfiguration)
	}
	for _, pitch := range p.Pattern {
		if pitch < 0 || pitch > 127 {
			return fmt.Errorf("profile %q pattern pitch %d: %w", p.Name, pitch, music.ErrInvalidConfiguration)
		}
	}
	return nil
}

func pattern(names ...string) []int {
	out := make([]int, len(names))
	for i, name := range names {
		out[i] = music.MustPitch(name)
	}
	return out
}

// Seed patterns and instrument picks follow the classic mood presets:
// bright C-major arpeggios for happy, an A-minor lament for sad, a
// sevenths-laden line for romantic and a chromatic creep for suspense.
var profiles = map[string]Profile{
	"happy": {
		Name:          "happy",
		Scale:         music.NewScale(0, 2, 4, 5, 7, 9, 11), // C major
		DurationScale: 1.0,
		Pattern:       pattern("C4", "E4", "G4", "C5", "A4", "G4", "E4"),
		Instrument:    synth.Piano,
	},
	"sad": {
		Name:          "sad",
		Scale:         music.NewScale(9, 11, 0, 2, 4, 5, 8), // A harmonic minor
		DurationScale: 1.4,
		Pattern:       pattern("A3", "C4", "D4", "F4", "E4", "D4", "C4"),
		Instrument:    synth.Flute,
	},
	"romantic": {
		Name:          "romantic",
		Scale:         music.NewScale(0, 2, 4, 5, 7, 9, 11), // C major
		DurationScale: 1.15,
		Pattern:       pattern("C4", "E4", "G4", "B4", "A4", "G4", "E4", "D4"),
		Instrument:    synth.Piano,
	},
	"suspense": {
		Name:          "suspense",
		Scale:         music.NewScale(0, 1, 4, 6, 9, 10),
		DurationScale: 0.85,
		Pattern:       pattern("C4", "Db4", "E4", "Gb4", "A4", "Bb4", "C5"),
		Instrument:    synth.Flute,
	},
}

// Resolve returns the profile registered under name (case-insensitive).
func Resolve(name string) (Profile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("emotion %q: %w", name, music.ErrUnknownEmotion)
	}
	return p, nil
}

// Names returns the registered profile names, sorted.
func Names() []string {
	out := make([]string, 0, len(profiles))
	for name := range profiles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Register adds or replaces a profile. Intended for preset loading during
// process initialization; profiles are read-only afterwards.
func Register(p Profile) error {
	if err := p.validate(); err != nil {
		return err
	}
	p.Pattern = append([]int(nil), p.Pattern...)
	profiles[strings.ToLower(p.Name)] = p
	return nil
}
