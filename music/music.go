// Package music holds the note and scale types shared by the synthesis
// and composition packages, plus the error taxonomy surfaced to callers.
package music

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-approx"
)

var (
	// ErrInvalidParameter marks per-call parameter violations such as a
	// non-positive frequency or an out-of-range velocity.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidConfiguration marks unusable process-wide configuration
	// such as an empty transition table or a malformed instrument recipe.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrUnknownEmotion marks an unresolvable emotion profile name.
	ErrUnknownEmotion = errors.New("unknown emotion")
)

// Note is one melody event. Immutable once produced.
type Note struct {
	Pitch    int     // MIDI note number
	Duration float64 // seconds
	Velocity float64 // amplitude scalar in [0,1]
}

// Frequency returns the note's fundamental in Hz.
func (n Note) Frequency() float64 {
	return PitchToFreq(n.Pitch)
}

// PitchToFreq converts a MIDI note number to frequency in Hz (A4 = 440 Hz).
func PitchToFreq(pitch int) float64 {
	const a4Freq = 440.0
	const a4Pitch = 69
	exponent := float32(pitch-a4Pitch) / 12.0
	return float64(a4Freq * pow2Approx(exponent))
}

func pow2Approx(x float32) float32 {
	const ln2 = 0.69314718055994530942
	return approx.FastExp(x * ln2)
}

var classOffsets = map[byte]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// ParseClass converts a pitch-class name like "C", "Db" or "F#" to its
// semitone offset 0-11.
func ParseClass(name string) (int, error) {
	s := strings.TrimSpace(name)
	if len(s) == 0 {
		return 0, fmt.Errorf("empty pitch class: %w", ErrInvalidParameter)
	}
	off, ok := classOffsets[s[0]&^0x20]
	if !ok {
		return 0, fmt.Errorf("pitch class %q: %w", name, ErrInvalidParameter)
	}
	switch s[1:] {
	case "":
	case "b":
		off--
	case "#":
		off++
	default:
		return 0, fmt.Errorf("pitch class %q: %w", name, ErrInvalidParameter)
	}
	return (off + 12) % 12, nil
}

// ParsePitch converts a note name like "C4", "Bb4" or "F#3" to a MIDI
// note number (C4 = 60).
func ParsePitch(name string) (int, error) {
	s := strings.TrimSpace(name)
	i := len(s)
	for i > 0 && (s[i-1] == '-' || (s[i-1] >= '0' && s[i-1] <= '9')) {
		i--
	}
	if i == 0 || i == len(s) {
		return 0, fmt.Errorf("note name %q: %w", name, ErrInvalidParameter)
	}
	class, err := ParseClass(s[:i])
	if err != nil {
		return 0, fmt.Errorf("note name %q: %w", name, ErrInvalidParameter)
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, fmt.Errorf("note name %q: %w", name, ErrInvalidParameter)
	}
	pitch := (octave+1)*12 + class
	if pitch < 0 || pitch > 127 {
		return 0, fmt.Errorf("note name %q out of MIDI range: %w", name, ErrInvalidParameter)
	}
	return pitch, nil
}

// MustPitch is ParsePitch for compiled-in tables; it panics on bad names.
func MustPitch(name string) int {
	p, err := ParsePitch(name)
	if err != nil {
		panic(err)
	}
	return p
}

// Scale is a set of allowed pitch classes.
type Scale struct {
	classes [12]bool
}

// NewScale builds a scale from semitone classes (0 = C).
func NewScale(classes ...int) Scale {
	var s Scale
	for _, c := range classes {
		s.classes[((c%12)+12)%12] = true
	}
	return s
}

// Empty reports whether the scale admits no pitch class.
func (s Scale) Empty() bool {
	for _, ok := range s.classes {
		if ok {
			return false
		}
	}
	return true
}

// Contains reports whether the pitch's class is in the scale.
func (s Scale) Contains(pitch int) bool {
	return s.classes[((pitch%12)+12)%12]
}

// Nearest returns the in-scale pitch closest to pitch, preferring the
// lower pitch on ties. An empty scale returns the pitch unchanged.
func (s Scale) Nearest(pitch int) int {
	if s.Empty() || s.Contains(pitch) {
		return pitch
	}
	for d := 1; d < 12; d++ {
		if p := pitch - d; p >= 0 && s.Contains(p) {
			return p
		}
		if p := pitch + d; p <= 127 && s.Contains(p) {
			return p
		}
	}
	return pitch
}
