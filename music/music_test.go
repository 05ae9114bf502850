package music

import (
	"errors"
	"math"
	"testing"
)

func TestParsePitch(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"C4", 60},
		{"A4", 69},
		{"A3", 57},
		{"C5", 72},
		{"Db4", 61},
		{"Gb4", 66},
		{"Bb4", 70},
		{"F#3", 54},
	}
	for _, c := range cases {
		got, err := ParsePitch(c.name)
		if err != nil {
			t.Fatalf("ParsePitch(%q): %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("ParsePitch(%q): got=%d want=%d", c.name, got, c.want)
		}
	}
}

func TestParsePitchRejectsGarbage(t *testing.T) {
	for _, name := range []string{"", "4", "H4", "C", "Cx4", "C99"} {
		if _, err := ParsePitch(name); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("ParsePitch(%q): expected invalid parameter, got %v", name, err)
		}
	}
}

func TestPitchToFreqReference(t *testing.T) {
	if f := PitchToFreq(69); math.Abs(f-440.0) > 1.0 {
		t.Fatalf("A4 frequency: got=%f want=440", f)
	}
	if f := PitchToFreq(60); math.Abs(f-261.63) > 1.0 {
		t.Fatalf("C4 frequency: got=%f want=261.63", f)
	}
	// One octave doubles the frequency.
	lo, hi := PitchToFreq(57), PitchToFreq(69)
	if math.Abs(hi/lo-2.0) > 5e-3 {
		t.Fatalf("octave ratio: got=%f want=2", hi/lo)
	}
}

func TestScaleNearestCoversChromaticRange(t *testing.T) {
	major := NewScale(0, 2, 4, 5, 7, 9, 11)
	for pitch := 0; pitch <= 127; pitch++ {
		got := major.Nearest(pitch)
		if !major.Contains(got) {
			t.Fatalf("Nearest(%d)=%d is not in scale", pitch, got)
		}
		if d := got - pitch; d < -2 || d > 2 {
			t.Fatalf("Nearest(%d)=%d moved too far", pitch, got)
		}
	}
}

func TestScaleNearestPrefersLowerOnTie(t *testing.T) {
	// Whole-tone-ish scale where Db4 (61) sits between C4 and D4.
	s := NewScale(0, 2)
	if got := s.Nearest(61); got != 60 {
		t.Fatalf("Nearest(61): got=%d want=60", got)
	}
}

func TestEmptyScalePassesThrough(t *testing.T) {
	var s Scale
	if got := s.Nearest(61); got != 61 {
		t.Fatalf("empty scale Nearest(61): got=%d want=61", got)
	}
}
