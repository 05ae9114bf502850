// Package midifile exports generated melodies as standard MIDI files.
package midifile

import (
	"fmt"
	"math"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/cwbudde/algo-synth/music"
)

const ticksPerQuarter = 960

// Export writes notes as a single-track MIDI file. Note durations are
// converted to ticks at the given tempo; one beat is a quarter note.
func Export(path string, notes []music.Note, tempoBPM float64) error {
	if tempoBPM <= 0 {
		return fmt.Errorf("tempo %g bpm: %w", tempoBPM, music.ErrInvalidParameter)
	}

	ticks := smf.MetricTicks(ticksPerQuarter)
	s := smf.New()
	s.TimeFormat = ticks

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(tempoBPM))

	for i, n := range notes {
		if n.Pitch < 0 || n.Pitch > 127 {
			return fmt.Errorf("note %d pitch %d: %w", i, n.Pitch, music.ErrInvalidParameter)
		}
		if n.Duration < 0 {
			return fmt.Errorf("note %d duration %g: %w", i, n.Duration, music.ErrInvalidParameter)
		}
		vel := n.Velocity
		if vel < 0 {
			vel = 0
		}
		if vel > 1 {
			vel = 1
		}
		beats := n.Duration * tempoBPM / 60
		delta := uint32(math.Round(beats * ticksPerQuarter))
		tr.Add(0, midi.NoteOn(0, uint8(n.Pitch), uint8(math.Round(vel*127))))
		tr.Add(delta, midi.NoteOff(0, uint8(n.Pitch)))
	}
	tr.Close(0)

	s.Add(tr)
	return s.WriteFile(path)
}
