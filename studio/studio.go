// Package studio is the top-level facade tying oscillators, instrument
// synthesis, the melody model and emotion profiles into single-call
// rendering operations.
package studio

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-synth/beat"
	"github.com/cwbudde/algo-synth/emotion"
	"github.com/cwbudde/algo-synth/melody"
	"github.com/cwbudde/algo-synth/music"
	"github.com/cwbudde/algo-synth/osc"
	"github.com/cwbudde/algo-synth/synth"
)

// DefaultSampleRate is used whenever a request leaves SampleRate zero.
const DefaultSampleRate = 44100

// Result is a finished mono rendering. Notes is populated for melodic
// output so callers can export the piece symbolically as well.
type Result struct {
	Samples    []float32
	SampleRate int
	Notes      []music.Note
}

// Duration reports the rendered length in seconds.
func (r Result) Duration() float64 {
	if r.SampleRate <= 0 {
		return 0
	}
	return float64(len(r.Samples)) / float64(r.SampleRate)
}

// ToneRequest renders a single steady tone, either from a raw waveform
// or through an instrument recipe when Instrument is set.
//
// Zero values select defaults: Volume 0 renders at full amplitude and
// SampleRate 0 uses DefaultSampleRate. A silent render is not a
// meaningful request; callers wanting near-silence pass a small positive
// Volume.
type ToneRequest struct {
	Waveform    osc.Kind
	Instrument  *synth.Instrument
	FrequencyHz float64
	Duration    float64
	Volume      float64
	SampleRate  int
	Seed        int64
}

// Tone renders the requested tone.
func (req ToneRequest) Tone() (Result, error) {
	rate := req.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}
	vol := req.Volume
	if vol == 0 {
		vol = 1
	}
	rng := rand.New(rand.NewSource(req.Seed))

	var (
		samples []float32
		err     error
	)
	if req.Instrument != nil {
		var r *synth.Renderer
		r, err = synth.NewRenderer(*req.Instrument, rate, rng)
		if err != nil {
			return Result{}, err
		}
		samples, err = r.RenderFrequency(req.FrequencyHz, req.Duration, vol)
	} else {
		samples, err = osc.Render(req.Waveform, req.FrequencyHz, req.Duration, rate, vol, rng)
	}
	if err != nil {
		return Result{}, err
	}
	return Result{Samples: samples, SampleRate: rate}, nil
}

// ComposeRequest generates a melody from the Markov model under an
// emotion profile and renders it with an instrument recipe.
//
// Zero values select defaults: NoteDuration 0 means 0.4 s per note,
// Velocity 0 means 0.9, SampleRate 0 means DefaultSampleRate, a nil
// Instrument defers to the profile's choice and a nil Table uses the
// built-in corpus merged with the profile's pattern.
type ComposeRequest struct {
	Length       int
	NoteDuration float64
	Velocity     float64
	Instrument   *synth.Instrument
	Emotion      string
	SampleRate   int
	Seed         int64
	Table        melody.TransitionTable
}

// Compose generates and renders the piece. The melody walk samples each
// step from the chain, snaps it into the profile scale and advances the
// chain state on the snapped pitch, so the walk stays anchored to what
// the listener actually hears.
func (req ComposeRequest) Compose() (Result, error) {
	if req.Length < 0 {
		return Result{}, fmt.Errorf("melody length %d: %w", req.Length, music.ErrInvalidParameter)
	}
	rate := req.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}
	noteDur := req.NoteDuration
	if noteDur == 0 {
		noteDur = 0.4
	}
	vel := req.Velocity
	if vel == 0 {
		vel = 0.9
	}

	profile, err := emotion.Resolve(req.Emotion)
	if err != nil {
		return Result{}, err
	}
	table := req.Table
	if table == nil {
		table = melody.DefaultTable()
		for state, next := range profile.Table() {
			row, ok := table[state]
			if !ok {
				row = make(map[int]float64, len(next))
				table[state] = row
			}
			for pitch, w := range next {
				row[pitch] += w
			}
		}
	}
	chain, err := melody.NewChain(table)
	if err != nil {
		return Result{}, err
	}
	chain.SetBias(profile.Bias())

	rng := rand.New(rand.NewSource(req.Seed))
	inst := profile.Instrument
	if req.Instrument != nil {
		inst = *req.Instrument
	}
	renderer, err := synth.NewRenderer(inst, rate, rng)
	if err != nil {
		return Result{}, err
	}

	known := chain.KnownPitches()
	state := profile.Remap(known[rng.Intn(len(known))])
	notes := make([]music.Note, 0, req.Length)
	for i := 0; i < req.Length; i++ {
		pitch, err := chain.Step(state, rng)
		if err != nil {
			return Result{}, err
		}
		pitch = profile.Remap(pitch)
		state = pitch
		notes = append(notes, music.Note{
			Pitch:    pitch,
			Duration: noteDur * profile.DurationScale,
			Velocity: vel,
		})
	}

	samples, err := renderer.RenderPiece(notes)
	if err != nil {
		return Result{}, err
	}
	return Result{Samples: samples, SampleRate: rate, Notes: notes}, nil
}

// BeatRequest renders a percussion pattern at a tempo.
type BeatRequest struct {
	Pattern    []beat.Step
	TempoBPM   float64
	SampleRate int
	Seed       int64
}

// Beat renders the requested pattern.
func (req BeatRequest) Beat() (Result, error) {
	rate := req.SampleRate
	if rate == 0 {
		rate = DefaultSampleRate
	}
	rng := rand.New(rand.NewSource(req.Seed))
	samples, err := beat.Render(req.Pattern, req.TempoBPM, rate, rng)
	if err != nil {
		return Result{}, err
	}
	return Result{Samples: samples, SampleRate: rate}, nil
}
