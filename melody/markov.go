// Package melody implements the Markov-chain note generator. A chain
// walks a transition table of pitch-to-pitch weights, sampling each next
// pitch by cumulative-weight inversion against a caller-supplied random
// source.
package melody

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-synth/music"
)

// Source supplies random draws in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// TransitionTable maps a pitch state to weighted next-pitch candidates.
// Weights are non-negative and need not be normalized; the chain
// normalizes at sampling time.
type TransitionTable map[int]map[int]float64

// Train counts pitch-to-pitch transitions over example sequences.
func Train(sequences ...[]int) TransitionTable {
	t := TransitionTable{}
	for _, seq := range sequences {
		for i := 0; i+1 < len(seq); i++ {
			cur, next := seq[i], seq[i+1]
			if t[cur] == nil {
				t[cur] = map[int]float64{}
			}
			t[cur][next]++
		}
	}
	return t
}

// Pitches returns every pitch the table mentions, as state or candidate,
// sorted ascending.
func (t TransitionTable) Pitches() []int {
	seen := map[int]bool{}
	for state, cands := range t {
		seen[state] = true
		for pitch := range cands {
			seen[pitch] = true
		}
	}
	out := make([]int, 0, len(seen))
	for pitch := range seen {
		out = append(out, pitch)
	}
	sort.Ints(out)
	return out
}

// WeightBias rescales a candidate weight before sampling. The emotion
// layer uses it to pull melodies toward a scale.
type WeightBias func(pitch int, weight float64) float64

// Chain samples pitch sequences from a transition table. The table is
// treated as read-only; concurrent Generate calls are safe as long as
// each supplies its own random source.
type Chain struct {
	table   TransitionTable
	pitches []int
	bias    WeightBias
}

// NewChain validates the table and builds a chain over it.
func NewChain(table TransitionTable) (*Chain, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("empty transition table: %w", music.ErrInvalidConfiguration)
	}
	positive := false
	for state, cands := range table {
		for pitch, w := range cands {
			if w < 0 {
				return nil, fmt.Errorf("weight %g for %d->%d negative: %w", w, state, pitch, music.ErrInvalidConfiguration)
			}
			if w > 0 {
				positive = true
			}
		}
	}
	if !positive {
		return nil, fmt.Errorf("transition table has no positive weight: %w", music.ErrInvalidConfiguration)
	}
	return &Chain{table: table, pitches: table.Pitches()}, nil
}

// SetBias installs a weight bias applied to every candidate before
// sampling. A nil bias restores unbiased sampling.
func (c *Chain) SetBias(b WeightBias) {
	c.bias = b
}

// KnownPitches returns the pitches the chain can emit.
func (c *Chain) KnownPitches() []int {
	return append([]int(nil), c.pitches...)
}

// Step samples the pitch following state. An unseen state, or one whose
// weights all vanish under the bias, falls back to a uniform draw over
// all known pitches.
func (c *Chain) Step(state int, rng Source) (int, error) {
	if rng == nil {
		return 0, fmt.Errorf("nil random source: %w", music.ErrInvalidParameter)
	}
	cands := c.table[state]
	if len(cands) > 0 {
		pitches := make([]int, 0, len(cands))
		for pitch := range cands {
			pitches = append(pitches, pitch)
		}
		sort.Ints(pitches)

		total := 0.0
		weights := make([]float64, len(pitches))
		for i, pitch := range pitches {
			w := cands[pitch]
			if c.bias != nil {
				w = c.bias(pitch, w)
			}
			if w < 0 {
				w = 0
			}
			weights[i] = w
			total += w
		}
		if total > 0 {
			r := rng.Float64() * total
			acc := 0.0
			for i, w := range weights {
				if w == 0 {
					continue
				}
				acc += w
				if r < acc {
					return pitches[i], nil
				}
			}
			// Guard against accumulated rounding at the top of the range.
			for i := len(weights) - 1; i >= 0; i-- {
				if weights[i] > 0 {
					return pitches[i], nil
				}
			}
		}
	}
	idx := int(rng.Float64() * float64(len(c.pitches)))
	if idx >= len(c.pitches) {
		idx = len(c.pitches) - 1
	}
	return c.pitches[idx], nil
}

// Generate emits exactly length pitches starting from the given state.
// The same random source yields the same sequence; length <= 0 yields an
// empty sequence.
func (c *Chain) Generate(length int, start int, rng Source) ([]int, error) {
	if length <= 0 {
		return nil, nil
	}
	out := make([]int, 0, length)
	state := start
	for len(out) < length {
		next, err := c.Step(state, rng)
		if err != nil {
			return nil, err
		}
		out = append(out, next)
		state = next
	}
	return out, nil
}

// The built-in corpus is a short C-major demo melody.
var trainingMelody = []string{
	"C4", "D4", "E4", "G4", "A4",
	"A4", "G4", "E4", "D4", "C4",
	"C4", "E4", "G4", "C5",
	"G4", "E4", "D4", "C4",
}

// DefaultTable returns a table trained on the built-in corpus.
func DefaultTable() TransitionTable {
	seq := make([]int, len(trainingMelody))
	for i, name := range trainingMelody {
		seq[i] = music.MustPitch(name)
	}
	return Train(seq)
}
