// Package playback plays rendered audio through the system output device.
package playback

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/cwbudde/algo-synth/music"
)

// Player owns an audio output context at a fixed sample rate.
type Player struct {
	sampleRate int
	ctx        *oto.Context
	ready      chan struct{}
}

// NewPlayer opens the output device in stereo 32-bit float format.
func NewPlayer(sampleRate int) (*Player, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", sampleRate, music.ErrInvalidParameter)
	}
	ctx, ready, err := oto.NewContext(sampleRate, 2, 0)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	return &Player{sampleRate: sampleRate, ctx: ctx, ready: ready}, nil
}

// Play starts playing a mono signal, duplicated to both channels, and
// returns a channel closed when playback finishes.
func (p *Player) Play(samples []float32) (<-chan struct{}, error) {
	done := make(chan struct{})
	if len(samples) == 0 {
		close(done)
		return done, nil
	}
	data := make([]byte, len(samples)*8)
	for i, s := range samples {
		v := math.Float32bits(s)
		for c := 0; c < 2; c++ {
			off := i*8 + c*4
			data[off] = byte(v)
			data[off+1] = byte(v >> 8)
			data[off+2] = byte(v >> 16)
			data[off+3] = byte(v >> 24)
		}
	}
	go func() {
		defer close(done)
		<-p.ready
		player := p.ctx.NewPlayer(&soundReader{data: data})
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
	return done, nil
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
