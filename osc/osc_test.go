package osc

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-synth/music"
)

var allKinds = []Kind{Sine, Square, Sawtooth, Triangle, Noise}

func TestRenderSampleCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, kind := range allKinds {
		buf, err := Render(kind, 440, 0, 44100, 0.5, rng)
		if err != nil {
			t.Fatalf("%v zero duration: %v", kind, err)
		}
		if len(buf) != 0 {
			t.Fatalf("%v zero duration: got=%d samples want=0", kind, len(buf))
		}

		buf, err = Render(kind, 440, 0.25, 44100, 0.5, rng)
		if err != nil {
			t.Fatalf("%v: %v", kind, err)
		}
		if len(buf) != 11025 {
			t.Fatalf("%v: got=%d samples want=11025", kind, len(buf))
		}
	}
	// Non-integral sample counts round to nearest.
	buf, err := Render(Sine, 440, 0.0001, 44100, 0.5, nil)
	if err != nil {
		t.Fatalf("short sine: %v", err)
	}
	if len(buf) != 4 {
		t.Fatalf("short sine: got=%d samples want=4", len(buf))
	}
}

func TestSineStaysWithinAmplitude(t *testing.T) {
	for _, freq := range []float64{20, 261.63, 440, 2000, 10000} {
		buf, err := Render(Sine, freq, 0.1, 44100, 0.8, nil)
		if err != nil {
			t.Fatalf("sine %.2f Hz: %v", freq, err)
		}
		for i, s := range buf {
			if math.Abs(float64(s)) > 0.8+1e-6 {
				t.Fatalf("sine %.2f Hz sample %d exceeds amplitude: %f", freq, i, s)
			}
		}
	}
}

func TestRenderRejectsBadParameters(t *testing.T) {
	cases := []struct {
		name string
		kind Kind
		freq float64
		dur  float64
		amp  float64
	}{
		{"zero frequency", Sine, 0, 1, 0.5},
		{"negative frequency", Square, -440, 1, 0.5},
		{"negative duration", Sine, 440, -1, 0.5},
		{"amplitude above unity", Sine, 440, 1, 1.5},
		{"negative amplitude", Sine, 440, 1, -0.1},
		{"unknown kind", Kind(99), 440, 1, 0.5},
	}
	for _, c := range cases {
		if _, err := Render(c.kind, c.freq, c.dur, 44100, c.amp, nil); !errors.Is(err, music.ErrInvalidParameter) {
			t.Fatalf("%s: expected invalid parameter, got %v", c.name, err)
		}
	}
	if _, err := NewOscillator(0, nil); !errors.Is(err, music.ErrInvalidParameter) {
		t.Fatalf("zero sample rate: expected invalid parameter, got %v", err)
	}
}

func TestNoiseIgnoresFrequencyButNeedsSource(t *testing.T) {
	if _, err := Render(Noise, -1, 0.01, 44100, 1.0, rand.New(rand.NewSource(2))); err != nil {
		t.Fatalf("noise with negative frequency: %v", err)
	}
	if _, err := Render(Noise, 440, 0.01, 44100, 1.0, nil); !errors.Is(err, music.ErrInvalidParameter) {
		t.Fatalf("noise without source: expected invalid parameter, got %v", err)
	}
}

func TestNoiseIsDeterministicPerSeed(t *testing.T) {
	a, err := Render(Noise, 0, 0.01, 44100, 1.0, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("noise: %v", err)
	}
	b, _ := Render(Noise, 0, 0.01, 44100, 1.0, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise sample %d differs across identical seeds", i)
		}
		if a[i] < -1 || a[i] > 1 {
			t.Fatalf("noise sample %d out of range: %f", i, a[i])
		}
	}
}

func TestPhaseContinuityAcrossCalls(t *testing.T) {
	whole, err := Render(Sine, 440, 0.02, 44100, 1.0, nil)
	if err != nil {
		t.Fatalf("whole render: %v", err)
	}

	o, err := NewOscillator(44100, nil)
	if err != nil {
		t.Fatalf("NewOscillator: %v", err)
	}
	first, err := o.Render(Sine, 440, 0.01, 1.0)
	if err != nil {
		t.Fatalf("first half: %v", err)
	}
	second, err := o.Render(Sine, 440, 0.01, 1.0)
	if err != nil {
		t.Fatalf("second half: %v", err)
	}

	joined := append(append([]float32{}, first...), second...)
	if len(joined) != len(whole) {
		t.Fatalf("length mismatch: got=%d want=%d", len(joined), len(whole))
	}
	for i := range joined {
		if joined[i] != whole[i] {
			t.Fatalf("sample %d differs after split render: got=%f want=%f", i, joined[i], whole[i])
		}
	}
}

func TestParseKind(t *testing.T) {
	for name, want := range map[string]Kind{
		"sine": Sine, "square": Square, "saw": Sawtooth,
		"sawtooth": Sawtooth, "Triangle": Triangle, "noise": Noise,
	} {
		got, err := ParseKind(name)
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", name, err)
		}
		if got != want {
			t.Fatalf("ParseKind(%q): got=%v want=%v", name, got, want)
		}
	}
	if _, err := ParseKind("banjo"); !errors.Is(err, music.ErrInvalidParameter) {
		t.Fatalf("ParseKind(banjo): expected invalid parameter, got %v", err)
	}
}
