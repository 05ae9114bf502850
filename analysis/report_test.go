package analysis

import (
	"math"
	"testing"
)

func sine(freq float64, duration float64, sampleRate int) []float32 {
	n := int(duration * float64(sampleRate))
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate)))
	}
	return out
}

func TestRMSOfSine(t *testing.T) {
	s := sine(440, 1.0, 44100)
	got := RMS(s)
	want := 1 / math.Sqrt2
	if math.Abs(got-want) > 1e-3 {
		t.Fatalf("RMS: got=%v want=%v", got, want)
	}
}

func TestPeak(t *testing.T) {
	s := []float32{0.1, -0.8, 0.3}
	// Peak widens float32 samples, so 0.8 carries float32 rounding.
	if got := Peak(s); math.Abs(got-0.8) > 1e-6 {
		t.Fatalf("Peak: got=%v want=0.8", got)
	}
}

func TestZeroCrossingsOfSine(t *testing.T) {
	s := sine(440, 1.0, 44100)
	got := ZeroCrossings(s)
	if got < 870 || got > 890 {
		t.Fatalf("ZeroCrossings: got=%d want ~880", got)
	}
}

func TestDominantFrequency(t *testing.T) {
	for _, freq := range []float64{110, 440, 1000} {
		s := sine(freq, 1.0, 44100)
		got := DominantFrequency(s, 44100)
		if math.Abs(got-freq) > 44100.0/16384.0 {
			t.Fatalf("DominantFrequency(%v): got=%v", freq, got)
		}
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	r := Analyze(nil, 44100)
	if r.Frames != 0 || r.RMS != 0 || r.Peak != 0 || r.DominantHz != 0 {
		t.Fatalf("Analyze(nil): got %+v want zero report", r)
	}
}

func TestAnalyzeSilence(t *testing.T) {
	r := Analyze(make([]float32, 4096), 44100)
	if r.DominantHz != 0 {
		t.Fatalf("Analyze(silence): dominant %v want 0", r.DominantHz)
	}
	if r.DurationS == 0 {
		t.Fatalf("Analyze(silence): duration not set")
	}
}
