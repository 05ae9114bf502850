package preset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/algo-synth/emotion"
	"github.com/cwbudde/algo-synth/music"
	"github.com/cwbudde/algo-synth/synth"
)

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write preset: %v", err)
	}
	return path
}

func TestLoadJSONInstrumentOverride(t *testing.T) {
	orig, err := synth.RecipeFor(synth.Pad)
	if err != nil {
		t.Fatalf("RecipeFor: %v", err)
	}
	defer func() {
		if err := synth.SetRecipe(synth.Pad, orig); err != nil {
			t.Fatalf("restore recipe: %v", err)
		}
	}()

	path := writePreset(t, `{
		"instruments": {
			"pad": {
				"decay_rate": 2.5,
				"partials": [{"wave": "triangle", "gain": 0.8, "ratio": 1.0}]
			}
		}
	}`)
	if _, err := LoadJSON(path); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	got, err := synth.RecipeFor(synth.Pad)
	if err != nil {
		t.Fatalf("RecipeFor: %v", err)
	}
	if got.DecayRate != 2.5 {
		t.Fatalf("decay rate: got=%v want=2.5", got.DecayRate)
	}
	if len(got.Partials) != 1 || got.Partials[0].Gain != 0.8 {
		t.Fatalf("partials not applied: %+v", got.Partials)
	}
}

func TestLoadJSONEmotion(t *testing.T) {
	path := writePreset(t, `{
		"emotions": {
			"dreamy": {
				"scale": [0, 2, 4, 7, 9],
				"duration_scale": 1.3,
				"pattern": ["C4", "D4", "E4", "G4"],
				"instrument": "pad"
			}
		}
	}`)
	if _, err := LoadJSON(path); err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	p, err := emotion.Resolve("dreamy")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if p.DurationScale != 1.3 || p.Instrument != synth.Pad {
		t.Fatalf("profile not applied: %+v", p)
	}
}

func TestLoadJSONMelodyTable(t *testing.T) {
	path := writePreset(t, `{
		"melody": {
			"C4": {"D4": 2, "E4": 1},
			"D4": {"C4": 1}
		}
	}`)
	table, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}
	c4, d4 := music.MustPitch("C4"), music.MustPitch("D4")
	if table[c4][d4] != 2 {
		t.Fatalf("table[C4][D4]: got=%v want=2", table[c4][d4])
	}
	if table[d4][c4] != 1 {
		t.Fatalf("table[D4][C4]: got=%v want=1", table[d4][c4])
	}
}

func TestLoadJSONRejectsBadContent(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad json", `{`},
		{"unknown instrument", `{"instruments": {"organ": {}}}`},
		{"bad wave", `{"instruments": {"piano": {"partials": [{"wave": "warble", "gain": 0.5, "ratio": 1}]}}}`},
		{"bad note name", `{"melody": {"H4": {"C4": 1}}}`},
		{"negative weight", `{"melody": {"C4": {"D4": -1}}}`},
		{"bad pattern", `{"emotions": {"x": {"scale": [0], "pattern": ["XX"]}}}`},
	}
	for _, c := range cases {
		path := writePreset(t, c.content)
		if _, err := LoadJSON(path); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestLoadJSONMissingFile(t *testing.T) {
	_, err := LoadJSON(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadJSON: got err=%v want ErrNotExist", err)
	}
}
