package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/analysis"
	"github.com/cwbudde/algo-synth/internal/wavio"
	"github.com/cwbudde/algo-synth/melody"
	"github.com/cwbudde/algo-synth/preset"
	"github.com/cwbudde/algo-synth/studio"
)

var (
	flagSampleRate int
	flagOutDir     string
	flagPreset     string
	flagVerbose    bool

	// Transition table loaded from the preset file, if any.
	presetTable melody.TransitionTable
)

var rootCmd = &cobra.Command{
	Use:   "studio",
	Short: "Procedural audio synthesis and melody generation",
	Long: `studio renders tones, Markov-generated melodies and beat patterns
to WAV files, with optional MIDI export and playback.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			log.SetLevel(log.DebugLevel)
		}
		if flagPreset == "" {
			return nil
		}
		table, err := preset.LoadJSON(flagPreset)
		if err != nil {
			return err
		}
		presetTable = table
		log.WithField("path", flagPreset).Debug("preset loaded")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagSampleRate, "sample-rate", studio.DefaultSampleRate, "output sample rate in Hz")
	rootCmd.PersistentFlags().StringVar(&flagOutDir, "out", "out", "output directory for rendered files")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "preset JSON file to apply")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

// writeResult writes the rendering as a WAV file under the output
// directory and logs a measurement report.
func writeResult(base string, res studio.Result) (string, error) {
	path := wavio.OutputPath(flagOutDir, base)
	if err := wavio.WriteMono(path, res.Samples, res.SampleRate); err != nil {
		return "", err
	}
	r := analysis.Analyze(res.Samples, res.SampleRate)
	log.WithFields(log.Fields{
		"path":        path,
		"duration_s":  r.DurationS,
		"rms":         r.RMS,
		"peak":        r.Peak,
		"dominant_hz": r.DominantHz,
	}).Info("rendered")
	return path, nil
}
