package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/music"
	"github.com/cwbudde/algo-synth/osc"
	"github.com/cwbudde/algo-synth/studio"
	"github.com/cwbudde/algo-synth/synth"
)

var (
	toneWave       string
	toneInstrument string
	toneFreq       float64
	toneNote       string
	toneDuration   float64
	toneVolume     float64
	toneSeed       int64
)

var toneCmd = &cobra.Command{
	Use:   "tone",
	Short: "Render a single tone to a WAV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		freq := toneFreq
		if toneNote != "" {
			pitch, err := music.ParsePitch(toneNote)
			if err != nil {
				return err
			}
			freq = music.PitchToFreq(pitch)
		}

		req := studio.ToneRequest{
			FrequencyHz: freq,
			Duration:    toneDuration,
			Volume:      toneVolume,
			SampleRate:  flagSampleRate,
			Seed:        toneSeed,
		}
		if toneInstrument != "" {
			inst, err := synth.ParseInstrument(toneInstrument)
			if err != nil {
				return err
			}
			req.Instrument = &inst
		} else {
			kind, err := osc.ParseKind(toneWave)
			if err != nil {
				return err
			}
			req.Waveform = kind
		}

		res, err := req.Tone()
		if err != nil {
			return err
		}
		path, err := writeResult("tone", res)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	toneCmd.Flags().StringVar(&toneWave, "wave", "sine", "waveform (sine, square, saw, triangle, noise)")
	toneCmd.Flags().StringVar(&toneInstrument, "instrument", "", "instrument recipe instead of a raw waveform")
	toneCmd.Flags().Float64Var(&toneFreq, "freq", 440, "frequency in Hz")
	toneCmd.Flags().StringVar(&toneNote, "note", "", "note name such as A4, overrides --freq")
	toneCmd.Flags().Float64Var(&toneDuration, "duration", 1.0, "duration in seconds")
	toneCmd.Flags().Float64Var(&toneVolume, "volume", 1.0, "amplitude in [0, 1]")
	toneCmd.Flags().Int64Var(&toneSeed, "seed", 0, "random seed for noise and instruments")
	rootCmd.AddCommand(toneCmd)
}
