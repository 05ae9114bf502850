package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/midifile"
	"github.com/cwbudde/algo-synth/studio"
	"github.com/cwbudde/algo-synth/synth"
)

var (
	composeLength     int
	composeEmotion    string
	composeInstrument string
	composeNoteDur    float64
	composeVelocity   float64
	composeSeed       int64
	composeMIDI       string
	composeTempo      float64
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Generate and render a melody",
	RunE: func(cmd *cobra.Command, args []string) error {
		req := studio.ComposeRequest{
			Length:       composeLength,
			NoteDuration: composeNoteDur,
			Velocity:     composeVelocity,
			Emotion:      composeEmotion,
			SampleRate:   flagSampleRate,
			Seed:         composeSeed,
			Table:        presetTable,
		}
		if composeInstrument != "" {
			inst, err := synth.ParseInstrument(composeInstrument)
			if err != nil {
				return err
			}
			req.Instrument = &inst
		}

		res, err := req.Compose()
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"emotion": composeEmotion,
			"notes":   len(res.Notes),
			"seed":    composeSeed,
		}).Debug("melody generated")

		path, err := writeResult("melody", res)
		if err != nil {
			return err
		}
		if composeMIDI != "" {
			if err := midifile.Export(composeMIDI, res.Notes, composeTempo); err != nil {
				return err
			}
			log.WithField("path", composeMIDI).Info("midi exported")
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	composeCmd.Flags().IntVar(&composeLength, "length", 16, "number of notes to generate")
	composeCmd.Flags().StringVar(&composeEmotion, "emotion", "happy", "emotion profile")
	composeCmd.Flags().StringVar(&composeInstrument, "instrument", "", "instrument, defaults to the profile's choice")
	composeCmd.Flags().Float64Var(&composeNoteDur, "note-duration", 0.4, "base note duration in seconds")
	composeCmd.Flags().Float64Var(&composeVelocity, "velocity", 0.9, "note velocity in [0, 1]")
	composeCmd.Flags().Int64Var(&composeSeed, "seed", 0, "random seed")
	composeCmd.Flags().StringVar(&composeMIDI, "midi", "", "also export the melody as a MIDI file")
	composeCmd.Flags().Float64Var(&composeTempo, "tempo", 120, "tempo in BPM for MIDI export")
	rootCmd.AddCommand(composeCmd)
}
