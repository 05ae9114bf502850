package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/beat"
	"github.com/cwbudde/algo-synth/studio"
)

var (
	beatPattern string
	beatTempo   float64
	beatRepeat  int
	beatSeed    int64
)

var beatCmd = &cobra.Command{
	Use:   "beat",
	Short: "Render a percussion pattern",
	RunE: func(cmd *cobra.Command, args []string) error {
		steps, err := beat.ParsePattern(beatPattern)
		if err != nil {
			return err
		}
		if beatRepeat > 1 {
			repeated := make([]beat.Step, 0, len(steps)*beatRepeat)
			for i := 0; i < beatRepeat; i++ {
				repeated = append(repeated, steps...)
			}
			steps = repeated
		}

		res, err := studio.BeatRequest{
			Pattern:    steps,
			TempoBPM:   beatTempo,
			SampleRate: flagSampleRate,
			Seed:       beatSeed,
		}.Beat()
		if err != nil {
			return err
		}
		path, err := writeResult("beat", res)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	beatCmd.Flags().StringVar(&beatPattern, "pattern", "kick,rest,snare,rest", "comma-separated steps (kick, snare, rest)")
	beatCmd.Flags().Float64Var(&beatTempo, "tempo", 120, "tempo in BPM")
	beatCmd.Flags().IntVar(&beatRepeat, "repeat", 1, "repeat the pattern this many times")
	beatCmd.Flags().Int64Var(&beatSeed, "seed", 0, "random seed for the snare noise")
	rootCmd.AddCommand(beatCmd)
}
