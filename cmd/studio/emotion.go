package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/studio"
)

var (
	emotionLength int
	emotionSeed   int64
)

var emotionCmd = &cobra.Command{
	Use:   "emotion <name>",
	Short: "Compose a melody driven entirely by an emotion profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := studio.ComposeRequest{
			Length:     emotionLength,
			Emotion:    args[0],
			SampleRate: flagSampleRate,
			Seed:       emotionSeed,
			Table:      presetTable,
		}.Compose()
		if err != nil {
			return err
		}
		path, err := writeResult(args[0], res)
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	emotionCmd.Flags().IntVar(&emotionLength, "length", 16, "number of notes to generate")
	emotionCmd.Flags().Int64Var(&emotionSeed, "seed", 0, "random seed")
	rootCmd.AddCommand(emotionCmd)
}
