package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/emotion"
)

var emotionsCmd = &cobra.Command{
	Use:   "emotions",
	Short: "List available emotion profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range emotion.Names() {
			p, err := emotion.Resolve(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-10s instrument=%-6s duration-scale=%.2f\n", name, p.Instrument, p.DurationScale)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(emotionsCmd)
}
