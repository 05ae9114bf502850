package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-synth/internal/wavio"
	"github.com/cwbudde/algo-synth/playback"
)

var playCmd = &cobra.Command{
	Use:   "play <file.wav>",
	Short: "Play a WAV file through the output device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, rate, err := wavio.ReadMono(args[0])
		if err != nil {
			return err
		}
		player, err := playback.NewPlayer(rate)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"path":        args[0],
			"sample_rate": rate,
			"frames":      len(samples),
		}).Info("playing")

		done, err := player.Play(samples)
		if err != nil {
			return err
		}
		<-done
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
