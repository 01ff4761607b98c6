// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package main

import (
	"log"

	"github.com/n0ot/bpc"
	"github.com/n0ot/bpc/audio"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the live time code on the default audio device",
	RunE: func(cmd *cobra.Command, args []string) error {
		sampleRate, err := cmd.Flags().GetInt("sample-rate")
		if err != nil {
			return err
		}
		amplitudeDBFS, err := cmd.Flags().GetFloat64("amplitude")
		if err != nil {
			return err
		}

		stop := make(chan struct{})
		defer close(stop)
		gen := bpc.NewLiveGenerator(bpc.SystemClock{}, sampleRate, stop)

		player, err := audio.Play(audio.NewGain(gen, amplitudeDBFS), sampleRate)
		if err != nil {
			return err
		}
		defer func() {
			if err := player.Close(); err != nil {
				log.Printf("%v\n", err)
			}
		}()

		waitForInterrupt()
		return nil
	},
}

func init() {
	playCmd.Flags().Float64("amplitude", 0.0, "Amplitude of output in DBFS. 0 is full volume, -6 is about half, -12 half again, and so on.")
}
