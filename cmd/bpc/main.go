// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/n0ot/bpc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "bpc",
	Short:        "BPC time signal station",
	Long:         `Generate the BPC longwave time code as an audible tone, for setting radio controlled clocks.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		sampleRate, err := cmd.Flags().GetInt("sample-rate")
		if err != nil {
			return err
		}
		if sampleRate <= 0 {
			return errors.Errorf("Invalid sample rate %d", sampleRate)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Int("sample-rate", bpc.DefaultSampleRate, "Sample rate of the generated audio in HZ.")
	rootCmd.AddCommand(playCmd, recordCmd, showCmd)
}

// waitForInterrupt blocks until SIGINT is received.
func waitForInterrupt() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	<-sigs
	signal.Stop(sigs)
	fmt.Fprintln(os.Stderr, "Done")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
