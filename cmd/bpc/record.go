// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package main

import (
	"log"
	"os"
	"time"

	"github.com/n0ot/bpc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record the time code to a wave file",
	Long: `Record the time code to a 16 bit mono wave file,
as it would be sent starting at the given time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sampleRate, err := cmd.Flags().GetInt("sample-rate")
		if err != nil {
			return err
		}
		out, err := cmd.Flags().GetString("out")
		if err != nil {
			return err
		}
		startStr, err := cmd.Flags().GetString("start")
		if err != nil {
			return err
		}
		seconds, err := cmd.Flags().GetInt("seconds")
		if err != nil {
			return err
		}

		start := bpc.SystemClock{}.Now()
		if startStr != "" {
			start, err = time.Parse(time.RFC3339, startStr)
			if err != nil {
				return errors.Wrap(err, "Cannot parse start time")
			}
		}

		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := bpc.Record(f, start, seconds, sampleRate); err != nil {
			return err
		}
		log.Printf("Recorded %d seconds to %s\n", seconds, out)
		return f.Close()
	},
}

func init() {
	recordCmd.Flags().StringP("out", "o", "bpc.wav", "Wave file to write.")
	recordCmd.Flags().String("start", "", "Time to start at, in RFC 3339 format. Defaults to now.")
	recordCmd.Flags().Int("seconds", 60, "Number of seconds to record.")
}
