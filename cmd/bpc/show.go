// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/n0ot/bpc"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the time code for the current minute",
	RunE: func(cmd *cobra.Command, args []string) error {
		follow, err := cmd.Flags().GetBool("follow")
		if err != nil {
			return err
		}

		clock := bpc.SystemClock{}
		if !follow {
			m, err := bpc.NewMinute(clock.Now())
			if err != nil {
				return err
			}
			printMinute(m)
			return nil
		}

		stop := make(chan struct{})
		go func() {
			waitForInterrupt()
			close(stop)
		}()
		for m := range bpc.LiveMinutes(clock, stop) {
			printMinute(m)
		}
		return nil
	},
}

func printMinute(m bpc.Minute) {
	fmt.Printf("%s  %s\n", m.Format("2006-01-02 15:04 MST"), m)
}

func init() {
	showCmd.Flags().BoolP("follow", "f", false, "Keep printing each minute until interrupted.")
}
