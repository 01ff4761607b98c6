// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package audio

import "math"

// A Carrier is a sine wave addressed by sample index rather than by a running phase,
// so a caller can restart it at any sample without accumulating error.
//
// If Freq is a whole number, the carrier completes a whole number of cycles every second,
// and restarting it at index 0 on each second boundary does not click.
type Carrier struct {
	Freq       float64
	SampleRate int
}

// At returns the carrier's value at sample n.
func (c Carrier) At(n int) float32 {
	return float32(math.Sin(2 * math.Pi * c.Freq * float64(n) / float64(c.SampleRate)))
}

