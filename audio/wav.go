// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package audio

import (
	"io"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// WriteWAV encodes the first samples samples of source into w
// as a 16 bit mono wave file.
func WriteWAV(w io.WriteSeeker, source Source, sampleRate, samples int) error {
	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}
	s := &streamer{source: source}
	if err := wav.Encode(w, beep.Take(samples, s), format); err != nil {
		return errors.Wrap(err, "Cannot encode wave file")
	}
	return errors.Wrap(s.err, "Cannot read audio")
}

// A streamer adapts a mono Source to a beep.Streamer,
// sending each sample to both channels.
type streamer struct {
	source Source
	buff   []float32
	err    error
}

func (s *streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.err != nil {
		return 0, false
	}
	if cap(s.buff) < len(samples) {
		s.buff = make([]float32, len(samples))
	}
	buff := s.buff[:len(samples)]
	n, s.err = s.source.Read(buff)
	for i := 0; i < n; i++ {
		samples[i][0] = float64(buff[i])
		samples[i][1] = float64(buff[i])
	}
	return n, n > 0
}

func (s *streamer) Err() error {
	return s.err
}
