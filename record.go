// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package bpc

import (
	"io"
	"time"

	"github.com/n0ot/bpc/audio"
	"github.com/pkg/errors"
)

// A steppedSource reads a Generator, updating it with simulated time
// every sampleRate samples instead of waiting for a clock.
type steppedSource struct {
	g     *Generator
	start time.Time
	read  int
}

func (s *steppedSource) Read(buff []float32) (n int, err error) {
	sampleRate := s.g.SampleRate()
	for i := range buff {
		if s.read%sampleRate == 0 {
			s.g.Update(s.start.Add(time.Duration(s.read/sampleRate) * time.Second))
		}
		buff[i] = s.g.Next()
		s.read++
	}
	return len(buff), nil
}

// Record writes seconds of the signal, as if started at the second containing start,
// to w as a 16 bit mono wave file.
func Record(w io.WriteSeeker, start time.Time, seconds, sampleRate int) error {
	if seconds <= 0 {
		return errors.Errorf("Cannot record %d seconds", seconds)
	}
	if sampleRate <= 0 {
		return errors.Errorf("Cannot record at %d HZ", sampleRate)
	}
	start = start.Truncate(time.Second)
	for _, t := range []time.Time{start, start.Add(time.Duration(seconds-1) * time.Second)} {
		if _, err := NewTimestamp(t); err != nil {
			return errors.Wrap(err, "Cannot record time code")
		}
	}

	src := &steppedSource{g: NewGenerator(sampleRate), start: start}
	err := audio.WriteWAV(w, src, sampleRate, seconds*sampleRate)
	return errors.Wrapf(err, "Cannot record %d seconds from %s", seconds, start.In(Zone).Format(time.RFC3339))
}
