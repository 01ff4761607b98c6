// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

// Package audio provides mono float32 audio sources and the sinks that consume them.
package audio

import (
	"encoding/binary"
	"io"
	"math"
	"sync"
)

func dBFSToLinear(dBFS float64) float64 {
	return math.Pow(10.0, dBFS/20.0)
}

func fillBuff(buff []float32, val float32, start, end int) {
	for i := start; i < end; i++ {
		buff[i] = val
	}
}

// A Source provides a method, Read,
// which fills a buffer with mono audio in [-1, 1].
// Read returns the number of samples read,
// or an error if audio could not be read.
type Source interface {
	Read(buff []float32) (n int, err error)
}

// A Gain scales another Source by an amplitude in decibels relative to full scale.
// The amplitude may be changed while the Gain is being read.
type Gain struct {
	source    Source
	ampLock   sync.RWMutex // Protects amplitude
	amplitude float64
}

// NewGain wraps source with the given amplitude.
// If 0.0 is passed, Amplitude will return 1.0 (full volume).
func NewGain(source Source, ampDBFS float64) *Gain {
	return &Gain{source: source, amplitude: dBFSToLinear(ampDBFS)}
}

// SetAmpDBFS sets the amplitude in decibels relative to full scale.
// The amplitude change will take affect when Read is next called.
func (g *Gain) SetAmpDBFS(ampDBFS float64) {
	g.ampLock.Lock()
	g.amplitude = dBFSToLinear(ampDBFS)
	g.ampLock.Unlock()
}

// Amplitude gets the maximum amplitude, where 0.0 is silent, and 1.0 is full volume.
func (g *Gain) Amplitude() float64 {
	g.ampLock.RLock()
	amp := g.amplitude
	g.ampLock.RUnlock()
	return amp
}

func (g *Gain) Read(buff []float32) (n int, err error) {
	amplitude := g.Amplitude()
	n, err = g.source.Read(buff)
	for i := 0; i < n; i++ {
		buff[i] *= float32(amplitude)
	}
	return n, err
}

// Stream gets a callback function, to be used with libraries like PortAudio.
// The callback function calls source.Read, and panics if there are errors.
// If less than len(buff) samples were read, the remaining samples will be filled with zeros.
func Stream(source Source) func(buff []float32) {
	return func(buff []float32) {
		n, err := source.Read(buff)
		if err != nil {
			panic(err)
		}
		fillBuff(buff, float32(0.0), n, len(buff))
	}
}

// NewReader returns an io.Reader producing source as 32 bit little endian floats.
// Reads shorter than one sample return io.ErrShortBuffer.
func NewReader(source Source) io.Reader {
	return &reader{source: source}
}

type reader struct {
	source Source
	buff   []float32
}

func (r *reader) Read(p []byte) (int, error) {
	size := len(p) / 4
	if size == 0 {
		return 0, io.ErrShortBuffer
	}
	if cap(r.buff) < size {
		r.buff = make([]float32, size)
	}
	buff := r.buff[:size]
	n, err := r.source.Read(buff)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(buff[i]))
	}
	return n * 4, err
}
