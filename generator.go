// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package bpc

import (
	"log"
	"sync"
	"time"

	"github.com/n0ot/bpc/audio"
)

const (
	// CarrierFrequency is the frequency of the BPC transmitter, in HZ.
	CarrierFrequency = 68500
	// Speakers can't reproduce the real carrier, so it is divided into the audible band.
	carrierDivisor = 5
	// DefaultSampleRate is the sample rate used when none is given.
	DefaultSampleRate = 44100
)

// timeInSamples returns the number of samples in a given time.duration.
// Non integer results will be truncated.
// For example, timeInSamples(100 * time.Millisecond, 44100) = 4410.
func timeInSamples(t time.Duration, sampleRate int) int {
	return int(t) * sampleRate / int(time.Second)
}

type phase int

const (
	phaseIdle phase = iota
	phaseUpdating
)

// A Generator generates the BPC signal as audio.
// The carrier is muted at the start of each second for the pulse width of that second's symbol,
// and present for the rest of it.
//
// Call Update at the start of each second, or use Run or NewLiveGenerator to do it
// on time with a Clock. Read the audio with Read or Next.
type Generator struct {
	mtx sync.Mutex // Protects pivot, count, phase
	// Samples before pivot in the current second are muted.
	pivot int
	// Samples read since the start of the current second.
	count int
	phase phase

	carrier    audio.Carrier
	sampleRate int
}

// NewGenerator creates a Generator which sends a full second of carrier until it is first updated.
func NewGenerator(sampleRate int) *Generator {
	return &Generator{
		carrier:    audio.Carrier{Freq: CarrierFrequency / carrierDivisor, SampleRate: sampleRate},
		sampleRate: sampleRate,
	}
}

// NewLiveGenerator creates a Generator for the current second of clock,
// and updates it at the start of each following second until stop is closed.
func NewLiveGenerator(clock Clock, sampleRate int, stop <-chan struct{}) *Generator {
	g := NewGenerator(sampleRate)
	g.Update(clock.Now())
	go g.Run(clock, stop)
	return g
}

// SampleRate returns the sample rate in HZ.
func (g *Generator) SampleRate() int {
	return g.sampleRate
}

// Channels returns the number of channels, which is always 1.
func (g *Generator) Channels() int {
	return 1
}

// Pivot returns the number of samples muted at the start of the current second.
func (g *Generator) Pivot() int {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	return g.pivot
}

// Update starts a new second, encoding t.
// Update must not be called concurrently with itself.
func (g *Generator) Update(t time.Time) {
	g.mtx.Lock()
	g.phase = phaseUpdating
	g.mtx.Unlock()

	pivot := g.pivotAt(t)

	g.mtx.Lock()
	g.pivot = pivot
	g.count = 0
	g.phase = phaseIdle
	g.mtx.Unlock()
}

// pivotAt returns the pivot for the second containing t.
// A time that can't be encoded mutes the whole second.
func (g *Generator) pivotAt(t time.Time) int {
	ts, err := NewTimestamp(t)
	if err != nil {
		log.Printf("Muting second: %v\n", err)
		return g.sampleRate
	}
	width, ok := PulseWidthAt(ts)
	if !ok {
		return 0 // Frame marker: no pulse
	}
	return timeInSamples(width, g.sampleRate)
}

// Next returns the next sample.
// Samples are counted from 0 within each second, so sample n is muted while n < Pivot.
// While an update is in progress, a full scale sample is returned rather than waiting for it.
func (g *Generator) Next() float32 {
	g.mtx.Lock()
	if g.phase == phaseUpdating {
		g.mtx.Unlock()
		return 1
	}
	n := g.count
	g.count++
	pivot := g.pivot
	g.mtx.Unlock()

	if n < pivot {
		return 0
	}
	return g.carrier.At(n)
}

// Read fills buff with the next samples.
// Read never fails, and never runs out of audio.
func (g *Generator) Read(buff []float32) (n int, err error) {
	for i := range buff {
		buff[i] = g.Next()
	}
	return len(buff), nil
}

// Run updates the Generator at the start of each second of clock until stop is closed.
// Each wait is measured from the clock, so the updates don't drift.
func (g *Generator) Run(clock Clock, stop <-chan struct{}) {
	now := clock.Now()
	target := nextBoundary(now, time.Second)
	t := time.NewTimer(untilNextSecond(now))
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case <-t.C:
		}
		wake := clock.Now()
		g.Update(wakeTime(wake, target))
		target = nextTarget(wake, target, time.Second)
		t.Reset(target.Sub(clock.Now()))
	}
}
