// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

// Package bpc provides logic to encode time into
// a BPC-compatible audio signal.
package bpc

import (
	"log"
	"time"
)

// Zone is the broadcast zone of the time code, China Standard Time (UTC+8).
var Zone = time.FixedZone("CST", 8*60*60)

// A Clock provides the current time.
// Implementations must be safe for concurrent use.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time in the broadcast zone.
type SystemClock struct{}

// Now returns the current time in Zone.
func (SystemClock) Now() time.Time {
	return time.Now().In(Zone)
}

// nextBoundary returns the first multiple of d after now.
func nextBoundary(now time.Time, d time.Duration) time.Time {
	return now.Truncate(d).Add(d)
}

// untilNextSecond returns the time from now until the start of the next second.
func untilNextSecond(now time.Time) time.Duration {
	return nextBoundary(now, time.Second).Sub(now)
}

// earlyWake is how far before its target a timer may fire and still count as on time.
const earlyWake = 10 * time.Millisecond

// wakeTime returns the time a wake up at now stands for, when it was aimed at target.
// Timers may fire slightly early; the time they were aimed at is used instead.
// A wake up further before target means the clock was set back, and now is used.
func wakeTime(now, target time.Time) time.Time {
	if now.Before(target) && target.Sub(now) < earlyWake {
		return target
	}
	return now
}

// nextTarget returns the boundary to wake up at after waking at now,
// when the previous wake up was aimed at prev.
// The result only depends on the clock, so early or late wake ups don't accumulate.
func nextTarget(now, prev time.Time, d time.Duration) time.Time {
	return nextBoundary(wakeTime(now, prev), d)
}

// LiveMinutes returns a channel, on which a new Minute based on the current time
// is sent at the start of each minute.
// Close the stop channel to stop producing minutes. The minutes channel will be closed.
func LiveMinutes(clock Clock, stop <-chan struct{}) <-chan Minute {
	minutes := make(chan Minute)
	go func() {
		defer close(minutes)
		// By using a timer instead of a ticker, and measuring each wait from the clock,
		// a change of the time is picked up at the next wake up.
		now := clock.Now()
		target := nextBoundary(now, time.Minute)
		t := time.NewTimer(target.Sub(now))
		defer t.Stop()
		for {
			minute, err := NewMinute(now)
			if err != nil {
				log.Printf("Error getting minute: %v\n", err)
				return
			}
			select {
			case minutes <- minute:
			case <-stop:
				log.Printf("No longer getting minutes.\n")
				return
			}
			select {
			case <-stop:
				log.Printf("No longer getting minutes.\n")
				return
			case <-t.C:
				wake := clock.Now()
				now = wakeTime(wake, target)
				target = nextTarget(wake, target, time.Minute)
				t.Reset(target.Sub(wake))
			}
		}
	}()

	return minutes
}
