// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package bpc

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// A Symbol is the 2 bit value sent during one second of the time code.
// Blank is sent on the frame marker, where no pulse is transmitted.
type Symbol int8

// Blank is the Symbol for the frame marker at the start of each 20 second frame.
const Blank Symbol = -1

// PulseWidth returns how long the carrier is suppressed at the start of the second.
// Symbols 0 through 3 map to 100 through 400 ms.
// ok is false for Blank: no pulse is sent, and the carrier is present for the whole second.
//
// PulseWidth panics if s is not Blank or in [0, 3]; Encode never produces such a Symbol.
func (s Symbol) PulseWidth() (width time.Duration, ok bool) {
	switch {
	case s == Blank:
		return 0, false
	case s >= 0 && s <= 3:
		return time.Duration(s+1) * 100 * time.Millisecond, true
	}
	panic(errors.Errorf("Invalid time code symbol %d", s))
}

func (s Symbol) String() string {
	if s == Blank {
		return "-"
	}
	return string(rune('0' + s))
}

// A Timestamp holds the fields of a time in the broadcast zone, as used by the time code.
type Timestamp struct {
	Year    int // Years since 2000
	Month   int // 1-12
	Day     int // 1-31
	Weekday int // 1 = Monday, 7 = Sunday
	Hour12  int // 1-12
	PM      bool
	Minute  int
	Second  int
}

// NewTimestamp converts t to the broadcast zone and splits it into fields.
//
// Only the years 2000 through 2099 can be encoded;
// any other year is an error, and is never wrapped into range.
func NewTimestamp(t time.Time) (Timestamp, error) {
	t = t.In(Zone)
	hour12 := t.Hour() % 12
	if hour12 == 0 {
		hour12 = 12
	}
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	ts := Timestamp{
		Year:    t.Year() - 2000,
		Month:   int(t.Month()),
		Day:     t.Day(),
		Weekday: weekday,
		Hour12:  hour12,
		PM:      t.Hour() >= 12,
		Minute:  t.Minute(),
		Second:  t.Second(),
	}
	if err := ts.check(); err != nil {
		return ts, errors.Wrapf(err, "Cannot encode %s", t.Format(time.RFC3339))
	}
	return ts, nil
}

func (ts Timestamp) check() error {
	checks := []struct {
		fd fieldDef
		v  int
	}{
		{fieldYear, ts.Year},
		{fieldMonth, ts.Month},
		{fieldDay, ts.Day},
		{fieldWeekday, ts.Weekday},
		{fieldHour12, ts.Hour12},
		{fieldMinute, ts.Minute},
		{fieldSecond, ts.Second},
	}
	for _, c := range checks {
		if err := c.fd.check(c.v); err != nil {
			return err
		}
	}
	return nil
}

// Fragment returns the position of this second within its 20 second frame.
func (ts Timestamp) Fragment() int {
	return ts.Second % 20
}

// Encode returns the Symbol sent during the second containing ts.
//
// The minute is sent as three 20 second frames, each carrying the same fields.
// Fragment 1 tells them apart, and fragments 10 and 19 carry even parity
// over the fields before them.
func Encode(ts Timestamp) Symbol {
	switch ts.Fragment() {
	case 0:
		return Blank // Frame marker
	case 1:
		return Symbol(ts.Second / 20) // 1, 21, 41 -> 0, 1, 2
	case 2:
		return 0 // Reserved
	case 3:
		return window(ts.Hour12, 2)
	case 4:
		return window(ts.Hour12, 0)
	case 5:
		return window(ts.Minute, 4)
	case 6:
		return window(ts.Minute, 2)
	case 7:
		return window(ts.Minute, 0)
	case 8:
		return window(ts.Weekday, 2)
	case 9:
		return window(ts.Weekday, 0)
	case 10:
		v := parity(secondRange(ts.Second), ts.Hour12, ts.Minute, ts.Weekday)
		if ts.PM {
			v |= 0b10
		}
		return Symbol(v)
	case 11:
		return window(ts.Day, 4)
	case 12:
		return window(ts.Day, 2)
	case 13:
		return window(ts.Day, 0)
	case 14:
		return window(ts.Month, 2)
	case 15:
		return window(ts.Month, 0)
	case 16:
		return window(ts.Year, 4)
	case 17:
		return window(ts.Year, 2)
	case 18:
		return window(ts.Year, 0)
	default: // 19
		v := parity(ts.Day, ts.Month, ts.Year&0b111111)
		v |= ((ts.Year >> 6) & 1) << 1
		return Symbol(v)
	}
}

// PulseWidthAt returns the pulse width sent during the second containing ts.
// ok is false on the frame marker.
func PulseWidthAt(ts Timestamp) (width time.Duration, ok bool) {
	return Encode(ts).PulseWidth()
}

// Minute holds the start of a minute in the broadcast zone, and the time code sent during it.
type Minute struct {
	time.Time
	Symbols [60]Symbol
}

// NewMinute encodes the minute containing t.
func NewMinute(t time.Time) (Minute, error) {
	t = t.In(Zone).Truncate(time.Minute)
	m := Minute{Time: t}
	for i := range m.Symbols {
		ts, err := NewTimestamp(t.Add(time.Duration(i) * time.Second))
		if err != nil {
			return m, errors.Wrapf(err, "Cannot encode minute %s", t.Format("15:04"))
		}
		m.Symbols[i] = Encode(ts)
	}
	return m, nil
}

// String returns the symbols of the minute as digits, one 20 second frame per group.
// The frame marker is shown as "-".
func (m Minute) String() string {
	var b strings.Builder
	for i, s := range m.Symbols {
		if i > 0 && i%20 == 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
