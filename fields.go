// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package bpc

import (
	"math/bits"

	"github.com/pkg/errors"
)

// A fieldDef holds the range of a single calendar or clock value carried by the time code.
type fieldDef struct {
	label          string
	minVal, maxVal int
}

// newFieldDef creates a new field definition.
func newFieldDef(label string, minVal, maxVal int) fieldDef {
	return fieldDef{label, minVal, maxVal}
}

// check returns an error if v cannot be carried by this field.
func (fd fieldDef) check(v int) error {
	if v < fd.minVal || v > fd.maxVal {
		return errors.Errorf("The value %d is out of range [%d, %d] for the field %s", v, fd.minVal, fd.maxVal, fd.label)
	}
	return nil
}

var (
	fieldYear    = newFieldDef("year", 0, 99) // Years since 2000
	fieldMonth   = newFieldDef("month", 1, 12)
	fieldDay     = newFieldDef("day", 1, 31)
	fieldWeekday = newFieldDef("weekday", 1, 7)
	fieldHour12  = newFieldDef("hour12", 1, 12)
	fieldMinute  = newFieldDef("minute", 0, 59)
	fieldSecond  = newFieldDef("second", 0, 59)
)

// window returns the 2 bits of v starting at bit shift.
// Fields are sent most significant window first, so a 6 bit minute
// is sent as window(m, 4), window(m, 2), window(m, 0).
func window(v, shift int) Symbol {
	return Symbol((v >> uint(shift)) & 0b11)
}

// parity returns the even parity bit of vals:
// 0 if the total number of set bits is even, 1 if it is odd.
func parity(vals ...int) int {
	c := 0
	for _, v := range vals {
		c += bits.OnesCount(uint(v))
	}
	return c % 2
}

// secondRange is the code for the 20 second block a second falls into,
// as carried in the parity of fragment 10.
// Note that the third block is 0b11, not 0b10.
func secondRange(second int) int {
	switch {
	case second >= 41:
		return 0b11
	case second >= 21:
		return 0b01
	default:
		return 0b00
	}
}
