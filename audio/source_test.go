// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package audio

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// constSource returns the same sample, n samples at a time (0 = as many as asked).
type constSource struct {
	val float32
	n   int
	err error
}

func (s *constSource) Read(buff []float32) (int, error) {
	n := len(buff)
	if s.n > 0 && s.n < n {
		n = s.n
	}
	for i := 0; i < n; i++ {
		buff[i] = s.val
	}
	return n, s.err
}

func TestGain(t *testing.T) {
	g := NewGain(&constSource{val: 0.5}, 0)
	if g.Amplitude() != 1 {
		t.Errorf("expected amplitude 1 at 0 dBFS, got %f", g.Amplitude())
	}

	buff := make([]float32, 4)
	g.Read(buff)
	for i, v := range buff {
		if v != 0.5 {
			t.Errorf("sample %d: expected 0.5, got %f", i, v)
		}
	}

	g.SetAmpDBFS(-20)
	if math.Abs(g.Amplitude()-0.1) > 1e-9 {
		t.Errorf("expected amplitude 0.1 at -20 dBFS, got %f", g.Amplitude())
	}
	g.Read(buff)
	for i, v := range buff {
		if math.Abs(float64(v)-0.05) > 1e-6 {
			t.Errorf("sample %d: expected 0.05, got %f", i, v)
		}
	}
}

func TestStreamFillsShortReads(t *testing.T) {
	cb := Stream(&constSource{val: 0.25, n: 2})
	buff := []float32{9, 9, 9, 9}
	cb(buff)

	expected := []float32{0.25, 0.25, 0, 0}
	for i := range expected {
		if buff[i] != expected[i] {
			t.Errorf("sample %d: expected %f, got %f", i, expected[i], buff[i])
		}
	}
}

func TestStreamPanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	Stream(&constSource{err: errors.New("broken")})(make([]float32, 4))
}

func TestReader(t *testing.T) {
	r := NewReader(&constSource{val: -0.75})

	p := make([]byte, 10) // Room for 2 samples
	n, err := r.Read(p)
	if err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Fatalf("expected 8 bytes, got %d", n)
	}
	for i := 0; i < 2; i++ {
		v := math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
		if v != -0.75 {
			t.Errorf("sample %d: expected -0.75, got %f", i, v)
		}
	}

	if _, err := r.Read(make([]byte, 3)); err != io.ErrShortBuffer {
		t.Errorf("expected io.ErrShortBuffer, got %v", err)
	}
}

func TestCarrier(t *testing.T) {
	c := Carrier{Freq: 11025, SampleRate: 44100} // A quarter cycle per sample
	expected := []float32{0, 1, 0, -1}
	for n, want := range expected {
		if got := c.At(n); math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("sample %d: expected %f, got %f", n, want, got)
		}
	}

	// A whole number of cycles per second starts each second at the same phase.
	c = Carrier{Freq: 13700, SampleRate: 44100}
	if got := c.At(44100); math.Abs(float64(got)) > 1e-6 {
		t.Errorf("expected the carrier to end the second at phase 0, got %f", got)
	}
}
