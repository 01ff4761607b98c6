// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package bpc

import (
	"encoding/binary"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bpc.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// Seconds 3 and 4: 300 ms then 200 ms for hour 9.
	start := time.Date(2024, 3, 15, 9, 7, 3, 400*int(time.Millisecond), Zone)
	if err := Record(f, start, 2, 44100); err != nil {
		t.Fatal(err)
	}

	info, err := f.Stat()
	if err != nil {
		t.Fatal(err)
	}
	if want := int64(44 + 2*44100*2); info.Size() != want {
		t.Errorf("expected %d bytes, got %d", want, info.Size())
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 44 {
		t.Fatalf("expected a 44 byte header, got %d bytes", len(data))
	}
	if channels := binary.LittleEndian.Uint16(data[22:]); channels != 1 {
		t.Errorf("expected 1 channel, got %d", channels)
	}
	if rate := binary.LittleEndian.Uint32(data[24:]); rate != 44100 {
		t.Errorf("expected 44100 HZ, got %d", rate)
	}

	pcm := data[44:]
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[2*i:]))
	}
	if len(samples) != 2*44100 {
		t.Fatalf("expected %d samples, got %d", 2*44100, len(samples))
	}

	tests := []struct {
		second, pivot int
	}{
		{0, 13230},
		{1, 8820},
	}
	for _, tt := range tests {
		sec := samples[tt.second*44100 : (tt.second+1)*44100]
		for i := 0; i < tt.pivot; i++ {
			if sec[i] != 0 {
				t.Fatalf("second %d, sample %d: expected silence, got %d", tt.second, i, sec[i])
			}
		}
		peak := 0
		for i := tt.pivot; i < len(sec); i++ {
			v := int(sec[i])
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		// Full scale is 32767.
		if peak < 29490 {
			t.Errorf("second %d: expected the carrier after the pulse, peak was %d", tt.second, peak)
		}
	}
}

func TestRecordErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bpc.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if err := Record(f, time.Date(2024, 3, 15, 9, 7, 3, 0, Zone), 0, 44100); err == nil {
		t.Error("expected an error for 0 seconds")
	}
	for _, sampleRate := range []int{0, -44100} {
		if err := Record(f, time.Date(2024, 3, 15, 9, 7, 3, 0, Zone), 2, sampleRate); err == nil {
			t.Errorf("expected an error for a sample rate of %d", sampleRate)
		}
	}
	if err := Record(f, time.Date(1999, 12, 31, 23, 59, 0, 0, Zone), 10, 44100); err == nil {
		t.Error("expected an error for 1999")
	}
	if err := Record(f, time.Date(2099, 12, 31, 23, 59, 59, 0, Zone), 2, 44100); err == nil {
		t.Error("expected an error for recording into 2100")
	}
}
