// Copyright (c) 2017 Niko Carpenter
// Use of this source code is governed by the MIT License,
// which can be found in the LICENSE file.

package audio

import (
	"log"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/pkg/errors"
)

// A Player plays a Source on the default output device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
}

// Play opens the default output device in mono, 32 bit float,
// and starts playing source on it.
// Only one Player may be opened per process.
func Play(source Source, sampleRate int) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   20 * time.Millisecond,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot open audio output")
	}
	<-ready

	player := ctx.NewPlayer(NewReader(source))
	player.Play()
	log.Printf("Audio output initialized: %dHz, 1 channel\n", sampleRate)

	return &Player{ctx, player}, nil
}

// Close stops playback and suspends the output device.
func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return errors.Wrap(err, "Cannot close player")
	}
	return errors.Wrap(p.ctx.Suspend(), "Cannot suspend audio output")
}
