// Package audio plays the game's sound effects through the system speaker.
// A Player that failed to open, or was disabled by config, stays silent.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/retro-snake/internal/config"
	"github.com/vovakirdan/retro-snake/internal/core"
)

// SampleRate is the speaker output rate.
const SampleRate = beep.SampleRate(44100)

// Player owns the speaker for the lifetime of a game session.
type Player struct {
	sr     beep.SampleRate
	volume float64
	open   bool
}

// Open acquires the speaker. Call Close on every exit path.
// A disabled config yields a silent Player and no error. If the speaker
// cannot be initialized, Open returns a silent Player together with the error
// so the caller can log it and continue.
func Open(cfg config.AudioConfig) (*Player, error) {
	p := &Player{sr: SampleRate, volume: cfg.Volume}
	if !cfg.Enabled {
		return p, nil
	}

	if err := speaker.Init(p.sr, p.sr.N(time.Second/10)); err != nil {
		return p, fmt.Errorf("audio: speaker init: %w", err)
	}
	p.open = true
	return p, nil
}

// Disabled reports whether Play is a no-op.
func (p *Player) Disabled() bool {
	return p == nil || !p.open
}

// Play starts the effect for ev without waiting for it to finish.
func (p *Player) Play(ev core.Event) {
	if p.Disabled() {
		return
	}
	s, err := p.sound(ev)
	if err != nil || s == nil {
		return
	}
	speaker.Play(s)
}

// sound builds the volume-adjusted streamer for ev.
func (p *Player) sound(ev core.Event) (beep.Streamer, error) {
	s, err := newSound(ev, p.sr)
	if err != nil || s == nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   p.volume,
		Silent:   p.volume <= config.MinVolume,
	}, nil
}

// Close stops pending sounds and releases the speaker.
func (p *Player) Close() error {
	if p.Disabled() {
		return nil
	}
	speaker.Clear()
	speaker.Close()
	p.open = false
	return nil
}
