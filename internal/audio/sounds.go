package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/retro-snake/internal/core"
)

// Note lengths and pitches of the synthesized effects.
const (
	eatNote1     = 60 * time.Millisecond
	eatNote2     = 90 * time.Millisecond
	eatFreq1     = 660.0
	eatFreq2     = 990.0
	wallDuration = 250 * time.Millisecond
	wallFreq     = 110.0
	fadeTime     = 5 * time.Millisecond
	toneGain     = 0.3
)

// newSound returns a finite streamer for ev, or nil for events without a sound.
func newSound(ev core.Event, sr beep.SampleRate) (beep.Streamer, error) {
	switch ev {
	case core.EventEat:
		n1, err := note(sr, eatFreq1, eatNote1)
		if err != nil {
			return nil, err
		}
		n2, err := note(sr, eatFreq2, eatNote2)
		if err != nil {
			return nil, err
		}
		return beep.Seq(n1, n2), nil
	case core.EventWall:
		return beep.Take(sr.N(wallDuration), newBuzz(sr, wallFreq)), nil
	default:
		return nil, nil
	}
}

// note is a sine tone cut to d with short linear fades at both ends.
func note(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0f Hz: %w", freq, err)
	}
	return newFade(beep.Take(sr.N(d), tone), sr.N(d), sr.N(fadeTime)), nil
}

// fade scales a stream of known length by toneGain and ramps its edges.
type fade struct {
	s     beep.Streamer
	total int
	ramp  int
	pos   int
}

func newFade(s beep.Streamer, total, ramp int) *fade {
	return &fade{s: s, total: total, ramp: ramp}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := toneGain
		if f.ramp > 0 {
			if f.pos < f.ramp {
				vol *= float64(f.pos) / float64(f.ramp)
			} else if rest := f.total - f.pos; rest < f.ramp {
				vol *= float64(rest) / float64(f.ramp)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

// buzz is a low harmonic-rich tone that decays exponentially. It never ends
// on its own; wrap it in beep.Take.
type buzz struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func newBuzz(sr beep.SampleRate, freq float64) *buzz {
	return &buzz{sr: sr, freq: freq}
}

func (b *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.sr)

		sample := 0.5 * math.Sin(2*math.Pi*b.freq*t)
		sample += 0.25 * math.Sin(2*math.Pi*b.freq*2*t)
		sample += 0.125 * math.Sin(2*math.Pi*b.freq*3*t)

		// Fast attack, then decay
		envelope := math.Min(t/0.005, 1.0) * math.Exp(-t*10)
		sample *= envelope * toneGain

		samples[i][0] = sample
		samples[i][1] = sample
		b.pos++
	}
	return len(samples), true
}

func (b *buzz) Err() error { return nil }
