package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// wave shapes a tone.
type wave int

const (
	waveSine wave = iota
	waveSquare
)

// tone is a fixed-frequency oscillator with a linear fade-out over its
// last quarter so notes end without clicks.
type tone struct {
	freq   float64
	phase  float64
	pos    int
	length int
	shape  wave
	rate   beep.SampleRate
}

func newTone(freq float64, d time.Duration, shape wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, length: rate.N(d), shape: shape, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.length {
		return 0, false
	}
	fadeStart := t.length * 3 / 4
	for i := range samples {
		if t.pos >= t.length {
			return i, true
		}

		var v float64
		switch t.shape {
		case waveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}

		if t.pos >= fadeStart {
			v *= float64(t.length-t.pos) / float64(t.length-fadeStart)
		}

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// volume scales a streamer by a linear factor.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// eatSound is two short rising notes.
func eatSound(rate beep.SampleRate) beep.Streamer {
	return volume(beep.Seq(
		newTone(660, 40*time.Millisecond, waveSine, rate),
		newTone(990, 60*time.Millisecond, waveSine, rate),
	), 0.4)
}

// crashSound is a low falling buzz.
func crashSound(rate beep.SampleRate) beep.Streamer {
	return volume(beep.Seq(
		newTone(220, 120*time.Millisecond, waveSquare, rate),
		newTone(110, 200*time.Millisecond, waveSquare, rate),
	), 0.25)
}
