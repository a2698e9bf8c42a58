package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays cues on the default output device through one mixer.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	closed bool
}

// NewSpeaker opens the output device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	sp := &Speaker{mixer: &beep.Mixer{}}
	speaker.Play(sp.mixer)
	return sp, nil
}

// Eat plays the food cue.
func (s *Speaker) Eat() {
	s.play(eatSound(sampleRate))
}

// Crash plays the collision cue.
func (s *Speaker) Crash() {
	s.play(crashSound(sampleRate))
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	// The mixer is read by the speaker goroutine.
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}
