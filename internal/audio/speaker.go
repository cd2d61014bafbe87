package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const defaultSampleRate = beep.SampleRate(44100)

// Speaker plays tones on the default output device through beep.
type Speaker struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	initialized bool
}

func NewSpeaker(sampleRate int) *Speaker {
	sr := beep.SampleRate(sampleRate)
	if sr <= 0 {
		sr = defaultSampleRate
	}
	return &Speaker{sampleRate: sr}
}

// Initialize opens the output device. Calling it again after success is a no-op.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

func (s *Speaker) PlayTone(freq float64, d time.Duration) error {
	s.mu.Lock()
	ready := s.initialized
	s.mu.Unlock()
	if !ready {
		return ErrUnavailable
	}

	sine, err := generators.SineTone(s.sampleRate, freq)
	if err != nil {
		return err
	}
	quiet := &effects.Volume{Streamer: sine, Base: 2, Volume: -2}
	speaker.Play(beep.Take(s.sampleRate.N(d), quiet))
	return nil
}

// Close releases the output device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}
