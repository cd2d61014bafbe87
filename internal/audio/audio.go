// Package audio provides the fire-and-forget tone collaborator used for hover and
// confirm feedback.
package audio

import (
	"errors"
	"time"
)

// ErrUnavailable is returned by players that have no output device.
var ErrUnavailable = errors.New("audio unavailable")

// Player plays a short sine tone. Implementations must not block for the tone's duration.
type Player interface {
	PlayTone(freq float64, d time.Duration) error
}

type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	HoverTone   = Tone{Freq: 660, Duration: 30 * time.Millisecond}
	ConfirmTone = Tone{Freq: 880, Duration: 60 * time.Millisecond}
)

// Trigger plays t on p and swallows every failure, including panics.
func Trigger(p Player, t Tone) {
	if p == nil {
		return
	}
	defer func() { _ = recover() }()
	_ = p.PlayTone(t.Freq, t.Duration)
}

// Nop discards every tone.
type Nop struct{}

func (Nop) PlayTone(float64, time.Duration) error { return nil }
