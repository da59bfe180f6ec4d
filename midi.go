package main

import (
	"fmt"
	"sync"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Audition plays a short preview of the selected pitch class (octave 4)
// on the first available MIDI out.
type Audition struct {
	mu   sync.Mutex
	drv  *rtmididrv.Driver
	out  drivers.Out
	send func(midi.Message) error

	duration time.Duration
	velocity uint8
}

// NewAudition opens the rtmidi driver and the first out port. Call
// Close when done.
func NewAudition() (*Audition, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}
	outs, err := drv.Outs()
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("list outs: %w", err)
	}
	if len(outs) == 0 {
		drv.Close()
		return nil, fmt.Errorf("no MIDI out ports")
	}
	out := outs[0]
	if err := out.Open(); err != nil {
		drv.Close()
		return nil, fmt.Errorf("open %q: %w", out.String(), err)
	}
	send, err := midi.SendTo(out)
	if err != nil {
		out.Close()
		drv.Close()
		return nil, fmt.Errorf("send to %q: %w", out.String(), err)
	}
	return &Audition{
		drv:      drv,
		out:      out,
		send:     send,
		duration: 300 * time.Millisecond,
		velocity: 90,
	}, nil
}

// Play sounds the pitch class briefly. Send errors are swallowed: the
// preview must never disturb selection handling.
func (a *Audition) Play(pc PitchClass) {
	if !pc.Valid() {
		return
	}
	key := uint8(60 + int(pc)) // octave 4

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.send == nil {
		return
	}
	_ = a.send(midi.NoteOn(0, key, a.velocity))
	time.AfterFunc(a.duration, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		if a.send != nil {
			_ = a.send(midi.NoteOff(0, key))
		}
	})
}

func (a *Audition) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.send = nil
	if a.out != nil {
		_ = a.out.Close()
		a.out = nil
	}
	if a.drv != nil {
		_ = a.drv.Close()
		a.drv = nil
	}
}
