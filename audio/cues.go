// Package audio plays short synthesized cues when the game changes state.
// It subscribes to the stateChanged event rather than being called by the
// manager, so the core never depends on audio being available.
package audio

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/tarwick/emberfall/events"
)

const (
	cueSampleRate = beep.SampleRate(44100)
	cueDuration   = 90 * time.Millisecond
)

// Cues owns the speaker and the per-state tone mapping.
type Cues struct {
	log   *slog.Logger
	ready bool
	mute  bool
}

// NewCues initializes the speaker. Failure is non-fatal: the game runs
// silent and the error is logged once.
func NewCues(log *slog.Logger) *Cues {
	if log == nil {
		log = slog.Default()
	}

	c := &Cues{log: log}
	if err := speaker.Init(cueSampleRate, cueSampleRate.N(time.Second/10)); err != nil {
		log.Warn("audio initialization failed, running silent", "error", err)
		return c
	}

	c.ready = true
	return c
}

// Attach subscribes the cue handler to stateChanged events on the bus.
func (c *Cues) Attach(bus *events.Bus) {
	bus.Subscribe(events.EventStateChanged, c.onStateChanged)
}

// SetMute toggles cue playback without touching the speaker.
func (c *Cues) SetMute(mute bool) {
	c.mute = mute
}

func (c *Cues) onStateChanged(p events.Payload) {
	c.Play(p.New())
}

// Play emits the tone mapped to the entered state. No-op when the speaker
// failed to initialize or cues are muted.
func (c *Cues) Play(stateName string) {
	if !c.ready || c.mute {
		return
	}

	sine, err := generators.SineTone(cueSampleRate, toneFor(stateName))
	if err != nil {
		c.log.Warn("cue generation failed", "state", stateName, "error", err)
		return
	}

	speaker.Play(beep.Take(cueSampleRate.N(cueDuration), sine))
}

// toneFor maps a state name to its cue frequency in Hz.
func toneFor(stateName string) float64 {
	switch stateName {
	case "main_menu":
		return 440
	case "gameplay":
		return 660
	case "paused":
		return 330
	case "game_over":
		return 220
	default:
		return 523
	}
}
