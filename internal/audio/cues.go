// Package audio turns match events into short synthesized tones.
package audio

import (
	"fmt"
	"math"
	"time"

	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/logger"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate of every cue.
const SampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes maps events to the notes played for them, in order.
var cueNotes = map[event.EventType][]note{
	event.DefenderPlaced:    {{660, 80 * time.Millisecond}},
	event.EnemyKilled:       {{880, 120 * time.Millisecond}},
	event.ResourceCollected: {{1320, 60 * time.Millisecond}},
	event.GameOver:          {{220, 200 * time.Millisecond}, {165, 300 * time.Millisecond}},
	event.LevelCompleted:    {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 240 * time.Millisecond}},
}

// Cues listens to a match and plays a tone per event. Play is injected so
// hosts can route to the speaker and tests can capture the streams.
type Cues struct {
	Play   func(s beep.Streamer)
	Volume float64 // 0..1
}

func NewCues(play func(s beep.Streamer), volume float64) *Cues {
	return &Cues{Play: play, Volume: volume}
}

// Attach subscribes the cues to the events that have a sound.
func (c *Cues) Attach(d *event.Dispatcher) {
	for t := range cueNotes {
		d.Subscribe(t, c)
	}
}

// OnEvent implements event.Listener.
func (c *Cues) OnEvent(e event.Event) {
	notes, ok := cueNotes[e.Type]
	if !ok || c.Play == nil {
		return
	}
	s, err := c.build(notes)
	if err != nil {
		logger.Log.WithError(err).WithField("event", e.Type).Warn("Audio cue skipped")
		return
	}
	c.Play(s)
}

func (c *Cues) build(notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(SampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone %.0f Hz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(SampleRate.N(n.dur), tone))
	}
	return volume(beep.Seq(parts...), c.Volume), nil
}

// volume scales linearly; zero is silence rather than log2(0).
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Duration returns how long the cue for t lasts, zero if it has none.
func Duration(t event.EventType) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[t] {
		d += n.dur
	}
	return d
}

// InitSpeaker opens the audio device and returns a play function for Cues.
// Hosts treat the error as non-fatal and run silent.
func InitSpeaker() (func(beep.Streamer), error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return func(s beep.Streamer) { speaker.Play(s) }, nil
}
