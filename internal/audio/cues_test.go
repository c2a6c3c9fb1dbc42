package audio

import (
	"io"
	"testing"

	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/logger"

	"github.com/gopxl/beep"
)

// drain reads a streamer to the end and returns the sample count and peak.
func drain(s beep.Streamer) (int, float64) {
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestCuesPlayPerEvent(t *testing.T) {
	logger.SetOutput(io.Discard)
	var played []beep.Streamer
	c := NewCues(func(s beep.Streamer) { played = append(played, s) }, 1)
	d := event.NewDispatcher()
	c.Attach(d)

	d.Dispatch(event.Event{Type: event.EnemyKilled})
	d.Dispatch(event.Event{Type: event.EnemySpawned}) // без звука
	d.Dispatch(event.Event{Type: event.GameOver})

	if len(played) != 2 {
		t.Fatalf("played %d cues, want 2", len(played))
	}

	n, peak := drain(played[0])
	if want := SampleRate.N(Duration(event.EnemyKilled)); n != want {
		t.Errorf("kill cue = %d samples, want %d", n, want)
	}
	if peak <= 0 || peak > 1.0001 {
		t.Errorf("kill cue peak = %v, want (0, 1]", peak)
	}

	n, _ = drain(played[1])
	if want := SampleRate.N(Duration(event.GameOver)); n != want {
		t.Errorf("game over cue = %d samples, want %d", n, want)
	}
}

func TestCuesSilentAtZeroVolume(t *testing.T) {
	logger.SetOutput(io.Discard)
	var played beep.Streamer
	c := NewCues(func(s beep.Streamer) { played = s }, 0)
	c.OnEvent(event.Event{Type: event.DefenderPlaced})

	if played == nil {
		t.Fatal("no cue played")
	}
	if _, peak := drain(played); peak != 0 {
		t.Errorf("peak = %v at zero volume, want 0", peak)
	}
}

func TestDuration(t *testing.T) {
	if d := Duration(event.EnemySpawned); d != 0 {
		t.Errorf("Duration(EnemySpawned) = %v, want 0", d)
	}
	if d := Duration(event.LevelCompleted); d <= Duration(event.EnemyKilled) {
		t.Errorf("level completed cue %v should outlast a kill %v", d, Duration(event.EnemyKilled))
	}
}
