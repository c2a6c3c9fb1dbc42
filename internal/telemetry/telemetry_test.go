package telemetry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/event"
)

func TestRecorderCounts(t *testing.T) {
	d := event.NewDispatcher()
	r := NewRecorder(7, true)
	r.Attach(d)

	d.Dispatch(event.Event{Type: event.DefenderPlaced, Frame: 1, Data: event.Placement{X: 103, Y: 203, Resources: 400}})
	d.Dispatch(event.Event{Type: event.PlacementRejected, Frame: 2, Data: event.Placement{Reason: event.RejectOccupied}})
	d.Dispatch(event.Event{Type: event.EnemySpawned, Frame: 0, Data: event.Spawn{X: 900, Y: 203, Lane: 2}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Frame: 400, Data: event.Kill{X: 600, Y: 203, Reward: 10, Score: 1}})
	d.Dispatch(event.Event{Type: event.ResourceCollected, Frame: 410, Data: event.Collected{Amount: 30, Resources: 440}})
	d.Dispatch(event.Event{Type: event.ResourceCollected, Frame: 420, Data: event.Collected{Amount: 20, Resources: 460}})

	s := r.Summary(component.Match{Frame: 500, Score: 1, Resources: 460, Phase: component.GameOver})

	if s.Seed != 7 || s.Frames != 500 || s.Outcome != "game_over" {
		t.Errorf("summary header = %+v", s)
	}
	if s.Placements != 1 || s.Rejections != 1 || s.EnemiesSpawned != 1 || s.Kills != 1 {
		t.Errorf("counts = %+v", s)
	}
	if s.Collected != 50 {
		t.Errorf("Collected = %d, want 50", s.Collected)
	}
	if s.Won() {
		t.Error("game over counted as a win")
	}
	if len(r.Events) != 6 {
		t.Fatalf("len(Events) = %d, want 6", len(r.Events))
	}
	if r.Events[3].Value != 10 || r.Events[3].Event != "EnemyKilled" {
		t.Errorf("kill row = %+v", r.Events[3])
	}
}

func TestRecorderWithoutEvents(t *testing.T) {
	r := NewRecorder(1, false)
	r.OnEvent(event.Event{Type: event.EnemyKilled, Data: event.Kill{Reward: 10}})
	if len(r.Events) != 0 {
		t.Errorf("kept %d rows with KeepEvents=false", len(r.Events))
	}
	if s := r.Summary(component.Match{}); s.Kills != 1 {
		t.Errorf("Kills = %d, want 1", s.Kills)
	}
}

func TestSummarize(t *testing.T) {
	matches := []MatchSummary{
		{Frames: 1000, Score: 5, Kills: 5, Outcome: "level_completed"},
		{Frames: 2000, Score: 3, Kills: 3, Outcome: "game_over"},
		{Frames: 3000, Score: 4, Kills: 4, Outcome: "game_over"},
	}
	b := Summarize(matches)

	if b.Matches != 3 || b.Wins != 1 {
		t.Errorf("matches/wins = %d/%d, want 3/1", b.Matches, b.Wins)
	}
	if math.Abs(b.WinRate-1.0/3) > 1e-9 {
		t.Errorf("WinRate = %v, want 1/3", b.WinRate)
	}
	if b.MeanFrames != 2000 {
		t.Errorf("MeanFrames = %v, want 2000", b.MeanFrames)
	}
	if math.Abs(b.StdFrames-1000) > 1e-9 {
		t.Errorf("StdFrames = %v, want 1000", b.StdFrames)
	}
	if b.MeanScore != 4 {
		t.Errorf("MeanScore = %v, want 4", b.MeanScore)
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	if b := Summarize(nil); b.Matches != 0 {
		t.Errorf("empty batch = %+v", b)
	}
	b := Summarize([]MatchSummary{{Frames: 10, Score: 2}})
	if b.MeanFrames != 10 || b.StdFrames != 0 || math.IsNaN(b.StdScore) {
		t.Errorf("single match = %+v", b)
	}
}

func TestOutputManager(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}

	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	rows := []EventRecord{{Seed: 1, Frame: 0, Event: "EnemySpawned", X: 900, Y: 203}}
	if err := om.WriteEvents(rows); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	if err := om.WriteEvents(rows); err != nil {
		t.Fatalf("WriteEvents: %v", err)
	}
	if err := om.WriteMatch(MatchSummary{Seed: 1, Outcome: "game_over"}); err != nil {
		t.Fatalf("WriteMatch: %v", err)
	}
	if err := om.WriteMatch(MatchSummary{Seed: 2, Outcome: "level_completed"}); err != nil {
		t.Fatalf("WriteMatch: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	events, err := os.ReadFile(filepath.Join(dir, "events.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(events)), "\n")
	if len(lines) != 3 {
		t.Fatalf("events.csv has %d lines, want header + 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "seed,frame,event") {
		t.Errorf("events header = %q", lines[0])
	}

	matches, err := os.ReadFile(filepath.Join(dir, "matches.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(matches), "\n"); n != 3 {
		t.Errorf("matches.csv has %d lines, want 3", n)
	}
	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("config.yaml not written: %v", err)
	}
}

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	if err := om.WriteMatch(MatchSummary{}); err != nil {
		t.Errorf("nil WriteMatch: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}
