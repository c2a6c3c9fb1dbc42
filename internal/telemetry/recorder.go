// Package telemetry records match events and writes them out as CSV.
package telemetry

import (
	"fmt"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
)

// EventRecord is one row of events.csv.
type EventRecord struct {
	Seed  int64   `csv:"seed"`
	Frame int     `csv:"frame"`
	Event string  `csv:"event"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
	Value int     `csv:"value"` // reward, amount or resources left, depending on the event
}

// MatchSummary is one row of matches.csv.
type MatchSummary struct {
	Seed           int64  `csv:"seed"`
	Frames         int    `csv:"frames"`
	Outcome        string `csv:"outcome"`
	Score          int    `csv:"score"`
	Resources      int    `csv:"resources"`
	EnemiesSpawned int    `csv:"enemies_spawned"`
	Kills          int    `csv:"kills"`
	Placements     int    `csv:"placements"`
	Rejections     int    `csv:"rejections"`
	DefenderLosses int    `csv:"defender_losses"`
	Shots          int    `csv:"shots"`
	Collected      int    `csv:"collected"`
}

// Won reports whether the match ended in LevelCompleted.
func (m MatchSummary) Won() bool {
	return m.Outcome == component.LevelCompleted.String()
}

func (m MatchSummary) String() string {
	return fmt.Sprintf("seed=%d outcome=%s frames=%d score=%d resources=%d kills=%d placed=%d lost=%d collected=%d",
		m.Seed, m.Outcome, m.Frames, m.Score, m.Resources, m.Kills, m.Placements, m.DefenderLosses, m.Collected)
}

// Recorder listens to one match and accumulates its rows.
type Recorder struct {
	seed    int64
	Events  []EventRecord
	summary MatchSummary

	// KeepEvents=false only counts; long batches do not need every row.
	KeepEvents bool
}

func NewRecorder(seed int64, keepEvents bool) *Recorder {
	return &Recorder{
		seed:       seed,
		KeepEvents: keepEvents,
		summary:    MatchSummary{Seed: seed},
	}
}

// Attach subscribes the recorder to every match event.
func (r *Recorder) Attach(d *event.Dispatcher) {
	d.SubscribeAll(r)
}

// OnEvent implements event.Listener.
func (r *Recorder) OnEvent(e event.Event) {
	rec := EventRecord{Seed: r.seed, Frame: e.Frame, Event: string(e.Type)}

	switch data := e.Data.(type) {
	case event.Placement:
		rec.X, rec.Y, rec.Value = data.X, data.Y, data.Resources
	case event.Kill:
		rec.X, rec.Y, rec.Value = data.X, data.Y, data.Reward
	case event.Spawn:
		rec.X, rec.Y, rec.Value = data.X, data.Y, data.Amount
	case event.Collected:
		rec.Value = data.Amount
	case event.Outcome:
		rec.Value = data.Score
	}

	switch e.Type {
	case event.DefenderPlaced:
		r.summary.Placements++
	case event.PlacementRejected:
		r.summary.Rejections++
	case event.DefenderDestroyed:
		r.summary.DefenderLosses++
	case event.ProjectileFired:
		r.summary.Shots++
	case event.EnemySpawned:
		r.summary.EnemiesSpawned++
	case event.EnemyKilled:
		r.summary.Kills++
	case event.ResourceCollected:
		r.summary.Collected += rec.Value
	}

	if r.KeepEvents {
		r.Events = append(r.Events, rec)
	}
}

// Summary closes the books on the match using its final counters.
func (r *Recorder) Summary(m component.Match) MatchSummary {
	s := r.summary
	s.Frames = m.Frame
	s.Outcome = m.Phase.String()
	s.Score = m.Score
	s.Resources = m.Resources
	return s
}
