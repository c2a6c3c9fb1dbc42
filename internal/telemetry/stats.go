// internal/telemetry/stats.go
package telemetry

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// BatchSummary aggregates a run of matches.
type BatchSummary struct {
	Matches    int
	Wins       int
	WinRate    float64
	MeanFrames float64
	StdFrames  float64
	MeanScore  float64
	StdScore   float64
	MeanKills  float64
}

// Summarize computes batch statistics. An empty batch yields the zero value.
func Summarize(matches []MatchSummary) BatchSummary {
	n := len(matches)
	if n == 0 {
		return BatchSummary{}
	}

	frames := make([]float64, n)
	scores := make([]float64, n)
	kills := make([]float64, n)
	wins := 0
	for i, m := range matches {
		frames[i] = float64(m.Frames)
		scores[i] = float64(m.Score)
		kills[i] = float64(m.Kills)
		if m.Won() {
			wins++
		}
	}

	b := BatchSummary{
		Matches:   n,
		Wins:      wins,
		WinRate:   float64(wins) / float64(n),
		MeanKills: stat.Mean(kills, nil),
	}
	if n > 1 {
		b.MeanFrames, b.StdFrames = stat.MeanStdDev(frames, nil)
		b.MeanScore, b.StdScore = stat.MeanStdDev(scores, nil)
	} else {
		b.MeanFrames, b.MeanScore = frames[0], scores[0]
	}
	return b
}

func (b BatchSummary) String() string {
	return fmt.Sprintf("matches=%d wins=%d win_rate=%.2f frames=%.1f±%.1f score=%.2f±%.2f kills=%.2f",
		b.Matches, b.Wins, b.WinRate, b.MeanFrames, b.StdFrames, b.MeanScore, b.StdScore, b.MeanKills)
}
