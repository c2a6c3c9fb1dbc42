// Package agent drives a match without a human, for batch runs.
package agent

import (
	"sort"

	"go-lane-defense/internal/app"
)

// Autopilot plays like a cautious player: it hovers over a resource when one
// is on the field and guards every lane that holds an enemy with a defender
// in a fixed column.
type Autopilot struct {
	Column int
}

func NewAutopilot(column int) *Autopilot {
	return &Autopilot{Column: column}
}

// Act feeds one frame of input to g. Call it before g.Update.
func (a *Autopilot) Act(g *app.Game) {
	if resources := g.ECS.Resources(); len(resources) > 0 {
		cx, cy := resources[0].Body.Center()
		g.SetPointer(cx, cy)
	} else {
		g.ClearPointer()
	}

	cfg := g.Config
	cell := cfg.Grid.CellSize
	x := (float64(a.Column) + 0.5) * cell

	for _, laneY := range threatenedLanes(g) {
		if g.Match().Resources < cfg.Defender.Cost {
			return
		}
		y := laneY + cell/2
		px, py := g.Grid.Snap(x, y)
		if g.ECS.DefenderAt(px, py) {
			continue
		}
		g.HandleClick(x, y)
	}
}

// threatenedLanes returns the y of every lane holding an enemy, nearest threat first.
func threatenedLanes(g *app.Game) []float64 {
	nearest := map[float64]float64{}
	for _, en := range g.ECS.Enemies() {
		// верх клетки линии, без зазора
		laneY := en.Body.Y - g.Config.Grid.CellGap
		if x, ok := nearest[laneY]; !ok || en.Body.X < x {
			nearest[laneY] = en.Body.X
		}
	}
	lanes := make([]float64, 0, len(nearest))
	for y := range nearest {
		lanes = append(lanes, y)
	}
	sort.Slice(lanes, func(i, j int) bool {
		if nearest[lanes[i]] != nearest[lanes[j]] {
			return nearest[lanes[i]] < nearest[lanes[j]]
		}
		return lanes[i] < lanes[j]
	})
	return lanes
}
