// internal/app/placement.go
package app

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
)

// HandleClick attempts to place a defender in the cell under (x, y).
// Every rejection is silent for the player; it is only reported as an event.
func (g *Game) HandleClick(x, y float64) bool {
	_, ok := g.PlaceDefender(x, y)
	return ok
}

// PlaceDefender snaps (x, y) to its cell and places a defender there if the
// cell is free and the player can pay. Returns the snapped position.
func (g *Game) PlaceDefender(x, y float64) (event.Placement, bool) {
	m := g.ECS.Match
	cost := g.Config.Defender.Cost
	px, py := g.Grid.Snap(x, y)
	p := event.Placement{X: px, Y: py, Cost: cost, Resources: m.Resources}

	switch {
	case g.Finished():
		p.Reason = event.RejectNotRunning
	case !g.Grid.Contains(x, y):
		p.Reason = event.RejectOffGrid
	case m.Resources < cost:
		p.Reason = event.RejectInsufficientFunds
	case g.ECS.DefenderAt(px, py):
		p.Reason = event.RejectOccupied
	}
	if p.Reason != "" {
		g.dispatch(event.PlacementRejected, p)
		return p, false
	}

	m.Resources -= cost
	p.Resources = m.Resources
	size := g.Config.Derived.EntitySize
	g.ECS.NewDefender(
		component.NewBody(px, py, size, size),
		component.Health{Value: g.Config.Defender.Health},
		component.Defender{Cost: cost},
	)
	g.dispatch(event.DefenderPlaced, p)
	return p, true
}

func (g *Game) dispatch(t event.EventType, data interface{}) {
	g.EventDispatcher.Dispatch(event.Event{Type: t, Frame: g.ECS.Match.Frame, Data: data})
}
