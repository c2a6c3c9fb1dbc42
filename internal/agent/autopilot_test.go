package agent

import (
	"io"
	"testing"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/logger"
)

func newGame(t *testing.T) *app.Game {
	t.Helper()
	logger.SetOutput(io.Discard)
	return app.NewGame(config.Default(), 3)
}

func TestAutopilotGuardsThreatenedLanes(t *testing.T) {
	g := newGame(t)
	g.ECS.NewEnemy(component.NewBody(700, 203, 94, 94), component.Health{Value: 100}, component.Enemy{Speed: 0.5, Movement: 0.5})
	g.ECS.NewEnemy(component.NewBody(500, 403, 94, 94), component.Health{Value: 100}, component.Enemy{Speed: 0.5, Movement: 0.5})

	a := NewAutopilot(1)
	a.Act(g)

	if n := g.ECS.DefenderCount(); n != 2 {
		t.Fatalf("DefenderCount = %d, want 2", n)
	}
	for _, y := range []float64{203, 403} {
		if !g.ECS.DefenderAt(103, y) {
			t.Errorf("no defender at (103, %v)", y)
		}
	}
	if got := g.Match().Resources; got != 300 {
		t.Errorf("Resources = %d, want 300", got)
	}

	// повторный ход не ставит второго защитника в ту же клетку
	a.Act(g)
	if n := g.ECS.DefenderCount(); n != 2 {
		t.Errorf("DefenderCount after second Act = %d, want 2", n)
	}
}

func TestAutopilotRespectsFunds(t *testing.T) {
	g := newGame(t)
	g.ECS.Match.Resources = 150
	g.ECS.NewEnemy(component.NewBody(700, 203, 94, 94), component.Health{Value: 100}, component.Enemy{})
	g.ECS.NewEnemy(component.NewBody(300, 503, 94, 94), component.Health{Value: 100}, component.Enemy{})

	NewAutopilot(0).Act(g)

	if n := g.ECS.DefenderCount(); n != 1 {
		t.Fatalf("DefenderCount = %d, want 1", n)
	}
	// ближайшая угроза защищается первой
	if !g.ECS.DefenderAt(3, 503) {
		t.Error("nearest threat lane not guarded first")
	}
}

func TestAutopilotHoversResource(t *testing.T) {
	g := newGame(t)
	NewAutopilot(0).Act(g)
	if g.ECS.Pointer.Present {
		t.Fatal("pointer present with no resources on the field")
	}

	g.ECS.NewResource(component.NewBody(200, 125, 60, 60), component.Resource{Amount: 40})
	NewAutopilot(0).Act(g)
	p := g.ECS.Pointer
	if !p.Present || p.X != 230 || p.Y != 155 {
		t.Errorf("pointer = %+v, want centre of the resource", *p)
	}
}

func TestAutopilotPlaysAMatchToTheEnd(t *testing.T) {
	g := newGame(t)
	a := NewAutopilot(1)
	for i := 0; i < 60*60*10 && !g.Finished(); i++ {
		a.Act(g)
		g.Update()
	}
	if !g.Finished() {
		t.Fatalf("match still running after 10 minutes: %+v", g.Match())
	}
	if g.Match().Score < 0 {
		t.Error("negative score")
	}
}
