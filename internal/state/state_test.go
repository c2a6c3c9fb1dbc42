package state

import (
	"io"
	"testing"

	"go-lane-defense/internal/app"
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/logger"
	"go-lane-defense/pkg/render"
)

func newMachine(t *testing.T) (*StateMachine, *Session) {
	t.Helper()
	logger.SetOutput(io.Discard)
	sm := NewStateMachine()
	session := &Session{Config: config.Default(), Seed: 10}
	sm.SetState(NewMenuState(sm, session))
	return sm, session
}

func TestMenuStartsGameOnConfirm(t *testing.T) {
	sm, _ := newMachine(t)
	sm.Update(Input{})
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Fatalf("left menu without input: %T", sm.Current())
	}
	sm.Update(Input{Confirm: true})
	if _, ok := sm.Current().(*GameState); !ok {
		t.Fatalf("state = %T, want *GameState", sm.Current())
	}
}

func TestMenuStartsGameOnButtonClick(t *testing.T) {
	sm, _ := newMachine(t)
	sm.Update(Input{Clicked: true, ClickX: 10, ClickY: 10})
	if _, ok := sm.Current().(*MenuState); !ok {
		t.Fatal("click outside the button started a game")
	}
	sm.Update(Input{Clicked: true, ClickX: 450, ClickY: 300})
	if _, ok := sm.Current().(*GameState); !ok {
		t.Fatalf("state = %T, want *GameState", sm.Current())
	}
}

func TestGameStateAppliesInputBeforeTick(t *testing.T) {
	sm, _ := newMachine(t)
	sm.Update(Input{Confirm: true})
	gs := sm.Current().(*GameState)

	sm.Update(Input{Clicked: true, ClickX: 150, ClickY: 250, PointerX: 150, PointerY: 250, PointerPresent: true})

	g := gs.Game()
	if n := g.ECS.DefenderCount(); n != 1 {
		t.Errorf("DefenderCount = %d, want 1", n)
	}
	if g.Match().Frame != 1 {
		t.Errorf("Frame = %d, want 1", g.Match().Frame)
	}
	if !g.ECS.Pointer.Present {
		t.Error("pointer not forwarded")
	}
}

func TestPauseFreezesAndResumes(t *testing.T) {
	sm, _ := newMachine(t)
	sm.Update(Input{Confirm: true})
	gs := sm.Current().(*GameState)
	sm.Update(Input{})
	frame := gs.Game().Match().Frame

	sm.Update(Input{Pause: true})
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("state = %T, want *PauseState", sm.Current())
	}
	for i := 0; i < 10; i++ {
		sm.Update(Input{Clicked: true, ClickX: 150, ClickY: 250})
	}
	if got := gs.Game().Match().Frame; got != frame {
		t.Errorf("Frame moved while paused: %d -> %d", frame, got)
	}
	if n := gs.Game().ECS.DefenderCount(); n != 0 {
		t.Errorf("click placed a defender while paused")
	}

	var rec render.Recorder
	sm.Draw(&rec)
	if !rec.HasText("PAUSED") {
		t.Errorf("texts = %v, want PAUSED", rec.Texts())
	}

	sm.Update(Input{Pause: true})
	if sm.Current() != State(gs) {
		t.Fatalf("resume did not return to the same match")
	}
}

func TestRestartAfterTerminalUsesNextSeed(t *testing.T) {
	sm, session := newMachine(t)
	var seeds []int64
	session.OnMatch = func(g *app.Game) { seeds = append(seeds, g.Seed()) }

	sm.Update(Input{Confirm: true})
	gs := sm.Current().(*GameState)
	gs.Game().ECS.NewEnemy(component.NewBody(0.1, 203, 94, 94), component.Health{Value: 100},
		component.Enemy{Speed: 1, Movement: 1})
	sm.Update(Input{})
	if !gs.Game().Finished() {
		t.Fatal("match not finished after a breach")
	}

	// Пауза в конце матча ничего не делает
	sm.Update(Input{Pause: true})
	if sm.Current() != State(gs) {
		t.Fatalf("state = %T after pause on a finished match", sm.Current())
	}

	sm.Update(Input{Restart: true})
	next, ok := sm.Current().(*GameState)
	if !ok || next == gs {
		t.Fatal("restart did not create a new match")
	}
	if len(seeds) != 2 || seeds[0] != 10 || seeds[1] != 11 {
		t.Errorf("seeds = %v, want [10 11]", seeds)
	}
	if next.Game().Finished() {
		t.Error("new match already finished")
	}
}

func TestFinishedMatchShowsRestartHint(t *testing.T) {
	sm, _ := newMachine(t)
	sm.Update(Input{Confirm: true})
	gs := sm.Current().(*GameState)
	gs.Game().ECS.Match.Breached = true
	sm.Update(Input{})

	var rec render.Recorder
	sm.Draw(&rec)
	if !rec.HasText("GAME OVER") || !rec.HasText("Press Enter to play again") {
		t.Errorf("texts = %v", rec.Texts())
	}
}

func TestInputSetPointer(t *testing.T) {
	tests := []struct {
		name        string
		x, y        float64
		wantPresent bool
		wantX       float64
		wantY       float64
	}{
		{"inside", 120, 340, true, 120, 340},
		{"on edge", 900, 600, true, 900, 600},
		{"left of field", -5, 100, false, 0, 100},
		{"below field", 300, 650, false, 300, 600},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			in.SetPointer(tt.x, tt.y, 900, 600)
			if in.PointerPresent != tt.wantPresent {
				t.Errorf("PointerPresent = %v, want %v", in.PointerPresent, tt.wantPresent)
			}
			if in.PointerX != tt.wantX || in.PointerY != tt.wantY {
				t.Errorf("pointer = (%v,%v), want (%v,%v)", in.PointerX, in.PointerY, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestActiveGame(t *testing.T) {
	sm, _ := newMachine(t)
	if ActiveGame(sm) != nil {
		t.Fatal("menu has no active game")
	}
	sm.Update(Input{Confirm: true})
	g := ActiveGame(sm)
	if g == nil {
		t.Fatal("game state has no active game")
	}
	sm.Update(Input{Pause: true})
	if _, ok := sm.Current().(*PauseState); !ok {
		t.Fatalf("state = %T, want *PauseState", sm.Current())
	}
	if ActiveGame(sm) != g {
		t.Error("paused state should expose the same match")
	}
}
