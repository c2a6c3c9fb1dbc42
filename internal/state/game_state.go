// internal/state/game_state.go
package state

import (
	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/render"
)

// Убеждаемся, что GameState соответствует интерфейсу State
var _ State = (*GameState)(nil)

// GameState — идущий матч. Ввод применяется до тика.
type GameState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
}

func NewGameState(sm *StateMachine, session *Session) *GameState {
	return &GameState{
		sm:      sm,
		session: session,
		game:    session.NextGame(),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(in Input) {
	if in.PointerPresent {
		g.game.SetPointer(in.PointerX, in.PointerY)
	} else {
		g.game.ClearPointer()
	}

	if g.game.Finished() {
		if in.Confirm || in.Restart {
			g.Restart()
		}
		return
	}

	if in.Pause {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if in.Clicked {
		g.game.HandleClick(in.ClickX, in.ClickY)
	}
	g.game.Update()
}

func (g *GameState) Draw(surface render.Surface) {
	g.game.Draw(surface)
	if g.game.Finished() {
		cfg := g.session.Config
		surface.Text("Press Enter to play again", cfg.Derived.Width/2, cfg.Derived.Height/2+60,
			config.ControlsFontSize, render.AlignCenter, config.TextDarkColor)
	}
}

func (g *GameState) Exit() {}

// Restart начинает новый матч со следующим сидом.
func (g *GameState) Restart() {
	g.sm.SetState(NewGameState(g.sm, g.session))
}

// Game возвращает текущий матч.
func (g *GameState) Game() *app.Game {
	return g.game
}
