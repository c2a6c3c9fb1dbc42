// internal/state/session.go
package state

import (
	"go-lane-defense/internal/app"
	"go-lane-defense/internal/config"
)

// Session — то, что переживает перезапуск матча: конфигурация, сид
// следующего матча и подписки хоста.
type Session struct {
	Config *config.Config
	Seed   int64 // 0 — сид по времени для каждого матча

	// OnMatch вызывается для каждого нового матча, например чтобы
	// подписать звук или телеметрию на его события.
	OnMatch func(g *app.Game)
}

// NextGame создаёт новый матч и сдвигает сид.
func (s *Session) NextGame() *app.Game {
	g := app.NewGame(s.Config, s.Seed)
	if s.Seed != 0 {
		s.Seed++
	}
	if s.OnMatch != nil {
		s.OnMatch(g)
	}
	return g
}

// ActiveGame возвращает матч текущего состояния, nil в меню.
func ActiveGame(sm *StateMachine) *app.Game {
	switch st := sm.Current().(type) {
	case *GameState:
		return st.Game()
	case *PauseState:
		return st.Game().Game()
	}
	return nil
}
