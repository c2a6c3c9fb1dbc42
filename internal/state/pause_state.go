// internal/state/pause_state.go
package state

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает матч: тики не идут, клики игнорируются.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(in Input) {
	if in.Pause {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(surface render.Surface) {
	s.previousState.Draw(surface)

	cfg := s.previousState.session.Config
	w, h := cfg.Derived.Width, cfg.Derived.Height
	surface.FillRect(geom.Rect{W: w, H: h}, config.PauseOverlayColor)
	surface.Text("PAUSED", w/2, h/2, config.BannerFontSize, render.AlignCenter, config.TextLightColor)
}

func (s *PauseState) Exit() {}

// Game возвращает приостановленный матч.
func (s *PauseState) Game() *GameState {
	return s.previousState
}
