// internal/state/menu_state.go
package state

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/ui"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"
)

// MenuState — стартовый экран с кнопкой Start.
type MenuState struct {
	sm      *StateMachine
	session *Session
	start   *ui.Button
	in      Input
}

func NewMenuState(sm *StateMachine, session *Session) *MenuState {
	w, h := session.Config.Derived.Width, session.Config.Derived.Height
	return &MenuState{
		sm:      sm,
		session: session,
		start:   ui.NewButton(geom.Rect{X: w/2 - 100, Y: h/2 - 30, W: 200, H: 60}, "Start"),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(in Input) {
	m.in = in
	if in.Confirm || (in.Clicked && m.start.Contains(in.ClickX, in.ClickY)) {
		m.sm.SetState(NewGameState(m.sm, m.session))
	}
}

func (m *MenuState) Draw(surface render.Surface) {
	cfg := m.session.Config
	surface.FillRect(geom.Rect{W: cfg.Derived.Width, H: cfg.Derived.Height}, config.ControlsBarColor)
	surface.Text(cfg.Screen.Title, cfg.Derived.Width/2, cfg.Derived.Height/3,
		config.BannerFontSize, render.AlignCenter, config.TextLightColor)
	m.start.Draw(surface, m.in.PointerX, m.in.PointerY, m.in.PointerPresent)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
