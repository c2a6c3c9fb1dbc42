// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/render"
)

// StateIndicator — точка фазы матча в панели управления.
// При смене фазы коротко "вспыхивает".
type StateIndicator struct {
	X, Y        float64
	Radius      float64
	lastState   color.RGBA
	changeFrame int
}

func NewStateIndicator(x, y, radius float64) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius, changeFrame: -1}
}

// StateColor выбирает цвет по состоянию матча.
func StateColor(m component.Match) color.RGBA {
	switch {
	case m.Phase.Terminal():
		return config.TerminalStateColor
	case m.WinLatched:
		return config.WinLatchedColor
	}
	return config.RunningStateColor
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(surface render.Surface, m component.Match) {
	c := StateColor(m)
	if c != i.lastState {
		i.lastState = c
		i.changeFrame = m.Frame
	}

	elapsed := float64(m.Frame-i.changeFrame) / config.TPS
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)

	surface.FillCircle(i.X, i.Y, i.Radius*scale, c)
}
