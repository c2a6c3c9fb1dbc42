// internal/ui/controls.go
package ui

import (
	"fmt"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"
)

// ControlsBar — синяя панель над полем со счётчиками ресурсов и очков.
type ControlsBar struct {
	Rect      geom.Rect
	Indicator *StateIndicator
}

func NewControlsBar(cfg *config.Config) *ControlsBar {
	height := cfg.Derived.PlayTop
	return &ControlsBar{
		Rect: geom.Rect{W: cfg.Derived.Width, H: height},
		Indicator: NewStateIndicator(
			cfg.Derived.Width-config.IndicatorOffsetX, height/2, config.IndicatorRadius,
		),
	}
}

func (c *ControlsBar) Draw(surface render.Surface, m component.Match) {
	surface.FillRect(c.Rect, config.ControlsBarColor)
	surface.Text(fmt.Sprintf("Resources: %d", m.Resources),
		config.ControlsTextX, config.ResourcesTextY,
		config.ControlsFontSize, render.AlignLeft, config.TextLightColor)
	surface.Text(fmt.Sprintf("Score: %d", m.Score),
		config.ControlsTextX, config.ScoreTextY,
		config.ScoreFontSize, render.AlignLeft, config.TextLightColor)
	c.Indicator.Draw(surface, m)
}
