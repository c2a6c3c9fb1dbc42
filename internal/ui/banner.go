// internal/ui/banner.go
package ui

import (
	"image/color"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"
)

// DrawBanner закрывает всю поверхность итоговой надписью матча.
// Для незавершённого матча ничего не рисует и возвращает false.
func DrawBanner(surface render.Surface, cfg *config.Config, phase component.Phase) bool {
	var (
		text   string
		bg, fg color.RGBA
	)
	switch phase {
	case component.GameOver:
		text, bg, fg = "GAME OVER", config.GameOverColor, config.TextDarkColor
	case component.LevelCompleted:
		text, bg, fg = "LEVEL COMPLETED", config.LevelCompleteColor, config.TextLightColor
	default:
		return false
	}

	w, h := cfg.Derived.Width, cfg.Derived.Height
	surface.FillRect(geom.Rect{W: w, H: h}, bg)
	surface.Text(text, w/2, h/2, config.BannerFontSize, render.AlignCenter, fg)
	return true
}
