// internal/ui/button.go
package ui

import (
	"image/color"

	"go-lane-defense/internal/config"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       geom.Rect
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	FontSize   int
}

// NewButton создает новую кнопку.
func NewButton(rect geom.Rect, text string) *Button {
	bg := color.RGBA{211, 211, 211, 255}
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextDarkColor,
		BgColor:    bg,
		HoverColor: render.DarkenColor(bg),
		FontSize:   config.ControlsFontSize,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.Rect.X && x <= b.Rect.Right() && y >= b.Rect.Y && y <= b.Rect.Y+b.Rect.H
}

// Draw отрисовывает кнопку; под указателем фон темнее.
func (b *Button) Draw(surface render.Surface, pointerX, pointerY float64, pointerPresent bool) {
	bg := b.BgColor
	if pointerPresent && b.Contains(pointerX, pointerY) {
		bg = b.HoverColor
	}
	surface.FillRect(b.Rect, bg)
	surface.StrokeRect(b.Rect, config.TextDarkColor)

	cx, cy := b.Rect.Center()
	surface.Text(b.Text, cx, cy+float64(b.FontSize)/3, b.FontSize, render.AlignCenter, b.TextColor)
}
