// Package rlrender draws with raylib. Calls must run between
// rl.BeginDrawing and rl.EndDrawing on the window thread.
package rlrender

import (
	"image/color"

	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ascent is roughly where the default raylib font puts its baseline, as a
// share of the font size. raylib positions text by its top edge.
const ascent = 0.8

// Surface adapts the raylib immediate-mode API to render.Surface.
type Surface struct {
	Background color.Color
}

var _ render.Surface = (*Surface)(nil)

func NewSurface(background color.Color) *Surface {
	return &Surface{Background: background}
}

func colorToRL(c color.Color) rl.Color {
	rgba := render.ToRGBA(c)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}

func toRect(r geom.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.W), Height: float32(r.H)}
}

func (s *Surface) Clear(r geom.Rect) {
	bg := s.Background
	if bg == nil {
		bg = color.Black
	}
	rl.DrawRectangleRec(toRect(r), colorToRL(bg))
}

func (s *Surface) FillRect(r geom.Rect, c color.Color) {
	rl.DrawRectangleRec(toRect(r), colorToRL(c))
}

func (s *Surface) StrokeRect(r geom.Rect, c color.Color) {
	rl.DrawRectangleLinesEx(toRect(r), 1, colorToRL(c))
}

func (s *Surface) FillCircle(cx, cy, radius float64, c color.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(cx), float32(cy)), float32(radius), colorToRL(c))
}

func (s *Surface) Text(str string, x, y float64, size int, align render.Align, c color.Color) {
	width := float64(rl.MeasureText(str, int32(size)))
	left := render.AnchorX(x, width, align)
	top := y - float64(size)*ascent
	rl.DrawText(str, int32(left), int32(top), int32(size), colorToRL(c))
}
