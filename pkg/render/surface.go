// Package render defines the draw surface the simulation paints on.
// Host backends (ebiten, raylib, terminal) live in subpackages.
package render

import (
	"image/color"

	"go-lane-defense/pkg/geom"
)

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is everything the simulation needs from a host to draw a frame.
// Coordinates are surface pixels; text y is the baseline.
type Surface interface {
	Clear(r geom.Rect)
	FillRect(r geom.Rect, c color.Color)
	StrokeRect(r geom.Rect, c color.Color)
	FillCircle(cx, cy, radius float64, c color.Color)
	Text(s string, x, y float64, size int, align Align, c color.Color)
}

// AnchorX returns the left x of a text run of the given width.
func AnchorX(x, width float64, align Align) float64 {
	switch align {
	case AlignCenter:
		return x - width/2
	case AlignRight:
		return x - width
	}
	return x
}
