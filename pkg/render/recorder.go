// pkg/render/recorder.go
package render

import (
	"image/color"

	"go-lane-defense/pkg/geom"
)

// Op names a recorded draw call.
type Op string

const (
	OpClear      Op = "clear"
	OpFillRect   Op = "fill_rect"
	OpStrokeRect Op = "stroke_rect"
	OpFillCircle Op = "fill_circle"
	OpText       Op = "text"
)

// Call is one recorded draw call.
type Call struct {
	Op     Op
	Rect   geom.Rect
	Color  color.Color
	Text   string
	Size   int
	Align  Align
	Radius float64
}

// Recorder is a Surface that remembers what was drawn. Used by tests and
// by the headless runner, which has nothing to show.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Clear(rect geom.Rect) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Rect: rect})
}

func (r *Recorder) FillRect(rect geom.Rect, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, Rect: rect, Color: c})
}

func (r *Recorder) StrokeRect(rect geom.Rect, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokeRect, Rect: rect, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Calls = append(r.Calls, Call{
		Op:     OpFillCircle,
		Rect:   geom.Rect{X: cx, Y: cy},
		Color:  c,
		Radius: radius,
	})
}

func (r *Recorder) Text(s string, x, y float64, size int, align Align, c color.Color) {
	r.Calls = append(r.Calls, Call{
		Op:    OpText,
		Rect:  geom.Rect{X: x, Y: y},
		Color: c,
		Text:  s,
		Size:  size,
		Align: align,
	})
}

// Reset drops recorded calls, keeping capacity.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Texts returns the recorded text runs in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// HasText reports whether s was drawn.
func (r *Recorder) HasText(s string) bool {
	for _, c := range r.Calls {
		if c.Op == OpText && c.Text == s {
			return true
		}
	}
	return false
}
