// Package tcellrender draws the simulation into a terminal.
// Surface pixels are scaled onto the cell grid of the screen.
package tcellrender

import (
	"image/color"
	"math"

	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"

	"github.com/gdamore/tcell/v2"
)

// Surface maps a Width x Height pixel space onto a tcell.Screen.
type Surface struct {
	Screen     tcell.Screen
	Width      float64
	Height     float64
	Background color.Color

	cols, rows int
	// фон каждой ячейки, чтобы текст не затирал заливку под собой
	bg []tcell.Color
}

var _ render.Surface = (*Surface)(nil)

func NewSurface(screen tcell.Screen, width, height float64, background color.Color) *Surface {
	s := &Surface{Screen: screen, Width: width, Height: height, Background: background}
	s.Resize()
	return s
}

// Resize picks up the current screen size. Call it after tcell.EventResize.
func (s *Surface) Resize() {
	s.cols, s.rows = s.Screen.Size()
	s.bg = make([]tcell.Color, s.cols*s.rows)
	for i := range s.bg {
		s.bg[i] = toTcell(s.background())
	}
}

// Cell converts a surface pixel to a screen cell.
func (s *Surface) Cell(x, y float64) (col, row int) {
	return s.col(x), s.row(y)
}

// Pixel converts a screen cell back to the pixel at its centre.
func (s *Surface) Pixel(col, row int) (x, y float64) {
	if s.cols == 0 || s.rows == 0 {
		return 0, 0
	}
	cw, ch := s.Width/float64(s.cols), s.Height/float64(s.rows)
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

func (s *Surface) col(x float64) int {
	if s.Width <= 0 {
		return 0
	}
	return clampInt(int(math.Floor(x*float64(s.cols)/s.Width)), 0, s.cols-1)
}

func (s *Surface) row(y float64) int {
	if s.Height <= 0 {
		return 0
	}
	return clampInt(int(math.Floor(y*float64(s.rows)/s.Height)), 0, s.rows-1)
}

// span returns the half-open cell range covered by [from, to).
// Non-empty extents always cover at least one cell.
func (s *Surface) span(from, to float64, cells int, extent float64) (int, int) {
	if extent <= 0 || cells == 0 {
		return 0, 0
	}
	lo := int(math.Floor(from * float64(cells) / extent))
	hi := int(math.Ceil(to * float64(cells) / extent))
	if hi <= lo {
		hi = lo + 1
	}
	return clampInt(lo, 0, cells), clampInt(hi, 0, cells)
}

func (s *Surface) background() color.Color {
	if s.Background == nil {
		return color.Black
	}
	return s.Background
}

func (s *Surface) set(col, row int, r rune, fg, bg tcell.Color) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	s.bg[row*s.cols+col] = bg
	s.Screen.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
}

func (s *Surface) bgAt(col, row int) tcell.Color {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return toTcell(s.background())
	}
	return s.bg[row*s.cols+col]
}

func (s *Surface) Clear(r geom.Rect) {
	s.FillRect(r, s.background())
}

func (s *Surface) FillRect(r geom.Rect, c color.Color) {
	c0, c1 := s.span(r.X, r.Right(), s.cols, s.Width)
	r0, r1 := s.span(r.Y, r.Y+r.H, s.rows, s.Height)
	tc := toTcell(c)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.set(col, row, ' ', tc, tc)
		}
	}
}

func (s *Surface) StrokeRect(r geom.Rect, c color.Color) {
	c0, c1 := s.span(r.X, r.Right(), s.cols, s.Width)
	r0, r1 := s.span(r.Y, r.Y+r.H, s.rows, s.Height)
	if c1 <= c0 || r1 <= r0 {
		return
	}
	fg := toTcell(c)
	last := func(hi int) int { return hi - 1 }
	for col := c0; col < c1; col++ {
		s.set(col, r0, tcell.RuneHLine, fg, s.bgAt(col, r0))
		s.set(col, last(r1), tcell.RuneHLine, fg, s.bgAt(col, last(r1)))
	}
	for row := r0; row < r1; row++ {
		s.set(c0, row, tcell.RuneVLine, fg, s.bgAt(c0, row))
		s.set(last(c1), row, tcell.RuneVLine, fg, s.bgAt(last(c1), row))
	}
	s.set(c0, r0, tcell.RuneULCorner, fg, s.bgAt(c0, r0))
	s.set(last(c1), r0, tcell.RuneURCorner, fg, s.bgAt(last(c1), r0))
	s.set(c0, last(r1), tcell.RuneLLCorner, fg, s.bgAt(c0, last(r1)))
	s.set(last(c1), last(r1), tcell.RuneLRCorner, fg, s.bgAt(last(c1), last(r1)))
}

// FillCircle marks the cell under the centre. Circles here are projectiles,
// which are smaller than a cell at any sane terminal size.
func (s *Surface) FillCircle(cx, cy, radius float64, c color.Color) {
	col, row := s.Cell(cx, cy)
	s.set(col, row, '●', toTcell(c), s.bgAt(col, row))
}

// Text writes one rune per cell. Font size is ignored beyond picking the row
// that contains the middle of the glyphs.
func (s *Surface) Text(str string, x, y float64, size int, align render.Align, c color.Color) {
	runes := []rune(str)
	if len(runes) == 0 || s.cols == 0 {
		return
	}
	col := s.col(x)
	switch align {
	case render.AlignCenter:
		col -= len(runes) / 2
	case render.AlignRight:
		col -= len(runes)
	}
	row := s.row(y - float64(size)/2)
	fg := toTcell(c)
	for i, r := range runes {
		s.set(col+i, row, r, fg, s.bgAt(col+i, row))
	}
}

func toTcell(c color.Color) tcell.Color {
	rgba := render.ToRGBA(c)
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
