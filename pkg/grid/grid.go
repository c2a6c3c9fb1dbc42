// pkg/grid/grid.go
package grid

import (
	"math"

	"go-lane-defense/pkg/geom"
)

// Cell — одна клетка игрового поля. Only a highlight target; it does not own
// whatever stands on it.
type Cell struct {
	geom.Rect
	Col, Row int
}

// Grid tiles the playable area below the controls bar with square cells.
type Grid struct {
	CellSize float64
	Gap      float64
	Width    float64
	Height   float64
	Top      float64 // y where the playable area starts
	Cells    []Cell
}

// New precomputes the cells covering [0,width) × [top,height).
func New(width, height, top, cellSize, gap float64) *Grid {
	g := &Grid{
		CellSize: cellSize,
		Gap:      gap,
		Width:    width,
		Height:   height,
		Top:      top,
	}
	col := 0
	for x := 0.0; x < width; x += cellSize {
		row := int(top / cellSize)
		for y := top; y < height; y += cellSize {
			g.Cells = append(g.Cells, Cell{
				Rect: geom.Rect{X: x, Y: y, W: cellSize, H: cellSize},
				Col:  col,
				Row:  row,
			})
			row++
		}
		col++
	}
	return g
}

// Snap returns the top-left of the cell containing (x, y), pushed inward by the gap.
func (g *Grid) Snap(x, y float64) (float64, float64) {
	return x - math.Mod(x, g.CellSize) + g.Gap, y - math.Mod(y, g.CellSize) + g.Gap
}

// Contains reports whether (x, y) lies inside the playable area.
func (g *Grid) Contains(x, y float64) bool {
	return x >= 0 && x < g.Width && y >= g.Top && y < g.Height
}

// CellAt returns the cell containing (x, y).
func (g *Grid) CellAt(x, y float64) (Cell, bool) {
	if !g.Contains(x, y) {
		return Cell{}, false
	}
	col := int(x / g.CellSize)
	row := int(y / g.CellSize)
	for _, c := range g.Cells {
		if c.Col == col && c.Row == row {
			return c, true
		}
	}
	return Cell{}, false
}

// Hovered returns every cell the pointer box overlaps. A pointer sitting
// exactly on a shared edge lights up both neighbours.
func (g *Grid) Hovered(pointer geom.Rect) []Cell {
	var out []Cell
	for _, c := range g.Cells {
		if c.Overlaps(pointer) {
			out = append(out, c)
		}
	}
	return out
}

// LaneY returns the top of lane row (1-based rows below the controls bar).
func (g *Grid) LaneY(row int) float64 {
	return float64(row) * g.CellSize
}
