package grid

import (
	"testing"

	"go-lane-defense/pkg/geom"
)

func newTestGrid() *Grid {
	return New(900, 600, 100, 100, 3)
}

func TestNewTilesPlayableArea(t *testing.T) {
	g := newTestGrid()
	if len(g.Cells) != 9*5 {
		t.Fatalf("len(Cells) = %d, want 45", len(g.Cells))
	}
	for _, c := range g.Cells {
		if c.Y < 100 {
			t.Errorf("cell %+v lies inside the controls bar", c)
		}
		if c.Row < 1 || c.Row > 5 {
			t.Errorf("cell row = %d, want 1..5", c.Row)
		}
	}
}

func TestSnap(t *testing.T) {
	g := newTestGrid()
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"cell origin", 100, 200, 103, 203},
		{"inside cell", 150, 250, 103, 203},
		{"last pixel", 199, 299, 103, 203},
		{"first column", 5, 120, 3, 103},
		{"bottom right", 899, 599, 803, 503},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := g.Snap(tt.x, tt.y)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Snap(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestCellAt(t *testing.T) {
	g := newTestGrid()
	c, ok := g.CellAt(250, 330)
	if !ok {
		t.Fatal("CellAt(250, 330) not found")
	}
	if c.Col != 2 || c.Row != 3 {
		t.Errorf("CellAt(250, 330) = col %d row %d, want col 2 row 3", c.Col, c.Row)
	}
	if _, ok := g.CellAt(250, 50); ok {
		t.Error("controls bar must not resolve to a cell")
	}
	if _, ok := g.CellAt(950, 300); ok {
		t.Error("point right of the surface must not resolve to a cell")
	}
}

func TestHovered(t *testing.T) {
	g := newTestGrid()
	if got := len(g.Hovered(geom.PointRect(150, 250, 0.1))); got != 1 {
		t.Errorf("pointer inside a cell hovers %d cells, want 1", got)
	}
	if got := len(g.Hovered(geom.PointRect(200, 250, 0.1))); got != 2 {
		t.Errorf("pointer on a vertical edge hovers %d cells, want 2", got)
	}
}
