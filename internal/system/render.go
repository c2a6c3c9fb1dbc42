// internal/system/render.go
package system

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/grid"
	"go-lane-defense/pkg/render"
)

// RenderSystem рисует игровое поле: подсветку клетки и слои сущностей.
type RenderSystem struct {
	ecs    *entity.ECS
	cfg    *config.Config
	grid   *grid.Grid
	layers []System
}

// NewRenderSystem принимает слои в порядке отрисовки.
func NewRenderSystem(ecs *entity.ECS, cfg *config.Config, g *grid.Grid, layers ...System) *RenderSystem {
	return &RenderSystem{ecs: ecs, cfg: cfg, grid: g, layers: layers}
}

func (s *RenderSystem) Draw(surface render.Surface) {
	if ptr := s.ecs.Pointer; ptr.Present {
		cursor := geom.PointRect(ptr.X, ptr.Y, s.cfg.Pointer.Size)
		for _, cell := range s.grid.Hovered(cursor) {
			surface.StrokeRect(cell.Rect, config.HighlightColor)
		}
	}
	for _, layer := range s.layers {
		layer.Draw(surface)
	}
}
