// internal/system/resource.go
package system

import (
	"fmt"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/render"

	"github.com/mlange-42/ark/ecs"
)

// ResourceSystem подбирает ресурсы, над которыми находится указатель.
type ResourceSystem struct {
	ecs             *entity.ECS
	cfg             *config.Config
	eventDispatcher *event.Dispatcher
}

func NewResourceSystem(ecs *entity.ECS, cfg *config.Config, eventDispatcher *event.Dispatcher) *ResourceSystem {
	return &ResourceSystem{ecs: ecs, cfg: cfg, eventDispatcher: eventDispatcher}
}

func (s *ResourceSystem) Update() {
	ptr := s.ecs.Pointer
	if !ptr.Present {
		return
	}
	cursor := geom.PointRect(ptr.X, ptr.Y, s.cfg.Pointer.Size)

	var picked []ecs.Entity
	var amounts []int
	for _, r := range s.ecs.Resources() {
		if r.Body.Overlaps(cursor) {
			picked = append(picked, r.Entity)
			amounts = append(amounts, r.Resource.Amount)
		}
	}

	m := s.ecs.Match
	for i, e := range picked {
		m.Resources += amounts[i]
		s.ecs.Remove(e)
		dispatch(s.eventDispatcher, s.ecs, event.ResourceCollected, event.Collected{Amount: amounts[i], Resources: m.Resources})
	}
}

func (s *ResourceSystem) Draw(surface render.Surface) {
	for _, r := range s.ecs.Resources() {
		surface.FillRect(r.Body.Rect, config.ResourceColor)
		surface.Text(
			fmt.Sprintf("%d", r.Resource.Amount),
			r.Body.X+config.LabelOffset, r.Body.Y+config.LabelOffset,
			config.ResourceFontSize, render.AlignLeft, config.TextDarkColor,
		)
	}
}
