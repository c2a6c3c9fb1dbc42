// internal/system/movement.go
package system

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/pkg/render"
)

// MovementSystem двигает врагов влево и фиксирует прорыв к левому краю.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update() {
	for _, en := range s.ecs.Enemies() {
		en.Body.X -= en.Enemy.Movement
		// враг не удаляется, матч просто заканчивается
		if en.Body.X <= 0 {
			s.ecs.Match.Breached = true
		}
	}
}

func (s *MovementSystem) Draw(surface render.Surface) {
	for _, en := range s.ecs.Enemies() {
		surface.FillRect(en.Body.Rect, config.EnemyColor)
		drawHealthLabel(surface, en.Body, en.Health)
	}
}
