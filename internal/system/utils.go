// internal/system/utils.go
package system

import (
	"fmt"
	"math"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/render"
)

// ApplyDamage уменьшает здоровье и сообщает, погибла ли сущность.
// Отрицательный урон игнорируется: здоровье только убывает.
func ApplyDamage(health *component.Health, damage float64) bool {
	if damage > 0 {
		health.Value -= damage
	}
	return !health.Alive()
}

// dispatch отправляет событие с номером текущего кадра.
func dispatch(d *event.Dispatcher, ecs *entity.ECS, t event.EventType, data interface{}) {
	if d == nil {
		return
	}
	d.Dispatch(event.Event{Type: t, Frame: ecs.Match.Frame, Data: data})
}

// drawHealthLabel выводит целую часть здоровья поверх сущности.
func drawHealthLabel(surface render.Surface, body *component.Body, health *component.Health) {
	surface.Text(
		fmt.Sprintf("%d", int(math.Floor(health.Value))),
		body.X+config.LabelOffset, body.Y+config.LabelOffset,
		config.LabelFontSize, render.AlignLeft, config.HealthTextColor,
	)
}
