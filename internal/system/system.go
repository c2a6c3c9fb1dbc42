// internal/system/system.go
package system

import "go-lane-defense/pkg/render"

// System — одна фаза тика для одного вида сущностей.
// Update продвигает симуляцию на один тик, Draw рисует текущее состояние.
type System interface {
	Update()
	Draw(surface render.Surface)
}
