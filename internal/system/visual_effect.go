// internal/system/visual_effect.go
package system

import (
	"image/color"

	"go-lane-defense/internal/config"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/render"
)

// flash — расходящийся круг на месте гибели сущности.
type flash struct {
	x, y   float64 // центр
	frames int     // сколько тиков осталось
	color  color.RGBA
}

// VisualEffectSystem управляет визуальными эффектами: вспышками гибели
// врагов и защитников. Состояние матча не меняет.
type VisualEffectSystem struct {
	cfg     *config.Config
	flashes []flash
}

// NewVisualEffectSystem создает систему и подписывает её на события гибели.
func NewVisualEffectSystem(cfg *config.Config, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	s := &VisualEffectSystem{cfg: cfg}
	if eventDispatcher != nil {
		eventDispatcher.Subscribe(event.EnemyKilled, s)
		eventDispatcher.Subscribe(event.DefenderDestroyed, s)
	}
	return s
}

// OnEvent реализует интерфейс event.Listener.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	half := s.cfg.Derived.EntitySize / 2
	switch data := e.Data.(type) {
	case event.Kill:
		s.flashes = append(s.flashes, flash{x: data.X + half, y: data.Y + half, frames: config.FlashFrames, color: config.KillFlashColor})
	case event.Spawn:
		if e.Type == event.DefenderDestroyed {
			s.flashes = append(s.flashes, flash{x: data.X + half, y: data.Y + half, frames: config.FlashFrames, color: config.LossFlashColor})
		}
	}
}

// Update обновляет таймеры вспышек и убирает догоревшие.
func (s *VisualEffectSystem) Update() {
	live := s.flashes[:0]
	for _, f := range s.flashes {
		f.frames--
		if f.frames > 0 {
			live = append(live, f)
		}
	}
	s.flashes = live
}

// Active возвращает число горящих вспышек.
func (s *VisualEffectSystem) Active() int {
	return len(s.flashes)
}

func (s *VisualEffectSystem) Draw(surface render.Surface) {
	for _, f := range s.flashes {
		progress := 1 - float64(f.frames)/float64(config.FlashFrames)
		radius := config.IndicatorRadius + progress*(config.FlashMaxRadius-config.IndicatorRadius)
		surface.FillCircle(f.x, f.y, radius, f.color)
	}
}
