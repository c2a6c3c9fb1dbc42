// internal/system/state.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/interfaces"
)

// StateSystem переводит матч в конечную фазу. Вызывается последним в тике.
type StateSystem struct {
	ecs             *entity.ECS
	gameContext     interfaces.GameContext // Используем интерфейс из interfaces
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Update() {
	m := s.ecs.Match
	if m.Phase.Terminal() {
		return
	}
	// прорыв важнее победы, даже если оба случились на одном тике
	if m.Breached {
		s.enter(component.GameOver, event.GameOver)
		return
	}
	if m.WinLatched && s.gameContext.EnemyCount() == 0 {
		s.enter(component.LevelCompleted, event.LevelCompleted)
	}
}

func (s *StateSystem) enter(phase component.Phase, t event.EventType) {
	m := s.ecs.Match
	m.Phase = phase
	s.gameContext.StopFiring()
	dispatch(s.eventDispatcher, s.ecs, t, event.Outcome{Score: m.Score, Resources: m.Resources})
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Match.Phase
}
