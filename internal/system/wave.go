// internal/system/wave.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/utils"
)

// WaveSystem создаёт врагов и ресурсы по счётчику кадров.
type WaveSystem struct {
	ecs             *entity.ECS
	cfg             *config.Config
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, cfg *config.Config, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{ecs: ecs, cfg: cfg, rng: rng, eventDispatcher: eventDispatcher}
}

// lane возвращает случайную линию в [1, Lanes].
func (s *WaveSystem) lane() int {
	return s.rng.Intn(s.cfg.Derived.Lanes) + 1
}

// SpawnEnemies выпускает врага у правого края каждые EnemyInterval кадров
// и сокращает интервал. После взвода победы новых врагов нет.
func (s *WaveSystem) SpawnEnemies() {
	m := s.ecs.Match
	if m.WinLatched || m.Frame%m.EnemyInterval != 0 {
		return
	}

	lane := s.lane()
	x := s.cfg.Derived.Width
	y := float64(lane)*s.cfg.Grid.CellSize + s.cfg.Grid.CellGap
	size := s.cfg.Derived.EntitySize
	speed := s.rng.Float64()*s.cfg.Enemy.SpeedJitter + s.cfg.Enemy.MinSpeed

	s.ecs.NewEnemy(
		component.NewBody(x, y, size, size),
		component.Health{Value: s.cfg.Enemy.Health},
		component.Enemy{Speed: speed, Movement: speed, Reward: s.cfg.Enemy.Reward},
	)
	m.EnemyInterval = utils.StepDown(m.EnemyInterval, s.cfg.Spawner.Step, s.cfg.Spawner.MinInterval)
	dispatch(s.eventDispatcher, s.ecs, event.EnemySpawned, event.Spawn{X: x, Y: y, Lane: lane, Speed: speed})
}

// SpawnResources кладёт ресурс в случайную точку каждые Resource.Interval кадров.
func (s *WaveSystem) SpawnResources() {
	if s.ecs.Match.Frame%s.cfg.Resource.Interval != 0 {
		return
	}

	x := s.rng.Float64() * (s.cfg.Derived.Width - s.cfg.Grid.CellSize)
	lane := s.lane()
	y := float64(lane)*s.cfg.Grid.CellSize + s.cfg.Resource.LaneOffset
	size := s.cfg.Grid.CellSize * s.cfg.Resource.SizeFactor
	amount := s.rng.Choose(s.cfg.Resource.Amounts)

	s.ecs.NewResource(component.NewBody(x, y, size, size), component.Resource{Amount: amount})
	dispatch(s.eventDispatcher, s.ecs, event.ResourceSpawned, event.Spawn{X: x, Y: y, Lane: lane, Amount: amount})
}
