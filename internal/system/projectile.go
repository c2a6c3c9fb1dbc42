// internal/system/projectile.go
package system

import (
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/render"

	"github.com/mlange-42/ark/ecs"
)

// ProjectileSystem двигает снаряды и разрешает попадания во врагов.
type ProjectileSystem struct {
	ecs             *entity.ECS
	cfg             *config.Config
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, cfg *config.Config, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, cfg: cfg, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update() {
	projectiles := s.ecs.Projectiles()
	enemies := s.ecs.Enemies()
	boundary := s.cfg.Derived.Width - s.cfg.Grid.CellSize

	var spent, killed []ecs.Entity
	var kills []event.Kill
	for _, p := range projectiles {
		p.Body.X += p.Projectile.Speed

		hit := false
		for _, en := range enemies {
			// уже убитый на этом тике враг снаряды не поглощает
			if !en.Health.Alive() || !p.Body.Overlaps(en.Body.Rect) {
				continue
			}
			hit = true
			if ApplyDamage(en.Health, p.Projectile.Power) {
				killed = append(killed, en.Entity)
				kills = append(kills, s.reward(en))
			}
			break
		}

		if hit || p.Body.X >= boundary {
			spent = append(spent, p.Entity)
		}
	}

	for _, e := range spent {
		s.ecs.Remove(e)
	}
	for i, e := range killed {
		s.ecs.Remove(e)
		dispatch(s.eventDispatcher, s.ecs, event.EnemyKilled, kills[i])
	}

	m := s.ecs.Match
	if !m.WinLatched && m.Score >= s.cfg.Economy.WinScore {
		m.WinLatched = true
		dispatch(s.eventDispatcher, s.ecs, event.WinLatched, event.Outcome{Score: m.Score, Resources: m.Resources})
	}
}

// reward начисляет награду за убийство.
func (s *ProjectileSystem) reward(en entity.EnemyRef) event.Kill {
	m := s.ecs.Match
	m.Resources += en.Enemy.Reward
	m.Score += s.cfg.Economy.ScoreReward
	return event.Kill{X: en.Body.X, Y: en.Body.Y, Reward: en.Enemy.Reward, Score: m.Score}
}

func (s *ProjectileSystem) Draw(surface render.Surface) {
	for _, p := range s.ecs.Projectiles() {
		surface.FillCircle(p.Body.X, p.Body.Y, p.Body.W, config.ProjectileColor)
	}
}
