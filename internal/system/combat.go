// internal/system/combat.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/render"

	"github.com/mlange-42/ark/ecs"
)

// CombatSystem управляет защитниками: ближний бой с врагами,
// блокировка их движения и стрельба по линии.
type CombatSystem struct {
	ecs             *entity.ECS
	cfg             *config.Config
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, cfg *config.Config, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{ecs: ecs, cfg: cfg, eventDispatcher: eventDispatcher}
}

type shot struct {
	x, y float64
}

type fallen struct {
	entity ecs.Entity
	x, y   float64
}

func (s *CombatSystem) Update() {
	defenders := s.ecs.Defenders()
	enemies := s.ecs.Enemies()

	// Урон в ближнем бою: каждый касающийся враг отнимает MeleeDamage за тик.
	var dead []fallen
	alive := make([]entity.DefenderRef, 0, len(defenders))
	for _, d := range defenders {
		for _, en := range enemies {
			if d.Body.Overlaps(en.Body.Rect) {
				ApplyDamage(d.Health, s.cfg.Defender.MeleeDamage)
			}
		}
		if d.Health.Alive() {
			alive = append(alive, d)
		} else {
			dead = append(dead, fallen{entity: d.Entity, x: d.Body.X, y: d.Body.Y})
		}
	}

	// Движение пересчитывается каждый тик: враг стоит, пока касается
	// хотя бы одного выжившего защитника.
	for _, en := range enemies {
		en.Enemy.Movement = en.Enemy.Speed
		for _, d := range alive {
			if d.Body.Overlaps(en.Body.Rect) {
				en.Enemy.Movement = 0
				break
			}
		}
	}

	var shots []shot
	for _, d := range alive {
		if !s.laneOccupied(d, enemies) {
			d.Defender.Engaging = false
			d.Defender.Cooldown = 0
			continue
		}
		if !d.Defender.Engaging {
			d.Defender.Engaging = true
			d.Defender.Cooldown = s.cfg.Defender.FireInterval
			continue
		}
		d.Defender.Cooldown--
		if d.Defender.Cooldown <= 0 {
			cx, cy := d.Body.Center()
			shots = append(shots, shot{x: cx, y: cy})
			d.Defender.Cooldown = s.cfg.Defender.FireInterval
		}
	}

	// Удаление только после всех чтений: указатели из снимка после него недействительны.
	for _, d := range dead {
		s.ecs.Remove(d.entity)
		dispatch(s.eventDispatcher, s.ecs, event.DefenderDestroyed, event.Spawn{X: d.x, Y: d.y})
	}

	size := s.cfg.Projectile.Size
	for _, sh := range shots {
		s.ecs.NewProjectile(
			component.NewBody(sh.x, sh.y, size, size),
			component.Projectile{Power: s.cfg.Projectile.Power, Speed: s.cfg.Projectile.Speed},
		)
		dispatch(s.eventDispatcher, s.ecs, event.ProjectileFired, event.Spawn{X: sh.x, Y: sh.y})
	}
}

// laneOccupied — есть ли живой враг на той же линии (равный y).
func (s *CombatSystem) laneOccupied(d entity.DefenderRef, enemies []entity.EnemyRef) bool {
	for _, en := range enemies {
		if en.Body.Y == d.Body.Y {
			return true
		}
	}
	return false
}

// StopFiring снимает всех защитников с боевого режима.
func (s *CombatSystem) StopFiring() {
	for _, d := range s.ecs.Defenders() {
		d.Defender.Engaging = false
		d.Defender.Cooldown = 0
	}
}

func (s *CombatSystem) Draw(surface render.Surface) {
	for _, d := range s.ecs.Defenders() {
		surface.FillRect(d.Body.Rect, config.DefenderColor)
		drawHealthLabel(surface, d.Body, d.Health)
	}
}
