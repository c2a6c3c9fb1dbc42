// internal/entity/ecs.go
package entity

import (
	"go-lane-defense/internal/component"

	"github.com/mlange-42/ark/ecs"
)

// ECS владеет всеми сущностями одного матча. Каждый вид сущности живёт
// в своём архетипе; присутствие в мире и есть жизнь, флага "мёртв" нет.
type ECS struct {
	World   *ecs.World
	Match   *component.Match
	Pointer *component.Pointer

	defenders   *ecs.Map3[component.Body, component.Health, component.Defender]
	enemies     *ecs.Map3[component.Body, component.Health, component.Enemy]
	projectiles *ecs.Map2[component.Body, component.Projectile]
	resources   *ecs.Map2[component.Body, component.Resource]

	defenderFilter   *ecs.Filter3[component.Body, component.Health, component.Defender]
	enemyFilter      *ecs.Filter3[component.Body, component.Health, component.Enemy]
	projectileFilter *ecs.Filter2[component.Body, component.Projectile]
	resourceFilter   *ecs.Filter2[component.Body, component.Resource]
}

// DefenderRef — снимок защитника на время одной фазы тика.
// Указатели действительны до следующего добавления или удаления сущностей.
type DefenderRef struct {
	Entity   ecs.Entity
	Body     *component.Body
	Health   *component.Health
	Defender *component.Defender
}

type EnemyRef struct {
	Entity ecs.Entity
	Body   *component.Body
	Health *component.Health
	Enemy  *component.Enemy
}

type ProjectileRef struct {
	Entity     ecs.Entity
	Body       *component.Body
	Projectile *component.Projectile
}

type ResourceRef struct {
	Entity   ecs.Entity
	Body     *component.Body
	Resource *component.Resource
}

func NewECS(match component.Match) *ECS {
	world := ecs.NewWorld()
	return &ECS{
		World:   world,
		Match:   &match,
		Pointer: &component.Pointer{},

		defenders:   ecs.NewMap3[component.Body, component.Health, component.Defender](world),
		enemies:     ecs.NewMap3[component.Body, component.Health, component.Enemy](world),
		projectiles: ecs.NewMap2[component.Body, component.Projectile](world),
		resources:   ecs.NewMap2[component.Body, component.Resource](world),

		defenderFilter:   ecs.NewFilter3[component.Body, component.Health, component.Defender](world),
		enemyFilter:      ecs.NewFilter3[component.Body, component.Health, component.Enemy](world),
		projectileFilter: ecs.NewFilter2[component.Body, component.Projectile](world),
		resourceFilter:   ecs.NewFilter2[component.Body, component.Resource](world),
	}
}

func (e *ECS) NewDefender(body component.Body, health component.Health, def component.Defender) ecs.Entity {
	return e.defenders.NewEntity(&body, &health, &def)
}

func (e *ECS) NewEnemy(body component.Body, health component.Health, enemy component.Enemy) ecs.Entity {
	return e.enemies.NewEntity(&body, &health, &enemy)
}

func (e *ECS) NewProjectile(body component.Body, p component.Projectile) ecs.Entity {
	return e.projectiles.NewEntity(&body, &p)
}

func (e *ECS) NewResource(body component.Body, r component.Resource) ecs.Entity {
	return e.resources.NewEntity(&body, &r)
}

// Remove уничтожает сущность. Повторное удаление безопасно.
// Нельзя вызывать, пока открыт запрос.
func (e *ECS) Remove(entity ecs.Entity) {
	if e.World.Alive(entity) {
		e.World.RemoveEntity(entity)
	}
}

// Alive сообщает, существует ли ещё сущность.
func (e *ECS) Alive(entity ecs.Entity) bool {
	return e.World.Alive(entity)
}

// Defenders возвращает снимок всех защитников.
func (e *ECS) Defenders() []DefenderRef {
	var out []DefenderRef
	query := e.defenderFilter.Query()
	for query.Next() {
		body, health, def := query.Get()
		out = append(out, DefenderRef{Entity: query.Entity(), Body: body, Health: health, Defender: def})
	}
	return out
}

func (e *ECS) Enemies() []EnemyRef {
	var out []EnemyRef
	query := e.enemyFilter.Query()
	for query.Next() {
		body, health, enemy := query.Get()
		out = append(out, EnemyRef{Entity: query.Entity(), Body: body, Health: health, Enemy: enemy})
	}
	return out
}

func (e *ECS) Projectiles() []ProjectileRef {
	var out []ProjectileRef
	query := e.projectileFilter.Query()
	for query.Next() {
		body, p := query.Get()
		out = append(out, ProjectileRef{Entity: query.Entity(), Body: body, Projectile: p})
	}
	return out
}

func (e *ECS) Resources() []ResourceRef {
	var out []ResourceRef
	query := e.resourceFilter.Query()
	for query.Next() {
		body, r := query.Get()
		out = append(out, ResourceRef{Entity: query.Entity(), Body: body, Resource: r})
	}
	return out
}

func (e *ECS) EnemyCount() int {
	query := e.enemyFilter.Query()
	n := query.Count()
	query.Close()
	return n
}

func (e *ECS) DefenderCount() int {
	query := e.defenderFilter.Query()
	n := query.Count()
	query.Close()
	return n
}

func (e *ECS) ProjectileCount() int {
	query := e.projectileFilter.Query()
	n := query.Count()
	query.Close()
	return n
}

func (e *ECS) ResourceCount() int {
	query := e.resourceFilter.Query()
	n := query.Count()
	query.Close()
	return n
}

// DefenderAt сообщает, стоит ли защитник ровно в точке (x, y).
func (e *ECS) DefenderAt(x, y float64) bool {
	query := e.defenderFilter.Query()
	for query.Next() {
		body, _, _ := query.Get()
		if body.X == x && body.Y == y {
			query.Close()
			return true
		}
	}
	return false
}
