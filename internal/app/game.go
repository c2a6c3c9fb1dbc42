// internal/app/game.go
package app

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/ui"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/geom"
	"go-lane-defense/pkg/grid"
	"go-lane-defense/pkg/logger"
	"go-lane-defense/pkg/render"

	"github.com/sirupsen/logrus"
)

// Game holds one match: its entities, systems and counters.
// All methods must be called from the host's loop goroutine.
type Game struct {
	Config          *config.Config
	Grid            *grid.Grid
	ECS             *entity.ECS
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher

	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	MovementSystem   *system.MovementSystem
	ResourceSystem   *system.ResourceSystem
	WaveSystem       *system.WaveSystem
	StateSystem      *system.StateSystem
	EffectSystem     *system.VisualEffectSystem
	RenderSystem     *system.RenderSystem

	ControlsBar *ui.ControlsBar
}

// NewGame initializes a new match. Seed 0 picks a time-based seed.
func NewGame(cfg *config.Config, seed int64) *Game {
	if cfg == nil {
		panic("config cannot be nil")
	}

	ecs := entity.NewECS(component.Match{
		Resources:     cfg.Economy.StartingResources,
		EnemyInterval: cfg.Spawner.InitialInterval,
	})
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)

	g := &Game{
		Config:          cfg,
		Grid:            grid.New(cfg.Derived.Width, cfg.Derived.Height, cfg.Derived.PlayTop, cfg.Grid.CellSize, cfg.Grid.CellGap),
		ECS:             ecs,
		Rng:             rng,
		EventDispatcher: eventDispatcher,
		ControlsBar:     ui.NewControlsBar(cfg),
	}
	g.CombatSystem = system.NewCombatSystem(ecs, cfg, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, cfg, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs)
	g.ResourceSystem = system.NewResourceSystem(ecs, cfg, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, cfg, rng, eventDispatcher)
	g.StateSystem = system.NewStateSystem(ecs, g, eventDispatcher)
	g.EffectSystem = system.NewVisualEffectSystem(cfg, eventDispatcher)
	g.RenderSystem = system.NewRenderSystem(ecs, cfg, g.Grid,
		g.CombatSystem, g.ResourceSystem, g.ProjectileSystem, g.MovementSystem, g.EffectSystem)

	eventDispatcher.SubscribeAll(&GameEventListener{game: g})

	logger.Log.WithFields(logrus.Fields{
		"seed":  rng.Seed(),
		"lanes": cfg.Derived.Lanes,
		"cols":  cfg.Derived.Cols,
	}).Info("Match started")

	return g
}

// Update advances the match by one tick. A finished match is frozen:
// nothing moves and the frame counter stops.
func (g *Game) Update() {
	if g.Finished() {
		return
	}

	g.CombatSystem.Update()
	g.WaveSystem.SpawnResources()
	g.ResourceSystem.Update()
	g.ProjectileSystem.Update()
	g.WaveSystem.SpawnEnemies()
	g.MovementSystem.Update()
	g.EffectSystem.Update()

	g.ECS.Match.Frame++
	g.StateSystem.Update()
}

// Draw renders the current frame, or the result banner once the match is over.
func (g *Game) Draw(surface render.Surface) {
	if ui.DrawBanner(surface, g.Config, g.StateSystem.Current()) {
		return
	}
	surface.Clear(geom.Rect{W: g.Config.Derived.Width, H: g.Config.Derived.Height})
	g.ControlsBar.Draw(surface, *g.ECS.Match)
	g.RenderSystem.Draw(surface)
}

// SetPointer records the pointer position in surface coordinates.
func (g *Game) SetPointer(x, y float64) {
	*g.ECS.Pointer = component.Pointer{X: x, Y: y, Present: true}
}

// ClearPointer marks the pointer as having left the surface.
func (g *Game) ClearPointer() {
	*g.ECS.Pointer = component.Pointer{}
}

// EnemyCount implements interfaces.GameContext.
func (g *Game) EnemyCount() int {
	return g.ECS.EnemyCount()
}

// StopFiring implements interfaces.GameContext.
func (g *Game) StopFiring() {
	g.CombatSystem.StopFiring()
}

// Match returns a copy of the match counters.
func (g *Game) Match() component.Match {
	return *g.ECS.Match
}

func (g *Game) Phase() component.Phase {
	return g.StateSystem.Current()
}

// Finished reports whether the match reached a terminal phase.
func (g *Game) Finished() bool {
	return g.StateSystem.Current().Terminal()
}

func (g *Game) Seed() int64 {
	return g.Rng.Seed()
}

// GameEventListener пишет события матча в лог.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	entry := logger.Log.WithFields(logrus.Fields{
		"event": e.Type,
		"frame": e.Frame,
	})

	switch data := e.Data.(type) {
	case event.Placement:
		entry = entry.WithFields(logrus.Fields{"x": data.X, "y": data.Y, "resources": data.Resources})
		if e.Type == event.PlacementRejected {
			entry.WithField("reason", data.Reason).Debug("Placement rejected")
			return
		}
		entry.Info("Defender placed")
	case event.Kill:
		entry.WithFields(logrus.Fields{"reward": data.Reward, "score": data.Score}).Info("Enemy killed")
	case event.Outcome:
		entry = entry.WithFields(logrus.Fields{"score": data.Score, "resources": data.Resources, "seed": l.game.Seed()})
		switch e.Type {
		case event.GameOver:
			entry.Warn("Enemy reached the edge, game over")
		case event.LevelCompleted:
			entry.Info("Level completed")
		default:
			entry.Info("Win score reached, clearing remaining enemies")
		}
	case event.Collected:
		entry.WithFields(logrus.Fields{"amount": data.Amount, "resources": data.Resources}).Debug("Resource collected")
	default:
		entry.Debug("Match event")
	}
}
