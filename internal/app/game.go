// internal/app/game.go
package app

import (
	"log/slog"
	"math"

	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/entity"
	"castle-defense/internal/event"
	"castle-defense/internal/system"
	"castle-defense/internal/utils"
	"castle-defense/pkg/waypath"
)

// Game holds the state and systems of one run. It is driven by a single
// goroutine: the host calls Update once per frame and PlaceTower on clicks.
type Game struct {
	Config          config.Config
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	SpawnSystem      *system.SpawnSystem
	MovementSystem   *system.MovementSystem
	ProjectileSystem *system.ProjectileSystem
	CombatSystem     *system.CombatSystem
	StateSystem      *system.StateSystem
	StatsSystem      *system.StatsSystem
}

// NewGame builds a run from cfg. cfg is expected to have passed Validate.
func NewGame(cfg config.Config, log *slog.Logger) *Game {
	rng := utils.NewPRNGService(cfg.Seed)
	path := waypath.Generate(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Path.Segments, cfg.Path.Jitter, rng)
	state := component.NewGameState(cfg.Economy.CastleHealth, cfg.Economy.StartGold)

	ecs := entity.NewECS(path, state)
	eventDispatcher := event.NewDispatcher()

	g := &Game{
		Config:          cfg,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
	}
	g.SpawnSystem = system.NewSpawnSystem(ecs, eventDispatcher, cfg.Enemy, cfg.Spawn)
	g.MovementSystem = system.NewMovementSystem(ecs, eventDispatcher, cfg.Enemy.SnapDistance)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, eventDispatcher, cfg.Enemy, cfg.Projectile, rng)
	g.CombatSystem = system.NewCombatSystem(ecs, eventDispatcher, g.ProjectileSystem, cfg.Projectile.Speed)
	g.StateSystem = system.NewStateSystem(ecs, eventDispatcher)
	g.StatsSystem = system.NewStatsSystem(eventDispatcher)
	if log != nil {
		system.NewEventLogger(log, eventDispatcher)
		log.Info("game created", "seed", rng.Seed(), "waypoints", path.Len(), "path_length", path.Length())
	}
	return g
}

// Update advances the simulation by deltaTime seconds. Nothing happens once
// the game is over.
func (g *Game) Update(deltaTime float64) {
	if g.IsGameOver() || !(deltaTime > 0) || math.IsInf(deltaTime, 1) {
		return
	}
	g.ECS.GameTime += deltaTime

	g.SpawnSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ECS.ReapEnemies()
	g.StateSystem.Update()
}

func (g *Game) IsGameOver() bool {
	return g.ECS.GameState.IsOver()
}

func (g *Game) Phase() component.Phase {
	return g.ECS.GameState.Phase
}

func (g *Game) Gold() int {
	return g.ECS.GameState.Gold
}

func (g *Game) CastleHealth() int {
	return g.ECS.GameState.CastleHealth
}

func (g *Game) GameTime() float64 {
	return g.ECS.GameTime
}

func (g *Game) Stats() system.Stats {
	return g.StatsSystem.Stats()
}
