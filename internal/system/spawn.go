// internal/system/spawn.go
package system

import (
	"math"

	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/defs"
	"castle-defense/internal/entity"
	"castle-defense/internal/event"
)

// SpawnSystem releases enemies at the path entrance. The spawn interval
// halves every RampEvery seconds, down to MinInterval when one is set.
type SpawnSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	enemy           defs.EnemyDefinition
	cfg             config.SpawnConfig

	interval   float64
	spawnTimer float64
	rampTimer  float64
}

func NewSpawnSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, enemy defs.EnemyDefinition, cfg config.SpawnConfig) *SpawnSystem {
	return &SpawnSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		enemy:           enemy,
		cfg:             cfg,
		interval:        cfg.Interval,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	s.spawnTimer += deltaTime
	if s.spawnTimer > s.interval {
		s.spawnEnemy()
		s.spawnTimer = 0
	}

	s.rampTimer += deltaTime
	if s.rampTimer > s.cfg.RampEvery {
		s.interval = math.Max(s.interval/2, s.cfg.MinInterval)
		s.rampTimer = 0
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.SpawnRateIncreased,
			Data: event.SpawnRateData{Interval: s.interval},
		})
	}
}

// Interval is the current time between spawns.
func (s *SpawnSystem) Interval() float64 {
	return s.interval
}

func (s *SpawnSystem) spawnEnemy() {
	start := s.ecs.Path.First()
	enemy := &component.Enemy{
		ID:       s.ecs.NewEntity(),
		Position: component.Position{X: start.X, Y: start.Y},
		Speed:    s.enemy.Speed,
		Health:   s.enemy.Health,
		Alive:    true,
	}
	s.ecs.AddEnemy(enemy)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemySpawned,
		Data: event.EnemyData{EnemyID: enemy.ID, X: start.X, Y: start.Y},
	})
}
