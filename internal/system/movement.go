// internal/system/movement.go
package system

import (
	"castle-defense/internal/component"
	"castle-defense/internal/entity"
	"castle-defense/internal/event"
	"castle-defense/internal/utils"
)

// MovementSystem walks enemies along the path and resolves breakthroughs.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	snapDistance    float64
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, snapDistance float64) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher, snapDistance: snapDistance}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, enemy := range s.ecs.Enemies {
		if enemy.Alive {
			s.advance(enemy, deltaTime)
		}
	}
}

func (s *MovementSystem) advance(enemy *component.Enemy, deltaTime float64) {
	path := s.ecs.Path
	last := path.LastIndex()
	if enemy.PathIndex >= last {
		s.breach(enemy)
		return
	}

	target := path.At(enemy.PathIndex + 1)
	x, y, arrived := utils.MoveToward(enemy.Position.X, enemy.Position.Y, target.X, target.Y, enemy.Speed*deltaTime)
	enemy.Position = component.Position{X: x, Y: y}

	// Подтягиваем к точке, если подошли достаточно близко
	if !arrived && enemy.Position.DistanceTo(component.Position{X: target.X, Y: target.Y}) < s.snapDistance {
		arrived = true
	}
	if !arrived {
		return
	}

	enemy.Position = component.Position{X: target.X, Y: target.Y}
	enemy.PathIndex++
	if enemy.PathIndex >= last {
		s.breach(enemy)
	}
}

func (s *MovementSystem) breach(enemy *component.Enemy) {
	enemy.Alive = false
	state := s.ecs.GameState
	state.Breach()
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyBreached,
		Data: event.EnemyData{
			EnemyID: enemy.ID,
			X:       enemy.Position.X,
			Y:       enemy.Position.Y,
			Castle:  state.CastleHealth,
		},
	})
}
