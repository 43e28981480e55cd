// internal/system/state.go
package system

import (
	"castle-defense/internal/entity"
	"castle-defense/internal/event"
)

// StateSystem watches the castle and ends the run when it falls.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *StateSystem) Update() {
	if s.ecs.GameState.CheckGameOver() {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.GameOver,
			Data: event.GameOverData{At: s.ecs.GameTime},
		})
	}
}
