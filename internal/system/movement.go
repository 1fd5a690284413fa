// internal/system/movement.go
package system

import (
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/types"
)

// MovementSystem advances every entity with a velocity along its straight
// line. Enemies that walk off the right edge of the lane are leaked.
type MovementSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewMovementSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *MovementSystem) Update(deltaTime float64) {
	var leaked []types.EntityID
	for id, pos := range s.ecs.Positions {
		vel, hasVel := s.ecs.Velocities[id]
		if !hasVel {
			continue
		}
		pos.X += vel.VX * deltaTime
		pos.Y += vel.VY * deltaTime

		if _, isEnemy := s.ecs.Enemies[id]; isEnemy && pos.X >= config.LaneExitX {
			leaked = append(leaked, id)
		}
	}

	for _, id := range leaked {
		s.ecs.RemoveEntity(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: id})
	}
}
