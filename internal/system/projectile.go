// internal/system/projectile.go
package system

import (
	"math"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/types"
)

// ProjectileSystem moves projectiles toward their targets and applies damage
// on impact. Kills dispatch EnemyDestroyed with the death position and raw
// reward; the game layer turns that into coins.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for id, proj := range s.ecs.Projectiles {
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveEntity(id)
			continue
		}

		targetPos, targetExists := s.ecs.Positions[proj.TargetID]
		if !targetExists {
			// Target died or leaked before impact.
			s.ecs.RemoveEntity(id)
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)

		step := proj.Speed * deltaTime
		if dist <= step || dist < config.HitRadius {
			s.hitTarget(id, proj)
			continue
		}
		pos.X += dx / dist * step
		pos.Y += dy / dist * step
	}
}

func (s *ProjectileSystem) hitTarget(projectileID types.EntityID, proj *component.Projectile) {
	targetID := proj.TargetID
	s.ecs.RemoveEntity(projectileID)

	health, ok := s.ecs.Healths[targetID]
	if !ok {
		return
	}
	health.Value -= proj.Damage
	if health.Value > 0 {
		return
	}

	enemy := s.ecs.Enemies[targetID]
	lastPos := s.ecs.Positions[targetID]
	s.ecs.RemoveEntity(targetID)

	kill := event.KillInfo{}
	if lastPos != nil {
		kill.X, kill.Y = lastPos.X, lastPos.Y
	}
	if enemy != nil {
		kill.Reward = enemy.KillReward
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: kill})
}
