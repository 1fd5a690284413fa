// internal/system/effects.go
package system

import (
	"math"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/types"
	"go-merge-defense/internal/utils"
)

// VisualEffectSystem ages burst rings and floating labels and drives the
// screen shake triggered by merges. Purely cosmetic; nothing here touches
// game state.
type VisualEffectSystem struct {
	ecs *entity.ECS
	rng *utils.PRNGService

	shakeTimer float64
}

func NewVisualEffectSystem(ecs *entity.ECS, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, rng: rng}
}

func (s *VisualEffectSystem) Update(deltaTime float64) {
	if s.shakeTimer > 0 {
		s.shakeTimer -= deltaTime
	}

	var expired []types.EntityID
	for id, burst := range s.ecs.Bursts {
		burst.Timer += deltaTime
		if burst.Timer >= burst.Duration {
			expired = append(expired, id)
		}
	}
	for id, ft := range s.ecs.FloatTexts {
		ft.Timer += deltaTime
		if pos, ok := s.ecs.Positions[id]; ok {
			pos.Y -= 30 * deltaTime
		}
		if ft.Timer >= ft.Duration {
			expired = append(expired, id)
		}
	}
	for _, id := range expired {
		s.ecs.RemoveEntity(id)
	}
}

// SpawnBurst creates a particle ring at a pixel position.
func (s *VisualEffectSystem) SpawnBurst(x, y float64, c component.Burst) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	burst := c
	s.ecs.Bursts[id] = &burst
}

// SpawnFloatText creates a drifting label at a pixel position.
func (s *VisualEffectSystem) SpawnFloatText(x, y float64, c component.FloatText) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	ft := c
	s.ecs.FloatTexts[id] = &ft
}

// Shake restarts the screen shake timer.
func (s *VisualEffectSystem) Shake() {
	s.shakeTimer = config.ShakeDuration
}

// ShakeOffset returns the current screen displacement.
func (s *VisualEffectSystem) ShakeOffset() (float64, float64) {
	if s.shakeTimer <= 0 {
		return 0, 0
	}
	strength := config.ShakeMagnitude * s.shakeTimer / config.ShakeDuration
	angle := s.rng.Float64() * 2 * math.Pi
	return math.Cos(angle) * strength, math.Sin(angle) * strength
}
