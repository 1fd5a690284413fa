// internal/system/combat.go
package system

import (
	"math"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/core"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/types"
)

// CombatSystem lets placed towers acquire targets and fire projectiles.
// Cooldowns are tracked per tower instance; entries for towers that were
// merged away or removed are pruned each update.
type CombatSystem struct {
	ecs       *entity.ECS
	grid      *core.Grid
	cooldowns map[*core.Tower]float64
}

func NewCombatSystem(ecs *entity.ECS, grid *core.Grid) *CombatSystem {
	return &CombatSystem{
		ecs:       ecs,
		grid:      grid,
		cooldowns: make(map[*core.Tower]float64),
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	placed := s.grid.AllTowers()

	alive := make(map[*core.Tower]bool, len(placed))
	for _, pt := range placed {
		alive[pt.Tower] = true
	}
	for tower := range s.cooldowns {
		if !alive[tower] {
			delete(s.cooldowns, tower)
		}
	}

	for _, pt := range placed {
		tower := pt.Tower
		if cd := s.cooldowns[tower]; cd > 0 {
			s.cooldowns[tower] = cd - deltaTime
			continue
		}

		targetID, found := s.findNearestEnemyInRange(tower)
		if !found {
			continue
		}

		s.fireAt(tower, targetID)
		s.cooldowns[tower] = 1.0 / tower.FireRate
	}
}

func (s *CombatSystem) findNearestEnemyInRange(tower *core.Tower) (types.EntityID, bool) {
	var bestID types.EntityID
	bestDist := math.MaxFloat64
	rangeSq := float64(tower.Range) * float64(tower.Range)

	for id := range s.ecs.Enemies {
		pos, ok := s.ecs.Positions[id]
		if !ok {
			continue
		}
		dx := pos.X - tower.X
		dy := pos.Y - tower.Y
		distSq := dx*dx + dy*dy
		if distSq <= rangeSq && distSq < bestDist {
			bestDist = distSq
			bestID = id
		}
	}
	return bestID, bestDist != math.MaxFloat64
}

func (s *CombatSystem) fireAt(tower *core.Tower, targetID types.EntityID) {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: tower.X, Y: tower.Y}
	s.ecs.Projectiles[id] = &component.Projectile{
		TargetID: targetID,
		Speed:    config.ProjectileSpeed,
		Damage:   tower.Damage,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  config.ProjectileColor,
		Radius: config.ProjectileRadius,
	}
}
