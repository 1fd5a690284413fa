package system

import (
	"testing"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/core"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/types"
)

type nopSinks struct{}

func (nopSinks) MergeBurst(col, row int) {}
func (nopSinks) CoinsEarned(amount int) {}

func addEnemy(ecs *entity.ECS, x, y float64, health int) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Healths[id] = &component.Health{Value: health, Max: health}
	ecs.Enemies[id] = &component.Enemy{DefID: defs.DefaultEnemyID, KillReward: 5}
	return id
}

func TestCombatTargetsNearestEnemyInRange(t *testing.T) {
	ecs := entity.NewECS()
	grid := core.NewGrid(6, 5, 72, 0, 0, nopSinks{}, nopSinks{}, nil)
	cs := NewCombatSystem(ecs, grid)

	tower, _ := core.NewTower(defs.TowerFire, 1) // range 150
	if !grid.PlaceTower(0, 0, tower) {
		t.Fatal("placement failed")
	}

	far := addEnemy(ecs, tower.X+140, tower.Y, 100)
	near := addEnemy(ecs, tower.X+60, tower.Y, 100)
	addEnemy(ecs, tower.X+500, tower.Y, 100) // out of range

	cs.Update(0.016)

	if len(ecs.Projectiles) != 1 {
		t.Fatalf("expected exactly one projectile, got %d", len(ecs.Projectiles))
	}
	for _, proj := range ecs.Projectiles {
		if proj.TargetID != near {
			t.Errorf("tower should target the nearest enemy %d, got %d (far=%d)", near, proj.TargetID, far)
		}
		if proj.Damage != tower.Damage {
			t.Errorf("projectile damage %d, want tower damage %d", proj.Damage, tower.Damage)
		}
	}
}

func TestCombatRespectsCooldown(t *testing.T) {
	ecs := entity.NewECS()
	grid := core.NewGrid(6, 5, 72, 0, 0, nopSinks{}, nopSinks{}, nil)
	cs := NewCombatSystem(ecs, grid)

	tower, _ := core.NewTower(defs.TowerEarth, 1) // 0.8 shots/s
	grid.PlaceTower(0, 0, tower)
	addEnemy(ecs, tower.X+50, tower.Y, 1000)

	cs.Update(0.016)
	cs.Update(0.016)

	if len(ecs.Projectiles) != 1 {
		t.Fatalf("second update inside the cooldown fired again: %d projectiles", len(ecs.Projectiles))
	}

	// Walk past the full cooldown; the tower must fire a second time.
	for i := 0; i < 100; i++ {
		cs.Update(0.016)
	}
	if len(ecs.Projectiles) < 2 {
		t.Errorf("tower never fired again after cooldown, %d projectiles", len(ecs.Projectiles))
	}
}

func TestCombatIdleWithoutEnemies(t *testing.T) {
	ecs := entity.NewECS()
	grid := core.NewGrid(6, 5, 72, 0, 0, nopSinks{}, nopSinks{}, nil)
	cs := NewCombatSystem(ecs, grid)

	tower, _ := core.NewTower(defs.TowerIce, 2)
	grid.PlaceTower(2, 2, tower)

	cs.Update(0.016)

	if len(ecs.Projectiles) != 0 {
		t.Errorf("no enemies, no projectiles; got %d", len(ecs.Projectiles))
	}
}
