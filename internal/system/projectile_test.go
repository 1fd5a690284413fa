package system

import (
	"testing"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/event"
)

type eventRecorder struct {
	events []event.Event
}

func (r *eventRecorder) OnEvent(e event.Event) {
	r.events = append(r.events, e)
}

func TestProjectileKillDispatchesEnemyDestroyed(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.EnemyDestroyed, recorder)
	ps := NewProjectileSystem(ecs, dispatcher)

	enemy := addEnemy(ecs, 100, 100, 10)

	pid := ecs.NewEntity()
	ecs.Positions[pid] = &component.Position{X: 95, Y: 100}
	ecs.Projectiles[pid] = &component.Projectile{TargetID: enemy, Speed: 300, Damage: 10}

	ps.Update(0.05)

	if _, alive := ecs.Enemies[enemy]; alive {
		t.Fatal("lethal hit should remove the enemy")
	}
	if len(recorder.events) != 1 {
		t.Fatalf("expected one EnemyDestroyed event, got %d", len(recorder.events))
	}
	kill, ok := recorder.events[0].Data.(event.KillInfo)
	if !ok || kill.Reward != 5 {
		t.Errorf("kill payload mismatch: %+v", recorder.events[0].Data)
	}
	if len(ecs.Projectiles) != 0 {
		t.Error("projectile should be consumed by the hit")
	}
}

func TestProjectileDamageWithoutKill(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.EnemyDestroyed, recorder)
	ps := NewProjectileSystem(ecs, dispatcher)

	enemy := addEnemy(ecs, 100, 100, 50)

	pid := ecs.NewEntity()
	ecs.Positions[pid] = &component.Position{X: 98, Y: 100}
	ecs.Projectiles[pid] = &component.Projectile{TargetID: enemy, Speed: 300, Damage: 10}

	ps.Update(0.05)

	health := ecs.Healths[enemy]
	if health == nil || health.Value != 40 {
		t.Fatalf("expected 40 health after hit, got %+v", health)
	}
	if len(recorder.events) != 0 {
		t.Error("non-lethal hit must not dispatch EnemyDestroyed")
	}
}

func TestProjectileExpiresWithTarget(t *testing.T) {
	ecs := entity.NewECS()
	ps := NewProjectileSystem(ecs, event.NewDispatcher())

	pid := ecs.NewEntity()
	ecs.Positions[pid] = &component.Position{X: 0, Y: 0}
	ecs.Projectiles[pid] = &component.Projectile{TargetID: 999, Speed: 300, Damage: 10}

	ps.Update(0.016)

	if len(ecs.Projectiles) != 0 {
		t.Error("projectile with a vanished target should be removed")
	}
}

func TestMovementLeaksEnemiesAtLaneExit(t *testing.T) {
	ecs := entity.NewECS()
	dispatcher := event.NewDispatcher()
	recorder := &eventRecorder{}
	dispatcher.Subscribe(event.EnemyLeaked, recorder)
	ms := NewMovementSystem(ecs, dispatcher)

	id := addEnemy(ecs, config.LaneExitX-1, config.LaneY, 10)
	ecs.Velocities[id] = &component.Velocity{VX: 100}

	ms.Update(0.05)

	if _, alive := ecs.Enemies[id]; alive {
		t.Fatal("enemy past the lane exit should be removed")
	}
	if len(recorder.events) != 1 {
		t.Errorf("expected one EnemyLeaked event, got %d", len(recorder.events))
	}
}
