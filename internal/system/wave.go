// internal/system/wave.go
package system

import (
	"log"

	"go-merge-defense/internal/component"
	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"
	"go-merge-defense/internal/entity"
	"go-merge-defense/internal/event"
	"go-merge-defense/internal/utils"
)

// WaveSystem spawns enemies on the lane for the whole run. The spawn
// interval shrinks and enemy health grows as the run progresses; every
// WaveLength seconds counts as one difficulty step.
type WaveSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	rng             *utils.PRNGService

	elapsed    float64
	spawnTimer float64
	wave       int
}

func NewWaveSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, rng *utils.PRNGService) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		rng:             rng,
		wave:            1,
	}
}

func (s *WaveSystem) Wave() int { return s.wave }

func (s *WaveSystem) Update(deltaTime float64) {
	s.elapsed += deltaTime

	wave := 1 + int(s.elapsed/config.WaveLength)
	if wave != s.wave {
		s.wave = wave
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: wave})
	}

	s.spawnTimer += deltaTime
	if s.spawnTimer >= s.spawnInterval() {
		s.spawnTimer = 0
		s.spawnEnemy()
	}
}

func (s *WaveSystem) spawnInterval() float64 {
	interval := config.InitialSpawnInterval - config.SpawnIntervalDecay*s.elapsed
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}
	return interval
}

func (s *WaveSystem) spawnEnemy() {
	id := s.pickArchetype()
	def, ok := defs.EnemyLibrary[id]
	if !ok {
		log.Printf("wave: no enemy definition for %q", id)
		return
	}

	// Health scales 20% per difficulty step past the first.
	health := def.Health + def.Health*(s.wave-1)/5

	eid := s.ecs.NewEntity()
	s.ecs.Positions[eid] = &component.Position{X: config.LaneSpawnX, Y: config.LaneY}
	s.ecs.Velocities[eid] = &component.Velocity{VX: def.Speed, VY: 0}
	s.ecs.Healths[eid] = &component.Health{Value: health, Max: health}
	s.ecs.Renderables[eid] = &component.Renderable{
		Color:     config.EnemyColor,
		Radius:    config.EnemyRadius,
		HasStroke: true,
	}
	s.ecs.Enemies[eid] = &component.Enemy{
		DefID:      def.ID,
		KillReward: def.KillReward,
	}
}

func (s *WaveSystem) pickArchetype() string {
	// Brutes join the mix from the third difficulty step.
	if s.wave < 3 {
		return defs.DefaultEnemyID
	}
	return s.rng.ChooseWeighted([]utils.WeightedEntry{
		{ID: defs.DefaultEnemyID, Weight: 7},
		{ID: "BRUTE", Weight: 3},
	})
}
