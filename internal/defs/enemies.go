// internal/defs/enemies.go
package defs

// EnemyDefinition holds the static data for one enemy archetype. Health and
// reward scale with the difficulty step during a run.
type EnemyDefinition struct {
	ID         string  `yaml:"id"`
	Name       string  `yaml:"name"`
	Health     int     `yaml:"health"`
	Speed      float64 `yaml:"speed"` // pixels per second
	KillReward int     `yaml:"kill_reward"`
}

// EnemyLibrary holds all enemy definitions, keyed by ID.
var EnemyLibrary map[string]EnemyDefinition

// DefaultEnemyID is the archetype spawned by the lane wave system.
const DefaultEnemyID = "RUNNER"

func init() {
	UseDefaultEnemyDefinitions()
}

// UseDefaultEnemyDefinitions populates EnemyLibrary with the compiled-in set.
func UseDefaultEnemyDefinitions() {
	EnemyLibrary = map[string]EnemyDefinition{
		DefaultEnemyID: {
			ID:         DefaultEnemyID,
			Name:       "Runner",
			Health:     40,
			Speed:      70,
			KillReward: 5,
		},
		"BRUTE": {
			ID:         "BRUTE",
			Name:       "Brute",
			Health:     120,
			Speed:      45,
			KillReward: 12,
		},
	}
}
