// internal/component/enemy.go
package component

// Enemy marches left to right along the fixed lane.
type Enemy struct {
	DefID      string
	KillReward int // coins at the moment of death, pre-multiplier
}

// Health tracks remaining and maximum hit points.
type Health struct {
	Value int
	Max   int
}
