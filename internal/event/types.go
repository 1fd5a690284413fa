// internal/event/types.go
package event

const (
	TowerPlaced    EventType = "TowerPlaced"    // payload: core.Cell
	TowerRemoved   EventType = "TowerRemoved"   // payload: core.Cell
	TowersMerged   EventType = "TowersMerged"   // payload: MergeInfo
	CoinsEarned    EventType = "CoinsEarned"    // payload: int (post-multiplier)
	EnemyDestroyed EventType = "EnemyDestroyed" // payload: KillInfo
	EnemyLeaked    EventType = "EnemyLeaked"    // payload: types.EntityID
	WaveStarted    EventType = "WaveStarted"    // payload: int (wave number)
	RunEnded       EventType = "RunEnded"       // payload: int (coins earned)
)

// MergeInfo describes one completed merge step.
type MergeInfo struct {
	Col, Row int
	Tier     int // tier of the resulting tower
}

// KillInfo describes a destroyed enemy and its raw coin reward.
type KillInfo struct {
	X, Y   float64
	Reward int
}
