// internal/core/reward.go
package core

import "go-merge-defense/internal/config"

// MergeReward maps a merge step's pre-merge tier to its coin reward. Pure;
// the grid emits the raw amount and the caller applies any meta multiplier.
func MergeReward(tier int) int {
	return tier * config.MergeRewardPerTier
}
