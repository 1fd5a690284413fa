// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps Go's random generator so the whole game can run on a
// seeded, reproducible stream. Seed 0 means "seed from the clock".
type PRNGService struct {
	rng *rand.Rand
}

func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// WeightedEntry is one option of a weighted choice.
type WeightedEntry struct {
	ID     string
	Weight int
}

// ChooseWeighted picks an entry ID with probability proportional to its
// weight. Returns "" for an empty table.
func (s *PRNGService) ChooseWeighted(entries []WeightedEntry) string {
	if len(entries) == 0 {
		return ""
	}
	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].ID
	}
	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.ID
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].ID
}
