// internal/core/tower.go
package core

import (
	"errors"
	"fmt"
	"math"

	"go-merge-defense/internal/config"
	"go-merge-defense/internal/defs"
	"go-merge-defense/pkg/utils"
)

// ErrInvalidTowerType rejects construction with an unrecognized type tag.
var ErrInvalidTowerType = errors.New("invalid tower type")

// Tower is a placed or draggable tower. Combat stats are derived from the
// type's base definition and the current tier; they are recomputed whenever
// the tier changes.
type Tower struct {
	Type defs.TowerType
	Tier int

	// Grid position; -1,-1 while the tower is unplaced (in the panel or
	// mid-drag). X, Y hold the pixel center of the occupied cell.
	Col, Row int
	X, Y     float64

	Damage   int
	Range    int     // pixels
	FireRate float64 // shots per second
}

// NewTower creates an unplaced tower. The tier is clamped silently to
// [1, MaxTier]; an unrecognized type is an error.
func NewTower(towerType defs.TowerType, tier int) (*Tower, error) {
	if !defs.ValidTowerType(towerType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTowerType, towerType)
	}
	t := &Tower{
		Type: towerType,
		Tier: utils.Clamp(tier, 1, config.MaxTier),
		Col:  -1,
		Row:  -1,
	}
	t.recomputeStats()
	return t, nil
}

// CanMergeWith reports whether t and other merge on contact: same type, same
// tier, and below the tier cap. MaxTier is terminal for merge purposes.
func (t *Tower) CanMergeWith(other *Tower) bool {
	if other == nil {
		return false
	}
	return t.Type == other.Type && t.Tier == other.Tier && t.Tier < config.MaxTier
}

// Upgrade raises the tier by one and recomputes stats. Returns false without
// mutation when already at MaxTier.
func (t *Tower) Upgrade() bool {
	if t.Tier >= config.MaxTier {
		return false
	}
	t.Tier++
	t.recomputeStats()
	return true
}

// Clone returns an independent unplaced tower of the same type and tier.
func (t *Tower) Clone() *Tower {
	c := *t
	c.Col, c.Row = -1, -1
	c.X, c.Y = 0, 0
	return &c
}

// Unplaced reports whether the tower currently occupies no grid cell.
func (t *Tower) Unplaced() bool {
	return t.Col < 0 || t.Row < 0
}

func (t *Tower) recomputeStats() {
	def := defs.TowerLibrary[t.Type]
	n := float64(t.Tier - 1)
	t.Damage = int(math.Floor(float64(def.BaseDamage) * math.Pow(config.TierDamageFactor, n)))
	t.Range = int(math.Floor(float64(def.BaseRange) * (1 + config.TierRangeFactor*n)))
	t.FireRate = def.BaseFireRate * (1 + config.TierFireRateFactor*n)
}

// SavedTower is the persisted form of a placed tower. It round-trips
// losslessly through LoadTower for every valid type and tier.
type SavedTower struct {
	Type string `json:"type"`
	Tier int    `json:"tier"`
	Col  int    `json:"col"`
	Row  int    `json:"row"`
}

// Save captures the tower's persistent state.
func (t *Tower) Save() SavedTower {
	return SavedTower{
		Type: string(t.Type),
		Tier: t.Tier,
		Col:  t.Col,
		Row:  t.Row,
	}
}

// LoadTower restores a tower from its persisted form: constructor plus
// position setter. The caller is responsible for re-inserting it into a grid.
func LoadTower(s SavedTower) (*Tower, error) {
	t, err := NewTower(defs.TowerType(s.Type), s.Tier)
	if err != nil {
		return nil, err
	}
	t.Col, t.Row = s.Col, s.Row
	return t, nil
}
