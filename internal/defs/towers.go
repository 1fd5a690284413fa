// internal/defs/towers.go
package defs

import (
	"image/color"
)

// TowerType is the closed set of tower elements. Dispatch is always by
// variant tag, never by free-form strings.
type TowerType string

const (
	TowerFire  TowerType = "FIRE"
	TowerIce   TowerType = "ICE"
	TowerEarth TowerType = "EARTH"
)

// TowerDefinition holds all the static data for a specific type of tower.
// Base stats describe a tier-1 tower; higher tiers are derived from them.
type TowerDefinition struct {
	ID           TowerType `yaml:"id"`
	Name         string    `yaml:"name"`
	BaseDamage   int       `yaml:"base_damage"`
	BaseRange    int       `yaml:"base_range"`     // pixels
	BaseFireRate float64   `yaml:"base_fire_rate"` // shots per second
	Visuals      Visuals   `yaml:"visuals"`
}

// Visuals contains parameters for rendering a tower.
type Visuals struct {
	Color        color.RGBA `yaml:"color"`
	RadiusFactor float64    `yaml:"radius_factor"`
}

// TowerLibrary is the library of all tower definitions, keyed by type.
var TowerLibrary map[TowerType]TowerDefinition

// TowerOrder fixes the enumeration order used by the panel and tests.
var TowerOrder = []TowerType{TowerFire, TowerIce, TowerEarth}

func init() {
	UseDefaultTowerDefinitions()
}

// UseDefaultTowerDefinitions populates TowerLibrary with the compiled-in
// definitions. Called at init and as the fallback when no data file loads.
func UseDefaultTowerDefinitions() {
	TowerLibrary = make(map[TowerType]TowerDefinition, len(defaultTowerDefs))
	for _, def := range defaultTowerDefs {
		TowerLibrary[def.ID] = def
	}
}

// ValidTowerType reports whether t names a recognized tower type.
func ValidTowerType(t TowerType) bool {
	_, ok := TowerLibrary[t]
	return ok
}

var defaultTowerDefs = []TowerDefinition{
	{
		ID:           TowerFire,
		Name:         "Fire",
		BaseDamage:   12,
		BaseRange:    150,
		BaseFireRate: 1.2,
		Visuals: Visuals{
			Color:        color.RGBA{255, 90, 50, 255},
			RadiusFactor: 0.32,
		},
	},
	{
		ID:           TowerIce,
		Name:         "Ice",
		BaseDamage:   8,
		BaseRange:    180,
		BaseFireRate: 1.6,
		Visuals: Visuals{
			Color:        color.RGBA{80, 170, 255, 255},
			RadiusFactor: 0.30,
		},
	},
	{
		ID:           TowerEarth,
		Name:         "Earth",
		BaseDamage:   20,
		BaseRange:    120,
		BaseFireRate: 0.8,
		Visuals: Visuals{
			Color:        color.RGBA{160, 120, 60, 255},
			RadiusFactor: 0.34,
		},
	},
}
