// internal/defs/loader.go
package defs

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadTowerDefinitions reads a YAML tower definition file and replaces the
// TowerLibrary. On any error the library keeps its previous contents.
func LoadTowerDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(data, &towerDefs); err != nil {
		return fmt.Errorf("failed to parse tower definitions YAML: %w", err)
	}
	if err := validateTowerDefs(towerDefs); err != nil {
		return fmt.Errorf("invalid tower definitions: %w", err)
	}

	lib := make(map[TowerType]TowerDefinition, len(towerDefs))
	for _, def := range towerDefs {
		lib[def.ID] = def
	}
	TowerLibrary = lib
	return nil
}

// LoadEnemyDefinitions reads a YAML enemy definition file and replaces the
// EnemyLibrary. On any error the library keeps its previous contents.
func LoadEnemyDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := yaml.Unmarshal(data, &enemyDefs); err != nil {
		return fmt.Errorf("failed to parse enemy definitions YAML: %w", err)
	}

	lib := make(map[string]EnemyDefinition, len(enemyDefs))
	for _, def := range enemyDefs {
		if def.ID == "" {
			return fmt.Errorf("invalid enemy definitions: empty id")
		}
		lib[def.ID] = def
	}
	if _, ok := lib[DefaultEnemyID]; !ok {
		return fmt.Errorf("invalid enemy definitions: missing %q", DefaultEnemyID)
	}
	EnemyLibrary = lib
	return nil
}

func validateTowerDefs(towerDefs []TowerDefinition) error {
	if len(towerDefs) == 0 {
		return fmt.Errorf("no definitions")
	}
	seen := make(map[TowerType]bool, len(towerDefs))
	for _, def := range towerDefs {
		if def.ID == "" {
			return fmt.Errorf("empty id")
		}
		if seen[def.ID] {
			return fmt.Errorf("duplicate id %q", def.ID)
		}
		seen[def.ID] = true
		if def.BaseDamage <= 0 || def.BaseRange <= 0 || def.BaseFireRate <= 0 {
			return fmt.Errorf("non-positive base stats for %q", def.ID)
		}
	}
	for _, t := range TowerOrder {
		if !seen[t] {
			return fmt.Errorf("missing definition for %q", t)
		}
	}
	return nil
}
