// internal/component/projectile.go
package component

import "go-merge-defense/internal/types"

// Projectile homes toward its target entity.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64
	Damage   int
}
