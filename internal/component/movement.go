// internal/component/movement.go
package component

// Position is the pixel position of an entity.
type Position struct {
	X, Y float64
}

// Velocity is a straight-line velocity in pixels per second.
type Velocity struct {
	VX, VY float64
}
