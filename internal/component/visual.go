// internal/component/visual.go
package component

import "image/color"

// Burst is the particle ring spawned at a merge anchor.
type Burst struct {
	Timer    float64 // time the effect has been active
	Duration float64
	Color    color.RGBA
	Count    int // particles in the ring
}

// FloatText is a short-lived label drifting upward (coin gains, leaks).
type FloatText struct {
	Text     string
	Timer    float64
	Duration float64
	Color    color.RGBA
}
