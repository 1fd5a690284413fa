// internal/component/render.go
package component

import "image/color"

// Renderable draws the entity as a filled circle.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
