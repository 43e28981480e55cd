// internal/component/movement.go
package component

import "math"

// Position — a point on the canvas, in pixels
type Position struct {
	X, Y float64
}

// DistanceTo returns the Euclidean distance between two points.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}
