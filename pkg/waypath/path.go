// Package waypath generates the polyline enemies walk along.
package waypath

import "math"

// Waypoint is a fixed point on the path.
type Waypoint struct {
	X, Y float64
}

// Path is an ordered, immutable list of waypoints.
type Path struct {
	points []Waypoint
}

// Rand is the randomness Generate needs.
type Rand interface {
	FloatRange(lo, hi float64) float64
}

// New wraps an explicit list of waypoints. The slice is copied.
func New(points ...Waypoint) Path {
	cp := make([]Waypoint, len(points))
	copy(cp, points)
	return Path{points: cp}
}

// Generate builds a path across a width x height canvas. The endpoints sit on
// the vertical midline of the left and right edges; the segments-1 interior
// points are evenly spaced in x and jittered by up to ±jitter in y.
func Generate(width, height float64, segments int, jitter float64, rng Rand) Path {
	if segments < 1 {
		segments = 1
	}
	midY := height / 2
	step := width / float64(segments)

	points := make([]Waypoint, 0, segments+1)
	points = append(points, Waypoint{X: 0, Y: midY})
	for i := 1; i < segments; i++ {
		y := midY
		if jitter > 0 && rng != nil {
			y += rng.FloatRange(-jitter, jitter)
		}
		points = append(points, Waypoint{X: float64(i) * step, Y: y})
	}
	points = append(points, Waypoint{X: width, Y: midY})
	return Path{points: points}
}

func (p Path) Len() int {
	return len(p.points)
}

// At returns the i-th waypoint.
func (p Path) At(i int) Waypoint {
	return p.points[i]
}

func (p Path) First() Waypoint {
	return p.points[0]
}

func (p Path) Last() Waypoint {
	return p.points[len(p.points)-1]
}

// LastIndex is the index of the castle waypoint.
func (p Path) LastIndex() int {
	return len(p.points) - 1
}

// Points returns a copy of the waypoints.
func (p Path) Points() []Waypoint {
	cp := make([]Waypoint, len(p.points))
	copy(cp, p.points)
	return cp
}

// Length is the total polyline length.
func (p Path) Length() float64 {
	total := 0.0
	for i := 1; i < len(p.points); i++ {
		a, b := p.points[i-1], p.points[i]
		total += math.Hypot(b.X-a.X, b.Y-a.Y)
	}
	return total
}
