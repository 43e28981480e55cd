// internal/utils/math.go
package utils

import "math"

// MoveToward steps from (x, y) towards (tx, ty) by at most step.
// arrived is true when the step reached the target; the result is then exactly the target.
func MoveToward(x, y, tx, ty, step float64) (nx, ny float64, arrived bool) {
	dx := tx - x
	dy := ty - y
	dist := math.Hypot(dx, dy)
	if dist <= step || dist == 0 {
		return tx, ty, true
	}
	return x + dx/dist*step, y + dy/dist*step, false
}

// RingOffset returns the i-th of n points evenly spaced on a circle of radius r.
func RingOffset(i, n int, r float64) (dx, dy float64) {
	if n <= 1 || r == 0 {
		return 0, 0
	}
	angle := 2 * math.Pi * float64(i) / float64(n)
	return math.Cos(angle) * r, math.Sin(angle) * r
}
