package component

import "castle-defense/internal/types"

// Enemy walks the path towards the castle.
type Enemy struct {
	ID        types.EntityID
	Position  Position
	Speed     float64 // pixels per second
	Health    int
	Alive     bool
	PathIndex int // index of the last waypoint reached
}
