// internal/component/tower.go
package component

import (
	"castle-defense/internal/defs"
	"castle-defense/internal/types"
)

// Tower is an immobile emitter. It owns every projectile it fired that has
// not been resolved yet.
type Tower struct {
	ID          types.EntityID
	Kind        defs.TowerKind
	Position    Position
	Range       float64
	Damage      int
	Cooldown    float64 // seconds between shots
	LastShotAt  float64 // game time of the previous shot
	Shots       int     // projectiles per burst
	Spread      float64 // burst offset around the tower, pixels
	Projectiles []*Projectile
}
