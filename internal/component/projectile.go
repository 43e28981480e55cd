// internal/component/projectile.go
package component

import "castle-defense/internal/types"

// Projectile homes on its target's current position.
type Projectile struct {
	ID       types.EntityID
	OwnerID  types.EntityID
	TargetID types.EntityID
	Position Position
	Speed    float64 // pixels per second
	Damage   int
	FiredAt  float64
}
