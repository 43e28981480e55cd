// internal/entity/ecs.go
package entity

import (
	"castle-defense/internal/component"
	"castle-defense/internal/types"
	"castle-defense/pkg/waypath"
)

// ECS is the in-memory world of one run. Enemies and towers keep insertion
// order; targeting scans them in that order.
type ECS struct {
	GameTime  float64
	NextID    types.EntityID
	Path      waypath.Path
	Enemies   []*component.Enemy
	Towers    []*component.Tower
	GameState *component.GameState

	enemyIndex map[types.EntityID]*component.Enemy
}

func NewECS(path waypath.Path, state *component.GameState) *ECS {
	return &ECS{
		NextID:     1,
		Path:       path,
		GameState:  state,
		enemyIndex: make(map[types.EntityID]*component.Enemy),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.enemyIndex[e.ID] = e
}

// Enemy looks up an enemy that is still in the active list.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	return e, ok
}

func (ecs *ECS) AddTower(t *component.Tower) {
	ecs.Towers = append(ecs.Towers, t)
}

// ReapEnemies compacts the enemy list in place, dropping every enemy that is
// no longer alive. Returns the removed ids.
func (ecs *ECS) ReapEnemies() []types.EntityID {
	var removed []types.EntityID
	kept := ecs.Enemies[:0]
	for _, e := range ecs.Enemies {
		if e.Alive {
			kept = append(kept, e)
			continue
		}
		removed = append(removed, e.ID)
		delete(ecs.enemyIndex, e.ID)
	}
	for i := len(kept); i < len(ecs.Enemies); i++ {
		ecs.Enemies[i] = nil
	}
	ecs.Enemies = kept
	return removed
}

// ProjectileCount is the number of projectiles in flight across all towers.
func (ecs *ECS) ProjectileCount() int {
	n := 0
	for _, t := range ecs.Towers {
		n += len(t.Projectiles)
	}
	return n
}
