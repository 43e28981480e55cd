// internal/app/tower_management.go
package app

import (
	"castle-defense/internal/component"
	"castle-defense/internal/defs"
	"castle-defense/internal/event"
)

// Rejection reasons carried by PlacementRejected events.
const (
	RejectGameOver    = "game over"
	RejectUnknownKind = "unknown kind"
	RejectOutOfBounds = "out of bounds"
	RejectNoGold      = "not enough gold"
)

// PlaceTower builds a tower of the given kind at (x, y) if the player can
// afford it. Invalid attempts change nothing and return false.
func (g *Game) PlaceTower(kind defs.TowerKind, x, y float64) bool {
	def, reason := g.canPlaceTower(kind, x, y)
	if reason != "" {
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.PlacementRejected,
			Data: event.TowerData{Kind: kind, X: x, Y: y, Cost: def.Cost, Gold: g.Gold(), Reason: reason},
		})
		return false
	}
	if !g.ECS.GameState.Spend(def.Cost) {
		return false
	}

	tower := g.createTowerEntity(def, x, y)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{TowerID: tower.ID, Kind: kind, X: x, Y: y, Cost: def.Cost, Gold: g.Gold()},
	})
	return true
}

func (g *Game) canPlaceTower(kind defs.TowerKind, x, y float64) (defs.TowerDefinition, string) {
	if g.IsGameOver() {
		return defs.TowerDefinition{}, RejectGameOver
	}
	def, ok := g.Config.Tower(kind)
	if !ok {
		return def, RejectUnknownKind
	}
	canvas := g.Config.Canvas
	// Written positively so NaN coordinates fail the test too.
	if !(x >= 0 && x < canvas.Width && y >= 0 && y < canvas.Height-canvas.HUDReservedHeight) {
		return def, RejectOutOfBounds
	}
	if g.Gold() < def.Cost {
		return def, RejectNoGold
	}
	return def, ""
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, x, y float64) *component.Tower {
	tower := &component.Tower{
		ID:       g.ECS.NewEntity(),
		Kind:     def.Kind,
		Position: component.Position{X: x, Y: y},
		Range:    def.Range,
		Damage:   def.Damage,
		Cooldown: def.Cooldown,
		Shots:    def.Shots,
		Spread:   def.Spread,
	}
	g.ECS.AddTower(tower)
	return tower
}

// TowerCost reports what a tower of kind costs, or false if it cannot be built.
func (g *Game) TowerCost(kind defs.TowerKind) (int, bool) {
	def, ok := g.Config.Tower(kind)
	return def.Cost, ok
}
