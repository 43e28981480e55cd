// internal/event/types.go
package event

import (
	"castle-defense/internal/defs"
	"castle-defense/internal/types"
)

const (
	EnemySpawned       EventType = "EnemySpawned"
	EnemyKilled        EventType = "EnemyKilled"   // убит снарядом, золото начислено
	EnemyBreached      EventType = "EnemyBreached" // дошёл до замка
	TowerPlaced        EventType = "TowerPlaced"
	PlacementRejected  EventType = "PlacementRejected"
	ProjectileFired    EventType = "ProjectileFired"
	ProjectileHit      EventType = "ProjectileHit"
	ProjectileMissed   EventType = "ProjectileMissed" // цель исчезла до попадания
	SpawnRateIncreased EventType = "SpawnRateIncreased"
	GameOver           EventType = "GameOver"
)

type EnemyData struct {
	EnemyID types.EntityID
	X, Y    float64
	Reward  int // EnemyKilled only
	Castle  int // EnemyBreached only: castle health after the hit
}

type TowerData struct {
	TowerID types.EntityID
	Kind    defs.TowerKind
	X, Y    float64
	Cost    int
	Gold    int // gold after the attempt
	Reason  string
}

type ProjectileData struct {
	ProjectileID types.EntityID
	TowerID      types.EntityID
	TargetID     types.EntityID
	Damage       int
	At           float64
	FiredAt      float64
}

type SpawnRateData struct {
	Interval float64
}

type GameOverData struct {
	At float64
}
