// internal/system/damage.go
package system

import (
	"castle-defense/internal/defs"
	"castle-defense/internal/entity"
	"castle-defense/internal/types"
)

// RewardRoller rolls kill rewards.
type RewardRoller interface {
	IntRange(lo, hi int) int
}

// ApplyDamage subtracts damage from a live enemy. An enemy dropping to zero
// health dies and pays its reward into the game state. Unknown or already
// dead enemies are left untouched.
func ApplyDamage(ecs *entity.ECS, enemyID types.EntityID, damage int, def defs.EnemyDefinition, rng RewardRoller) (killed bool, reward int) {
	enemy, ok := ecs.Enemy(enemyID)
	if !ok || !enemy.Alive || damage <= 0 {
		return false, 0
	}

	enemy.Health -= damage
	if enemy.Health > 0 {
		return false, 0
	}

	enemy.Health = 0
	enemy.Alive = false
	reward = def.RewardMin
	if !def.FlatReward() {
		reward = rng.IntRange(def.RewardMin, def.RewardMax)
	}
	ecs.GameState.Earn(reward)
	return true, reward
}
