// internal/system/projectile.go
package system

import (
	"castle-defense/internal/component"
	"castle-defense/internal/defs"
	"castle-defense/internal/entity"
	"castle-defense/internal/event"
	"castle-defense/internal/utils"
)

// ProjectileSystem moves a tower's projectiles and resolves them against
// their targets.
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	enemy           defs.EnemyDefinition
	hitRadius       float64
	rng             RewardRoller
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, enemy defs.EnemyDefinition, projectile defs.ProjectileDefinition, rng RewardRoller) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		enemy:           enemy,
		hitRadius:       projectile.HitRadius,
		rng:             rng,
	}
}

// UpdateTower advances every projectile owned by tower. Resolved and missed
// projectiles are dropped from the tower in a single compacting pass.
func (s *ProjectileSystem) UpdateTower(tower *component.Tower, deltaTime float64) {
	kept := tower.Projectiles[:0]
	for _, proj := range tower.Projectiles {
		target, ok := s.ecs.Enemy(proj.TargetID)
		if !ok || !target.Alive {
			// Цель пропала, снаряд уходит в молоко
			s.dispatch(event.ProjectileMissed, proj)
			continue
		}

		x, y, _ := utils.MoveToward(proj.Position.X, proj.Position.Y, target.Position.X, target.Position.Y, proj.Speed*deltaTime)
		proj.Position = component.Position{X: x, Y: y}

		if proj.Position.DistanceTo(target.Position) < s.hitRadius {
			s.hitTarget(proj)
			continue
		}
		kept = append(kept, proj)
	}
	for i := len(kept); i < len(tower.Projectiles); i++ {
		tower.Projectiles[i] = nil
	}
	tower.Projectiles = kept
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile) {
	killed, reward := ApplyDamage(s.ecs, proj.TargetID, proj.Damage, s.enemy, s.rng)
	s.dispatch(event.ProjectileHit, proj)

	if killed {
		target, _ := s.ecs.Enemy(proj.TargetID)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyData{
				EnemyID: proj.TargetID,
				X:       target.Position.X,
				Y:       target.Position.Y,
				Reward:  reward,
			},
		})
	}
}

func (s *ProjectileSystem) dispatch(t event.EventType, proj *component.Projectile) {
	s.eventDispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.ProjectileData{
			ProjectileID: proj.ID,
			TowerID:      proj.OwnerID,
			TargetID:     proj.TargetID,
			Damage:       proj.Damage,
			At:           s.ecs.GameTime,
			FiredAt:      proj.FiredAt,
		},
	})
}
