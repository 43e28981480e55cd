// internal/system/combat.go
package system

import (
	"castle-defense/internal/component"
	"castle-defense/internal/entity"
	"castle-defense/internal/event"
	"castle-defense/internal/utils"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs              *entity.ECS
	eventDispatcher  *event.Dispatcher
	projectileSystem *ProjectileSystem
	projectileSpeed  float64
}

func NewCombatSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, projectileSystem *ProjectileSystem, projectileSpeed float64) *CombatSystem {
	return &CombatSystem{
		ecs:              ecs,
		eventDispatcher:  eventDispatcher,
		projectileSystem: projectileSystem,
		projectileSpeed:  projectileSpeed,
	}
}

// Update resolves each tower's projectiles in flight, then lets it shoot.
func (s *CombatSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for _, tower := range s.ecs.Towers {
		s.projectileSystem.UpdateTower(tower, deltaTime)
		s.TryShoot(tower, now)
	}
}

// TryShoot fires one burst at the first live enemy in range, if the tower's
// cooldown has elapsed. Reports whether it fired.
func (s *CombatSystem) TryShoot(tower *component.Tower, now float64) bool {
	if now-tower.LastShotAt <= tower.Cooldown {
		return false
	}
	target := s.findFirstEnemyInRange(tower)
	if target == nil {
		return false
	}

	for i := 0; i < tower.Shots; i++ {
		dx, dy := utils.RingOffset(i, tower.Shots, tower.Spread)
		s.createProjectile(tower, target, tower.Position.X+dx, tower.Position.Y+dy, now)
	}
	tower.LastShotAt = now
	return true
}

// Без приоритетов: первый враг в радиусе по порядку появления
func (s *CombatSystem) findFirstEnemyInRange(tower *component.Tower) *component.Enemy {
	for _, enemy := range s.ecs.Enemies {
		if !enemy.Alive {
			continue
		}
		if tower.Position.DistanceTo(enemy.Position) <= tower.Range {
			return enemy
		}
	}
	return nil
}

func (s *CombatSystem) createProjectile(tower *component.Tower, target *component.Enemy, x, y, now float64) {
	proj := &component.Projectile{
		ID:       s.ecs.NewEntity(),
		OwnerID:  tower.ID,
		TargetID: target.ID,
		Position: component.Position{X: x, Y: y},
		Speed:    s.projectileSpeed,
		Damage:   tower.Damage,
		FiredAt:  now,
	}
	tower.Projectiles = append(tower.Projectiles, proj)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileFired,
		Data: event.ProjectileData{
			ProjectileID: proj.ID,
			TowerID:      tower.ID,
			TargetID:     target.ID,
			Damage:       proj.Damage,
			At:           now,
			FiredAt:      proj.FiredAt,
		},
	})
}
