package system

import (
	"testing"

	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/defs"
	"castle-defense/internal/entity"
	"castle-defense/internal/event"
	"castle-defense/internal/types"
	"castle-defense/internal/utils"
	"castle-defense/pkg/waypath"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// straight path along y=0: (0,0) -> (100,0) -> (200,0)
func newWorld(t *testing.T) (*entity.ECS, *event.Dispatcher, *[]event.Event) {
	t.Helper()
	path := waypath.New(waypath.Waypoint{X: 0, Y: 0}, waypath.Waypoint{X: 100, Y: 0}, waypath.Waypoint{X: 200, Y: 0})
	ecs := entity.NewECS(path, component.NewGameState(5, 100))
	d := event.NewDispatcher()
	var got []event.Event
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { got = append(got, e) }))
	return ecs, d, &got
}

func addEnemy(ecs *entity.ECS, x, y float64, health int) *component.Enemy {
	e := &component.Enemy{ID: ecs.NewEntity(), Position: component.Position{X: x, Y: y}, Speed: 10, Health: health, Alive: true}
	ecs.AddEnemy(e)
	return e
}

func countEvents(events []event.Event, t event.EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestMovementAdvancesAndSnaps(t *testing.T) {
	ecs, d, _ := newWorld(t)
	ms := NewMovementSystem(ecs, d, 6)
	e := addEnemy(ecs, 0, 0, 3)

	ms.Update(5) // 50px
	assert.InDelta(t, 50, e.Position.X, 1e-9)
	assert.Equal(t, 0, e.PathIndex)

	ms.Update(4.5) // 95px, inside snap distance
	assert.Equal(t, 100.0, e.Position.X)
	assert.Equal(t, 1, e.PathIndex)
	assert.True(t, e.Alive)
}

func TestMovementOvershootStopsAtWaypoint(t *testing.T) {
	ecs, d, _ := newWorld(t)
	ms := NewMovementSystem(ecs, d, 0)
	e := addEnemy(ecs, 0, 0, 3)

	ms.Update(50)
	assert.Equal(t, 100.0, e.Position.X, "one waypoint per tick")
	assert.Equal(t, 1, e.PathIndex)
}

func TestMovementBreach(t *testing.T) {
	ecs, d, events := newWorld(t)
	ms := NewMovementSystem(ecs, d, 6)
	e := addEnemy(ecs, 100, 0, 3)
	e.PathIndex = 1

	ms.Update(10)
	assert.False(t, e.Alive)
	assert.Equal(t, 4, ecs.GameState.CastleHealth)
	assert.Equal(t, 100, ecs.GameState.Gold, "breach pays nothing")
	require.Equal(t, 1, countEvents(*events, event.EnemyBreached))

	ms.Update(10)
	assert.Equal(t, 4, ecs.GameState.CastleHealth, "dead enemies do not move")
}

func TestMovementIndexOverrunIsBreach(t *testing.T) {
	ecs, d, _ := newWorld(t)
	ms := NewMovementSystem(ecs, d, 6)
	e := addEnemy(ecs, 200, 0, 3)
	e.PathIndex = 7

	ms.Update(0.1)
	assert.False(t, e.Alive)
	assert.Equal(t, 4, ecs.GameState.CastleHealth)
}

func TestApplyDamage(t *testing.T) {
	ecs, _, _ := newWorld(t)
	def := defs.EnemyDefinition{RewardMin: 20, RewardMax: 30}
	rng := utils.NewPRNGService(1)
	e := addEnemy(ecs, 0, 0, 3)

	killed, reward := ApplyDamage(ecs, e.ID, 2, def, rng)
	assert.False(t, killed)
	assert.Zero(t, reward)
	assert.Equal(t, 1, e.Health)

	killed, reward = ApplyDamage(ecs, e.ID, 5, def, rng)
	assert.True(t, killed)
	assert.GreaterOrEqual(t, reward, 20)
	assert.Less(t, reward, 30)
	assert.False(t, e.Alive)
	assert.Equal(t, 0, e.Health)
	assert.Equal(t, 100+reward, ecs.GameState.Gold)

	gold := ecs.GameState.Gold
	killed, _ = ApplyDamage(ecs, e.ID, 1, def, rng)
	assert.False(t, killed, "already dead")
	assert.Equal(t, gold, ecs.GameState.Gold)

	killed, _ = ApplyDamage(ecs, types.EntityID(999), 1, def, rng)
	assert.False(t, killed, "unknown id")
}

func TestApplyDamageFlatReward(t *testing.T) {
	ecs, _, _ := newWorld(t)
	e := addEnemy(ecs, 0, 0, 1)
	killed, reward := ApplyDamage(ecs, e.ID, 1, defs.EnemyDefinition{RewardMin: 10, RewardMax: 10}, utils.NewPRNGService(1))
	assert.True(t, killed)
	assert.Equal(t, 10, reward)
}

func newCombat(ecs *entity.ECS, d *event.Dispatcher) *CombatSystem {
	ps := NewProjectileSystem(ecs, d, defs.EnemyDefinition{RewardMin: 10, RewardMax: 10}, defs.DefaultProjectile(), utils.NewPRNGService(1))
	return NewCombatSystem(ecs, d, ps, 300)
}

func basicTower(ecs *entity.ECS, x, y float64) *component.Tower {
	t := &component.Tower{ID: ecs.NewEntity(), Kind: defs.TowerBasic, Position: component.Position{X: x, Y: y}, Range: 100, Damage: 1, Cooldown: 1, Shots: 1}
	ecs.AddTower(t)
	return t
}

func TestTryShootCooldownGate(t *testing.T) {
	ecs, d, _ := newWorld(t)
	cs := newCombat(ecs, d)
	addEnemy(ecs, 50, 0, 10)
	tower := basicTower(ecs, 50, 50)

	assert.False(t, cs.TryShoot(tower, 1.0), "exactly one cooldown since start is not enough")
	assert.True(t, cs.TryShoot(tower, 1.01))
	assert.Len(t, tower.Projectiles, 1)
	assert.False(t, cs.TryShoot(tower, 1.5))
	assert.False(t, cs.TryShoot(tower, 2.01))
	assert.True(t, cs.TryShoot(tower, 2.02))
	assert.Len(t, tower.Projectiles, 2)
}

func TestTryShootPicksFirstInRange(t *testing.T) {
	ecs, d, _ := newWorld(t)
	cs := newCombat(ecs, d)
	far := addEnemy(ecs, 500, 0, 3)
	dead := addEnemy(ecs, 60, 0, 3)
	dead.Alive = false
	first := addEnemy(ecs, 90, 0, 3)
	addEnemy(ecs, 55, 0, 3) // closer but later in spawn order
	tower := basicTower(ecs, 0, 0)

	require.True(t, cs.TryShoot(tower, 5))
	assert.Equal(t, first.ID, tower.Projectiles[0].TargetID)
	assert.NotEqual(t, far.ID, tower.Projectiles[0].TargetID)
}

func TestTryShootNoTarget(t *testing.T) {
	ecs, d, _ := newWorld(t)
	cs := newCombat(ecs, d)
	addEnemy(ecs, 150, 0, 3)
	tower := basicTower(ecs, 0, 0)

	assert.False(t, cs.TryShoot(tower, 5))
	assert.Zero(t, tower.LastShotAt, "no target keeps the tower ready")
}

func TestTripleBurstSurroundsTower(t *testing.T) {
	ecs, d, events := newWorld(t)
	cs := newCombat(ecs, d)
	addEnemy(ecs, 50, 0, 10)
	tower := &component.Tower{ID: ecs.NewEntity(), Kind: defs.TowerTriple, Position: component.Position{X: 50, Y: 50}, Range: 120, Damage: 2, Cooldown: 2, Shots: 3, Spread: 10}
	ecs.AddTower(tower)

	require.True(t, cs.TryShoot(tower, 3))
	require.Len(t, tower.Projectiles, 3)
	for _, p := range tower.Projectiles {
		assert.InDelta(t, 10, p.Position.DistanceTo(tower.Position), 1e-9)
		assert.Equal(t, 2, p.Damage)
	}
	assert.Equal(t, 3, countEvents(*events, event.ProjectileFired))
}

func TestProjectileHomesAndHitsOnce(t *testing.T) {
	ecs, d, events := newWorld(t)
	cs := newCombat(ecs, d)
	enemy := addEnemy(ecs, 100, 0, 2)
	tower := basicTower(ecs, 100, 90)
	require.True(t, cs.TryShoot(tower, 2))

	ps := cs.projectileSystem
	ps.UpdateTower(tower, 0.1) // 30px, 60px left
	require.Len(t, tower.Projectiles, 1)
	assert.InDelta(t, 60, tower.Projectiles[0].Position.Y, 1e-9)

	enemy.Position.X = 130 // target moved, projectile follows
	ps.UpdateTower(tower, 0.1)
	require.Len(t, tower.Projectiles, 1)
	p := tower.Projectiles[0]
	assert.Greater(t, p.Position.X, 100.0)

	for range 10 {
		ps.UpdateTower(tower, 0.1)
	}
	assert.Empty(t, tower.Projectiles)
	assert.Equal(t, 1, enemy.Health)
	assert.Equal(t, 1, countEvents(*events, event.ProjectileHit))
	for _, e := range *events {
		if e.Type == event.ProjectileHit {
			assert.Equal(t, 2.0, e.Data.(event.ProjectileData).FiredAt)
		}
	}
}

func TestProjectileMissesVanishedTarget(t *testing.T) {
	ecs, d, events := newWorld(t)
	cs := newCombat(ecs, d)
	enemy := addEnemy(ecs, 0, 50, 3)
	tower := basicTower(ecs, 0, 0)
	require.True(t, cs.TryShoot(tower, 2))

	enemy.Alive = false
	ecs.ReapEnemies()

	cs.projectileSystem.UpdateTower(tower, 0.1)
	assert.Empty(t, tower.Projectiles)
	assert.Equal(t, 1, countEvents(*events, event.ProjectileMissed))
	assert.Zero(t, countEvents(*events, event.ProjectileHit))
	assert.Equal(t, 100, ecs.GameState.Gold)
}

func TestCombatKillsWithBurstOnlyOnce(t *testing.T) {
	ecs, d, events := newWorld(t)
	cs := newCombat(ecs, d)
	enemy := addEnemy(ecs, 0, 5, 2)
	tower := &component.Tower{ID: ecs.NewEntity(), Position: component.Position{X: 0, Y: 0}, Range: 120, Damage: 2, Cooldown: 2, Shots: 3, Spread: 10}
	ecs.AddTower(tower)

	ecs.GameTime = 3
	cs.Update(0.1) // fires
	ecs.GameTime = 3.1
	cs.Update(0.1) // first projectile kills, the rest miss

	assert.False(t, enemy.Alive)
	assert.Equal(t, 1, countEvents(*events, event.EnemyKilled))
	assert.Equal(t, 1, countEvents(*events, event.ProjectileHit))
	assert.Equal(t, 2, countEvents(*events, event.ProjectileMissed))
	assert.Equal(t, 110, ecs.GameState.Gold)
	assert.Empty(t, tower.Projectiles)
}

func TestSpawnTimingAndRamp(t *testing.T) {
	ecs, d, events := newWorld(t)
	ss := NewSpawnSystem(ecs, d, defs.DefaultEnemy(), config.SpawnConfig{Interval: 3, RampEvery: 10, MinInterval: 1})

	for range 29 {
		ss.Update(0.1)
	}
	assert.Empty(t, ecs.Enemies, "nothing before the first interval")
	ss.Update(0.2)
	require.Len(t, ecs.Enemies, 1)
	e := ecs.Enemies[0]
	assert.Equal(t, component.Position{X: 0, Y: 0}, e.Position)
	assert.Equal(t, 3, e.Health)
	assert.True(t, e.Alive)

	for range 75 {
		ss.Update(0.1)
	}
	assert.Equal(t, 1.5, ss.Interval())
	assert.Equal(t, 1, countEvents(*events, event.SpawnRateIncreased))

	for range 300 {
		ss.Update(0.1)
	}
	assert.Equal(t, 1.0, ss.Interval(), "floored at min interval")
}

func TestStatsCountsBursts(t *testing.T) {
	d := event.NewDispatcher()
	stats := NewStatsSystem(d)
	for i := 0; i < 3; i++ {
		d.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileData{TowerID: 1, At: 2}})
	}
	d.Dispatch(event.Event{Type: event.ProjectileFired, Data: event.ProjectileData{TowerID: 2, At: 2}})
	d.Dispatch(event.Event{Type: event.ProjectileHit, Data: event.ProjectileData{TowerID: 1, At: 2.5, FiredAt: 2}})
	d.Dispatch(event.Event{Type: event.ProjectileHit, Data: event.ProjectileData{TowerID: 2, At: 2.25, FiredAt: 2}})
	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.EnemyData{Reward: 25}})
	d.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{Cost: 100}})
	d.Dispatch(event.Event{Type: event.GameOver, Data: event.GameOverData{At: 40}})

	s := stats.Stats()
	assert.Equal(t, 4, s.ProjectilesFired)
	assert.Equal(t, 2, s.Bursts)
	assert.Equal(t, 25, s.GoldEarned)
	assert.Equal(t, 100, s.GoldSpent)
	assert.Equal(t, 40.0, s.EndedAt)
	assert.Equal(t, 2, s.Hits)
	assert.Equal(t, 0.5, s.LongestFlight)
}
