// internal/system/stats.go
package system

import "castle-defense/internal/event"

// Stats is a running tally of one game.
type Stats struct {
	EnemiesSpawned     int
	Kills              int
	Breaches           int
	Bursts             int
	ProjectilesFired   int
	Hits               int
	Misses             int
	GoldEarned         int
	GoldSpent          int
	TowersPlaced       int
	PlacementsRejected int
	SpawnRamps         int
	LongestFlight      float64 // seconds between firing and the hit
	EndedAt            float64 // game time of GameOver, 0 while running
}

// StatsSystem fills Stats from the event stream.
type StatsSystem struct {
	stats     Stats
	lastBurst struct {
		tower uint64
		at    float64
		valid bool
	}
}

func NewStatsSystem(eventDispatcher *event.Dispatcher) *StatsSystem {
	s := &StatsSystem{}
	eventDispatcher.SubscribeAll(s)
	return s
}

func (s *StatsSystem) Stats() Stats {
	return s.stats
}

func (s *StatsSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemySpawned:
		s.stats.EnemiesSpawned++
	case event.EnemyKilled:
		s.stats.Kills++
		if data, ok := e.Data.(event.EnemyData); ok {
			s.stats.GoldEarned += data.Reward
		}
	case event.EnemyBreached:
		s.stats.Breaches++
	case event.TowerPlaced:
		s.stats.TowersPlaced++
		if data, ok := e.Data.(event.TowerData); ok {
			s.stats.GoldSpent += data.Cost
		}
	case event.PlacementRejected:
		s.stats.PlacementsRejected++
	case event.ProjectileFired:
		s.stats.ProjectilesFired++
		if data, ok := e.Data.(event.ProjectileData); ok {
			// Снаряды одного залпа приходят подряд с одним временем
			last := &s.lastBurst
			if !last.valid || last.tower != uint64(data.TowerID) || last.at != data.At {
				s.stats.Bursts++
			}
			last.tower, last.at, last.valid = uint64(data.TowerID), data.At, true
		}
	case event.ProjectileHit:
		s.stats.Hits++
		if data, ok := e.Data.(event.ProjectileData); ok {
			s.stats.LongestFlight = max(s.stats.LongestFlight, data.At-data.FiredAt)
		}
	case event.ProjectileMissed:
		s.stats.Misses++
	case event.SpawnRateIncreased:
		s.stats.SpawnRamps++
	case event.GameOver:
		if data, ok := e.Data.(event.GameOverData); ok {
			s.stats.EndedAt = data.At
		}
	}
}
