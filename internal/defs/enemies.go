package defs

// EnemyDefinition holds the static data every spawned enemy starts from.
type EnemyDefinition struct {
	Speed        float64 `yaml:"speed"` // pixels per second
	Health       int     `yaml:"health"`
	RewardMin    int     `yaml:"reward_min"`
	RewardMax    int     `yaml:"reward_max"`    // exclusive; <= RewardMin means a flat RewardMin
	SnapDistance float64 `yaml:"snap_distance"` // waypoint capture radius, pixels
}

// FlatReward reports whether kills always pay RewardMin.
func (d EnemyDefinition) FlatReward() bool {
	return d.RewardMax <= d.RewardMin
}

// DefaultEnemy — 0.5 px per frame at 60 fps, three hits from a basic tower.
func DefaultEnemy() EnemyDefinition {
	return EnemyDefinition{
		Speed:        30,
		Health:       3,
		RewardMin:    20,
		RewardMax:    30,
		SnapDistance: 6,
	}
}

// ProjectileDefinition is shared by every tower kind.
type ProjectileDefinition struct {
	Speed     float64 `yaml:"speed"`      // pixels per second
	HitRadius float64 `yaml:"hit_radius"` // pixels
}

func DefaultProjectile() ProjectileDefinition {
	return ProjectileDefinition{Speed: 300, HitRadius: 10}
}
