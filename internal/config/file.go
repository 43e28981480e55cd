package config

import (
	"errors"
	"fmt"
	"os"

	"castle-defense/internal/defs"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the tunable part of a run. Times are in seconds, distances in pixels.
type Config struct {
	Seed       int64                     `yaml:"seed"` // 0 picks a time based seed
	Canvas     CanvasConfig              `yaml:"canvas"`
	Path       PathConfig                `yaml:"path"`
	Economy    EconomyConfig             `yaml:"economy"`
	Spawn      SpawnConfig               `yaml:"spawn"`
	Enemy      defs.EnemyDefinition      `yaml:"enemy"`
	Projectile defs.ProjectileDefinition `yaml:"projectile"`
	Towers     []defs.TowerDefinition    `yaml:"towers"`
}

type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// HUDReservedHeight is a strip at the bottom where towers cannot be placed.
	HUDReservedHeight float64 `yaml:"hud_reserved_height"`
}

type PathConfig struct {
	Segments int     `yaml:"segments"`
	Jitter   float64 `yaml:"jitter"`
}

type EconomyConfig struct {
	StartGold    int `yaml:"start_gold"`
	CastleHealth int `yaml:"castle_health"`
}

type SpawnConfig struct {
	Interval    float64 `yaml:"interval"`
	RampEvery   float64 `yaml:"ramp_every"`   // the interval halves this often
	MinInterval float64 `yaml:"min_interval"` // 0 disables the floor
}

// Default returns the stock game.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
		},
		Path: PathConfig{
			Segments: 8,
			Jitter:   50,
		},
		Economy: EconomyConfig{
			StartGold:    100,
			CastleHealth: 5,
		},
		Spawn: SpawnConfig{
			Interval:  3.0,
			RampEvery: 10.0,
		},
		Enemy:      defs.DefaultEnemy(),
		Projectile: defs.DefaultProjectile(),
		Towers:     defs.DefaultTowers(),
	}
}

// Load reads a YAML file over the defaults.
// If the file doesn't exist, returns defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values a run cannot start without.
func (c Config) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Canvas.HUDReservedHeight < 0 || c.Canvas.HUDReservedHeight >= c.Canvas.Height:
		return fmt.Errorf("%w: hud_reserved_height %v out of range", ErrInvalidConfig, c.Canvas.HUDReservedHeight)
	case c.Path.Segments < 1:
		return fmt.Errorf("%w: path.segments must be at least 1", ErrInvalidConfig)
	case c.Spawn.Interval <= 0 || c.Spawn.RampEvery <= 0 || c.Spawn.MinInterval < 0:
		return fmt.Errorf("%w: spawn timings must be positive", ErrInvalidConfig)
	case c.Economy.CastleHealth <= 0 || c.Economy.StartGold < 0:
		return fmt.Errorf("%w: economy out of range", ErrInvalidConfig)
	case c.Enemy.Speed <= 0 || c.Enemy.Health <= 0 || c.Enemy.SnapDistance < 0:
		return fmt.Errorf("%w: enemy speed and health must be positive", ErrInvalidConfig)
	case c.Enemy.RewardMin < 0 || (c.Enemy.RewardMax < c.Enemy.RewardMin):
		return fmt.Errorf("%w: reward range [%d, %d) is invalid", ErrInvalidConfig, c.Enemy.RewardMin, c.Enemy.RewardMax)
	case c.Projectile.Speed <= 0 || c.Projectile.HitRadius <= 0:
		return fmt.Errorf("%w: projectile speed and hit_radius must be positive", ErrInvalidConfig)
	}

	seen := make(map[defs.TowerKind]bool, len(c.Towers))
	for _, t := range c.Towers {
		if !t.Kind.Valid() {
			return fmt.Errorf("%w: unknown tower kind %d", ErrInvalidConfig, int(t.Kind))
		}
		if seen[t.Kind] {
			return fmt.Errorf("%w: tower %s defined twice", ErrInvalidConfig, t.Kind)
		}
		seen[t.Kind] = true
		if t.Cost < 0 || t.Range <= 0 || t.Damage <= 0 || t.Cooldown <= 0 || t.Shots < 1 || t.Spread < 0 {
			return fmt.Errorf("%w: tower %s has out of range stats", ErrInvalidConfig, t.Kind)
		}
	}
	return nil
}

// Tower looks up the definition for kind.
func (c Config) Tower(kind defs.TowerKind) (defs.TowerDefinition, bool) {
	for _, t := range c.Towers {
		if t.Kind == kind {
			return t, true
		}
	}
	return defs.TowerDefinition{}, false
}
