// internal/defs/towers.go
package defs

import (
	"fmt"
	"strings"
)

// TowerKind is the closed set of buildable towers.
type TowerKind int

const (
	TowerBasic TowerKind = iota
	TowerTriple
)

var towerKindNames = map[TowerKind]string{
	TowerBasic:  "basic",
	TowerTriple: "triple",
}

func (k TowerKind) String() string {
	if name, ok := towerKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TowerKind(%d)", int(k))
}

// Valid reports whether k is one of the known kinds.
func (k TowerKind) Valid() bool {
	_, ok := towerKindNames[k]
	return ok
}

// ParseTowerKind maps a name such as "basic" back to its kind.
func ParseTowerKind(s string) (TowerKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for kind, n := range towerKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown tower kind %q", s)
}

func (k TowerKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("unknown tower kind %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *TowerKind) UnmarshalText(b []byte) error {
	kind, err := ParseTowerKind(string(b))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// TowerDefinition holds the static data for one kind of tower.
type TowerDefinition struct {
	Kind     TowerKind `yaml:"kind"`
	Name     string    `yaml:"name"`
	Cost     int       `yaml:"cost"`
	Range    float64   `yaml:"range"`    // pixels
	Damage   int       `yaml:"damage"`   // per projectile
	Cooldown float64   `yaml:"cooldown"` // seconds
	Shots    int       `yaml:"shots"`    // projectiles per burst
	Spread   float64   `yaml:"spread"`   // burst offset radius, pixels
}

// DefaultTowers returns the stock behavior table.
func DefaultTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			Kind:     TowerBasic,
			Name:     "Basic",
			Cost:     100,
			Range:    100,
			Damage:   1,
			Cooldown: 1.0,
			Shots:    1,
		},
		{
			Kind:     TowerTriple,
			Name:     "Triple",
			Cost:     100,
			Range:    120,
			Damage:   2,
			Cooldown: 2.0,
			Shots:    3,
			Spread:   10,
		},
	}
}
