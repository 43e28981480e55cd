// internal/sim/placement.go
package sim

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"castle-defense/internal/defs"
)

// Placement is a scripted tower build: kind at (X, Y).
type Placement struct {
	Kind defs.TowerKind
	X, Y float64
}

func (p Placement) String() string {
	return fmt.Sprintf("%s@%g,%g", p.Kind, p.X, p.Y)
}

// ParsePlacements reads a list like "basic@200,200;triple@400,180".
// Blank input yields no placements.
func ParsePlacements(s string) ([]Placement, error) {
	var out []Placement
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		p, err := parsePlacement(item)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func parsePlacement(item string) (Placement, error) {
	kindStr, coords, ok := strings.Cut(item, "@")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: want kind@x,y", item)
	}
	kind, err := defs.ParseTowerKind(strings.TrimSpace(kindStr))
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: %w", item, err)
	}
	xs, ys, ok := strings.Cut(coords, ",")
	if !ok {
		return Placement{}, fmt.Errorf("placement %q: want kind@x,y", item)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: bad x: %w", item, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: bad y: %w", item, err)
	}
	if !finite(x) || !finite(y) {
		return Placement{}, fmt.Errorf("placement %q: coordinates must be finite", item)
	}
	return Placement{Kind: kind, X: x, Y: y}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
