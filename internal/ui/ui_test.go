package ui

import (
	"testing"

	"castle-defense/internal/system"

	"github.com/stretchr/testify/assert"
)

func TestHUDLines(t *testing.T) {
	assert.Equal(t, []string{"Castle Health: 10", "Gold: 200"}, HUDLines(10, 200))
	assert.Equal(t, []string{"Castle Health: 0", "Gold: 0"}, HUDLines(0, 0))
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(system.Stats{EndedAt: 42.5, Kills: 3, EnemiesSpawned: 14, TowersPlaced: 2}, 75)
	assert.Equal(t, []string{
		"Survived: 42.5s",
		"Enemies killed: 3 of 14",
		"Towers built: 2",
		"Gold left: 75",
	}, lines)
}
