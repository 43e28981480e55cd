// internal/ui/end_screen.go
package ui

import (
	"fmt"
	"image/color"

	"castle-defense/internal/system"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// EndScreen: итоговый экран после падения замка.
type EndScreen struct {
	Width, Height float64
	LineHeight    float64
	Background    color.RGBA
	Color         color.RGBA
	face          text.Face
}

func NewEndScreen(width, height, lineHeight float64, background, c color.RGBA) *EndScreen {
	return &EndScreen{
		Width:      width,
		Height:     height,
		LineHeight: lineHeight,
		Background: background,
		Color:      c,
		face:       DefaultFace(),
	}
}

// SummaryLines is the run summary printed under the title.
func SummaryLines(stats system.Stats, gold int) []string {
	return []string{
		fmt.Sprintf("Survived: %.1fs", stats.EndedAt),
		fmt.Sprintf("Enemies killed: %d of %d", stats.Kills, stats.EnemiesSpawned),
		fmt.Sprintf("Towers built: %d", stats.TowersPlaced),
		fmt.Sprintf("Gold left: %d", gold),
	}
}

func (e *EndScreen) Draw(screen *ebiten.Image, stats system.Stats, gold int) {
	screen.Fill(e.Background)

	cx := e.Width / 2
	y := e.Height/2 - 2*e.LineHeight
	e.drawCentered(screen, "Game Over", cx, y)
	for _, line := range SummaryLines(stats, gold) {
		y += e.LineHeight
		e.drawCentered(screen, line, cx, y)
	}
}

func (e *EndScreen) drawCentered(screen *ebiten.Image, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(e.Color)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, e.face, op)
}
