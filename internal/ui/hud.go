// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// HUD рисует здоровье замка и золото в левом верхнем углу.
type HUD struct {
	X, Y       float64
	LineHeight float64
	Color      color.RGBA
	face       text.Face
}

func NewHUD(x, y, lineHeight float64, c color.RGBA) *HUD {
	return &HUD{
		X:          x,
		Y:          y,
		LineHeight: lineHeight,
		Color:      c,
		face:       DefaultFace(),
	}
}

// DefaultFace is the bitmap face shared by every text widget.
func DefaultFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// HUDLines returns the status lines in draw order.
func HUDLines(castleHealth, gold int) []string {
	return []string{
		fmt.Sprintf("Castle Health: %d", castleHealth),
		fmt.Sprintf("Gold: %d", gold),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, castleHealth, gold int) {
	for i, line := range HUDLines(castleHealth, gold) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(h.X, h.Y+float64(i)*h.LineHeight)
		op.ColorScale.ScaleWithColor(h.Color)
		text.Draw(screen, line, h.face, op)
	}
}
