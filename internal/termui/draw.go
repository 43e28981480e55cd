// internal/termui/draw.go
package termui

import (
	"fmt"
	"math"

	"castle-defense/internal/app"
	"castle-defense/internal/defs"
	"castle-defense/pkg/waypath"

	"github.com/gdamore/tcell/v2"
)

// Canvas is the part of tcell.Screen the drawing code needs.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

var (
	styleField      = tcell.StyleDefault
	stylePath       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleGameOver   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack).Bold(true)
	styleTowers     = map[defs.TowerKind]tcell.Style{
		defs.TowerBasic:  tcell.StyleDefault.Foreground(tcell.ColorSilver),
		defs.TowerTriple: tcell.StyleDefault.Foreground(tcell.ColorGray).Bold(true),
	}
	towerRunes = map[defs.TowerKind]rune{
		defs.TowerBasic:  '■',
		defs.TowerTriple: '▲',
	}
)

const (
	runePath       = '·'
	runeEnemy      = 'o'
	runeProjectile = '*'
)

// Draw paints the whole frame. Later layers overwrite earlier ones:
// path, towers, enemies, projectiles, HUD.
func Draw(c Canvas, vp Viewport, g *app.Game, paused bool) {
	for row := 0; row < vp.Rows; row++ {
		for col := 0; col < vp.Cols; col++ {
			c.SetContent(col, row, ' ', nil, styleField)
		}
	}

	drawPath(c, vp, g.ECS.Path)

	for _, t := range g.ECS.Towers {
		put(c, vp, t.Position.X, t.Position.Y, towerRunes[t.Kind], styleTowers[t.Kind])
	}
	for _, e := range g.ECS.Enemies {
		put(c, vp, e.Position.X, e.Position.Y, runeEnemy, styleEnemy)
	}
	for _, t := range g.ECS.Towers {
		for _, p := range t.Projectiles {
			put(c, vp, p.Position.X, p.Position.Y, runeProjectile, styleProjectile)
		}
	}

	status := HUDLine(g.CastleHealth(), g.Gold())
	if paused {
		status += "  [paused]"
	}
	drawText(c, 0, 0, vp.Cols, status, styleHUD)

	if g.IsGameOver() {
		msg := " Game Over "
		col := (vp.Cols - len(msg)) / 2
		drawText(c, col, HUDRows+(vp.Rows-HUDRows)/2, len(msg), msg, styleGameOver)
	}
}

// HUDLine is the status row text.
func HUDLine(castleHealth, gold int) string {
	return fmt.Sprintf(" Castle Health: %d  Gold: %d  (LMB basic, RMB triple, p pause, q quit)", castleHealth, gold)
}

func put(c Canvas, vp Viewport, x, y float64, r rune, style tcell.Style) {
	col, row := vp.ToCell(x, y)
	if vp.InField(col, row) {
		c.SetContent(col, row, r, nil, style)
	}
}

// drawPath samples each segment at roughly half a cell.
func drawPath(c Canvas, vp Viewport, path waypath.Path) {
	cw, ch := vp.cellSize()
	step := min(cw, ch) / 2
	for i := 0; i < path.LastIndex(); i++ {
		a, b := path.At(i), path.At(i+1)
		dx, dy := b.X-a.X, b.Y-a.Y
		n := int(max(math.Abs(dx), math.Abs(dy))/step) + 1
		for k := 0; k <= n; k++ {
			t := float64(k) / float64(n)
			put(c, vp, a.X+dx*t, a.Y+dy*t, runePath, stylePath)
		}
	}
}

func drawText(c Canvas, col, row, width int, s string, style tcell.Style) {
	i := 0
	for _, r := range s {
		if i >= width {
			return
		}
		c.SetContent(col+i, row, r, nil, style)
		i++
	}
	for ; i < width; i++ {
		c.SetContent(col+i, row, ' ', nil, style)
	}
}
