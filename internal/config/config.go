// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 400
	MaxDeltaTime = 0.06

	HUDOffsetX     = 10
	HUDLineHeight  = 30
	HUDFirstLineY  = 30
	EndScreenLineY = 28

	EnemyRadius      = 10.0
	TowerHalfSize    = 10.0
	ProjectileRadius = 5.0
	PathStrokeWidth  = 2.0

	TerminalFrameRate = 30
)

var (
	BackgroundColor = color.RGBA{220, 220, 220, 255}
	GameOverColor   = color.RGBA{0, 0, 0, 255}
	PathColor       = color.RGBA{0, 0, 0, 255}
	EnemyColor      = color.RGBA{255, 0, 0, 255}
	ProjectileColor = color.RGBA{255, 255, 255, 255}
	TextDarkColor   = color.RGBA{0, 0, 0, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	TowerColors     = map[string]color.RGBA{
		"basic":  {200, 200, 200, 255},
		"triple": {100, 100, 100, 255},
	}
)
