// pkg/render/color.go
package render

import "image/color"

// SceneColors holds every color the scene renderer needs.
type SceneColors struct {
	Background color.RGBA
	Path       color.RGBA
	Enemy      color.RGBA
	Projectile color.RGBA
	Towers     map[string]color.RGBA // by tower kind name
	PathWidth  float32
}

// TowerColor falls back to light gray for kinds without an entry.
func (c SceneColors) TowerColor(kind string) color.RGBA {
	if col, ok := c.Towers[kind]; ok {
		return col
	}
	return color.RGBA{200, 200, 200, 255}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
