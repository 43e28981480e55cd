package render

import (
	"image/color"

	"castle-defense/internal/component"
	"castle-defense/internal/config"
	"castle-defense/internal/defs"
	"castle-defense/internal/entity"
	"castle-defense/pkg/waypath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneRenderer draws the path, towers, enemies and projectiles.
type SceneRenderer struct {
	colors       SceneColors
	screenWidth  int
	screenHeight int
	fillImg      *ebiten.Image
	fillVs       []ebiten.Vertex
	fillIs       []uint16
	mapImage     *ebiten.Image // pre-rendered background and path
}

func NewSceneRenderer(colors SceneColors, screenWidth, screenHeight int) *SceneRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &SceneRenderer{
		colors:       colors,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		fillImg:      fillImg,
	}
}

// RenderMapImage bakes the background and the path into an offscreen image.
// The path never changes during a run, so this is done once.
func (r *SceneRenderer) RenderMapImage(path waypath.Path) {
	if r.mapImage == nil {
		r.mapImage = ebiten.NewImage(r.screenWidth, r.screenHeight)
	}
	r.mapImage.Fill(r.colors.Background)

	var p vector.Path
	for i, w := range path.Points() {
		if i == 0 {
			p.MoveTo(float32(w.X), float32(w.Y))
		} else {
			p.LineTo(float32(w.X), float32(w.Y))
		}
	}
	r.fillVs, r.fillIs = p.AppendVerticesAndIndicesForStroke(r.fillVs[:0], r.fillIs[:0], &vector.StrokeOptions{
		Width:    r.colors.PathWidth,
		LineJoin: vector.LineJoinRound,
	})
	r.drawVertices(r.mapImage, r.colors.Path)
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if r.mapImage == nil {
		r.RenderMapImage(ecs.Path)
	}
	screen.DrawImage(r.mapImage, nil)

	for _, enemy := range ecs.Enemies {
		vector.DrawFilledCircle(screen, float32(enemy.Position.X), float32(enemy.Position.Y), config.EnemyRadius, r.colors.Enemy, true)
	}

	for _, tower := range ecs.Towers {
		r.drawTower(screen, tower)
		for _, proj := range tower.Projectiles {
			vector.DrawFilledCircle(screen, float32(proj.Position.X), float32(proj.Position.Y), config.ProjectileRadius, r.colors.Projectile, true)
		}
	}
}

func (r *SceneRenderer) drawTower(screen *ebiten.Image, tower *component.Tower) {
	x, y := float32(tower.Position.X), float32(tower.Position.Y)
	const s = config.TowerHalfSize
	fill := r.colors.TowerColor(tower.Kind.String())

	switch tower.Kind {
	case defs.TowerTriple:
		var p vector.Path
		p.MoveTo(x, y-s)
		p.LineTo(x-s, y+s)
		p.LineTo(x+s, y+s)
		p.Close()
		r.fillVs, r.fillIs = p.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
		r.drawVertices(screen, fill)
	default:
		vector.DrawFilledRect(screen, x-s, y-s, 2*s, 2*s, fill, true)
		vector.StrokeRect(screen, x-s, y-s, 2*s, 2*s, 1, DarkenColor(fill), true)
	}
}

func (r *SceneRenderer) drawVertices(target *ebiten.Image, c color.RGBA) {
	for i := range r.fillVs {
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}
