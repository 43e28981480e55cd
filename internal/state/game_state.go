// internal/state/game_state.go
package state

import (
	"log/slog"

	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"castle-defense/internal/defs"
	"castle-defense/internal/ui"
	"castle-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PlayState)(nil)

// PlayState — основное состояние: симуляция идёт, клики ставят башни.
type PlayState struct {
	sm       *StateMachine
	game     *app.Game
	renderer *render.SceneRenderer
	hud      *ui.HUD
	log      *slog.Logger
}

func NewPlayState(sm *StateMachine, cfg config.Config, log *slog.Logger) *PlayState {
	gameLogic := app.NewGame(cfg, log)

	sceneColors := render.SceneColors{
		Background: config.BackgroundColor,
		Path:       config.PathColor,
		Enemy:      config.EnemyColor,
		Projectile: config.ProjectileColor,
		Towers:     config.TowerColors,
		PathWidth:  config.PathStrokeWidth,
	}
	renderer := render.NewSceneRenderer(sceneColors, int(cfg.Canvas.Width), int(cfg.Canvas.Height))
	renderer.RenderMapImage(gameLogic.ECS.Path)

	return &PlayState{
		sm:       sm,
		game:     gameLogic,
		renderer: renderer,
		hud:      ui.NewHUD(config.HUDOffsetX, config.HUDFirstLineY, config.HUDLineHeight, config.TextDarkColor),
		log:      log,
	}
}

func (g *PlayState) Game() *app.Game {
	return g.game
}

func (g *PlayState) Enter() {}

func (g *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.Push(NewPauseState(g.sm, g))
		return
	}

	g.handleClicks()
	g.game.Update(deltaTime)

	if g.game.IsGameOver() {
		g.sm.SetState(NewGameOverState(g.sm, g.game))
	}
}

// handleClicks: левая кнопка ставит Basic, правая Triple.
func (g *PlayState) handleClicks() {
	var kind defs.TowerKind
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		kind = defs.TowerBasic
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		kind = defs.TowerTriple
	default:
		return
	}
	x, y := ebiten.CursorPosition()
	g.game.PlaceTower(kind, float64(x), float64(y))
}

func (g *PlayState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.ECS)
	g.hud.Draw(screen, g.game.CastleHealth(), g.game.Gold())
}

func (g *PlayState) Exit() {}
