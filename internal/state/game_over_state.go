// internal/state/game_over_state.go
package state

import (
	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"castle-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*GameOverState)(nil)

// GameOverState is terminal: there is no restart.
type GameOverState struct {
	sm     *StateMachine
	game   *app.Game
	screen *ui.EndScreen
}

func NewGameOverState(sm *StateMachine, g *app.Game) *GameOverState {
	return &GameOverState{
		sm:   sm,
		game: g,
		screen: ui.NewEndScreen(
			g.Config.Canvas.Width, g.Config.Canvas.Height,
			config.EndScreenLineY, config.GameOverColor, config.TextLightColor,
		),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.screen.Draw(screen, s.game.Stats(), s.game.Gold())
}

func (s *GameOverState) Exit() {}
