// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"castle-defense/internal/config"
	"castle-defense/internal/logger"
	"castle-defense/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	logLevel := flag.String("log-level", os.Getenv("LOG_LEVEL"), "debug|info|warn|error")
	flag.Parse()

	log := logger.Setup(os.Stderr, *logLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPlayState(sm, cfg, log))

	app := &AppGame{
		stateMachine:   sm,
		width:          int(cfg.Canvas.Width),
		height:         int(cfg.Canvas.Height),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle("Castle Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Error("game exited", "error", err)
		os.Exit(1)
	}
}
