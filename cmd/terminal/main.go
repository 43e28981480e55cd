// cmd/terminal/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"castle-defense/internal/logger"
	"castle-defense/internal/termui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "castle-defense: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 picks one from the clock")
	logFile := flag.String("log", "", "write logs to this file; the terminal is busy")
	logLevel := flag.String("log-level", os.Getenv("LOG_LEVEL"), "debug|info|warn|error")
	mute := flag.Bool("mute", false, "disable sound")
	flag.Parse()

	var log *slog.Logger
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		log = logger.Setup(f, *logLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	var sound *termui.SoundManager
	if !*mute {
		sound = termui.NewSoundManager()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			if log != nil {
				log.Warn("audio initialization failed", "error", err)
			}
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	game := app.NewGame(cfg, log)
	return termui.NewFrontend(screen, game, sound, log).Run(ctx)
}
