// cmd/simulate/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"castle-defense/internal/config"
	"castle-defense/internal/logger"
	"castle-defense/internal/sim"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", "", "path to a YAML config file")
	runs := flag.Int("runs", 8, "number of independent games")
	duration := flag.Float64("duration", 300, "game seconds per run")
	dt := flag.Float64("dt", 1.0/60, "fixed step in seconds")
	seed := flag.Int64("seed", 0, "base seed, run i uses seed+i; 0 picks one from the clock")
	towers := flag.String("towers", "", `scripted builds, e.g. "basic@200,200;triple@400,180"`)
	parallel := flag.Int("parallel", 0, "max concurrent runs, 0 means unlimited")
	logLevel := flag.String("log-level", os.Getenv("LOG_LEVEL"), "debug|info|warn|error")
	flag.Parse()

	log := logger.Setup(os.Stderr, *logLevel)

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	placements, err := sim.ParsePlacements(*towers)
	if err != nil {
		return fmt.Errorf("parsing -towers: %w", err)
	}

	opts := sim.Options{
		Runs:       *runs,
		Duration:   *duration,
		DeltaTime:  *dt,
		Seed:       *seed,
		Placements: placements,
		Parallel:   *parallel,
	}
	log.Info("simulation starting", "runs", opts.Runs, "duration", opts.Duration, "dt", opts.DeltaTime, "towers", len(placements))

	results, err := sim.RunBatch(ctx, cfg, opts, log)
	if err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	for _, r := range results {
		log.Info("run finished",
			"run", r.Run,
			"seed", r.Seed,
			"game_over", r.GameOver,
			"survived", fmt.Sprintf("%.2f", r.Survived),
			"castle", r.CastleHealth,
			"gold", r.Gold,
			"built", r.Built,
			"kills", r.Stats.Kills,
			"breaches", r.Stats.Breaches,
			"hits", r.Stats.Hits,
			"misses", r.Stats.Misses,
		)
	}
	s := sim.Summarize(results)
	fmt.Printf("runs=%d losses=%d mean_survival=%.2fs mean_kills=%.2f\n", s.Runs, s.Losses, s.MeanSurvival, s.MeanKills)
	return nil
}
