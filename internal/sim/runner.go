// internal/sim/runner.go
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"castle-defense/internal/app"
	"castle-defense/internal/config"
	"castle-defense/internal/system"

	"golang.org/x/sync/errgroup"
)

// Options describe a batch of headless runs.
type Options struct {
	Runs       int
	Duration   float64 // game seconds per run
	DeltaTime  float64 // fixed step
	Seed       int64   // run i uses Seed+i; 0 picks a base from the clock
	Placements []Placement
	Parallel   int // 0 means no limit
}

// Result is the outcome of one run.
type Result struct {
	Run          int
	Seed         int64
	GameOver     bool
	Survived     float64
	CastleHealth int
	Gold         int
	Built        int
	Stats        system.Stats
}

// Summary aggregates a batch.
type Summary struct {
	Runs         int
	Losses       int
	MeanSurvival float64
	MeanKills    float64
}

func (o Options) validate() error {
	switch {
	case o.Runs < 1:
		return fmt.Errorf("runs must be at least 1, got %d", o.Runs)
	case !finite(o.Duration) || o.Duration <= 0:
		return fmt.Errorf("duration must be positive, got %v", o.Duration)
	case !finite(o.DeltaTime) || o.DeltaTime <= 0 || o.DeltaTime > o.Duration:
		return fmt.Errorf("dt must be in (0, duration], got %v", o.DeltaTime)
	}
	return nil
}

// RunBatch plays opts.Runs independent games in parallel. Each game is owned
// by a single goroutine. log may be nil.
func RunBatch(ctx context.Context, cfg config.Config, opts Options, log *slog.Logger) ([]Result, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	base := opts.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	results := make([]Result, opts.Runs)
	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		g.SetLimit(opts.Parallel)
	}
	for i := range opts.Runs {
		runCfg := cfg
		runCfg.Seed = base + int64(i)
		g.Go(func() error {
			res, err := Run(gctx, runCfg, opts, log)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			res.Run = i
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Run plays one game for opts.Duration seconds or until the castle falls.
// Placements are attempted in order on every step; one that cannot be
// afforded yet blocks the rest until gold arrives. A placement rejected for
// any other reason is dropped.
func Run(ctx context.Context, cfg config.Config, opts Options, log *slog.Logger) (Result, error) {
	game := app.NewGame(cfg, nil)
	pending := append([]Placement(nil), opts.Placements...)
	built := 0

	for game.GameTime() < opts.Duration && !game.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		for len(pending) > 0 {
			p := pending[0]
			if game.PlaceTower(p.Kind, p.X, p.Y) {
				built++
				pending = pending[1:]
				continue
			}
			if cost, ok := game.TowerCost(p.Kind); ok && game.Gold() < cost && !game.IsGameOver() {
				break
			}
			if log != nil {
				log.Warn("placement dropped", "seed", cfg.Seed, "placement", p.String())
			}
			pending = pending[1:]
		}
		game.Update(opts.DeltaTime)
	}

	return Result{
		Seed:         cfg.Seed,
		GameOver:     game.IsGameOver(),
		Survived:     game.GameTime(),
		CastleHealth: game.CastleHealth(),
		Gold:         game.Gold(),
		Built:        built,
		Stats:        game.Stats(),
	}, nil
}

func Summarize(results []Result) Summary {
	s := Summary{Runs: len(results)}
	if len(results) == 0 {
		return s
	}
	var survival, kills float64
	for _, r := range results {
		if r.GameOver {
			s.Losses++
		}
		survival += r.Survived
		kills += float64(r.Stats.Kills)
	}
	s.MeanSurvival = survival / float64(len(results))
	s.MeanKills = kills / float64(len(results))
	return s
}
