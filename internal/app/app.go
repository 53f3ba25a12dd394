// Package app runs a single rollfloor evaluation: read a grid, compute the
// configured result, write it.
package app

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/rollfloor/floor"
	"github.com/katalvlaran/rollfloor/internal/config"
)

// Run parses the grid from in and writes the result for cfg.Mode to out,
// one integer per line. In ModeBoth the accessible count comes first,
// then the peel total.
func Run(in io.Reader, out io.Writer, cfg *config.Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()

	f, err := floor.New(in,
		floor.WithStore(cfg.Store),
		floor.WithWorkers(cfg.Workers),
		floor.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	logger.Info("grid loaded",
		zap.Int("rolls", f.Len()),
		zap.String("store", string(cfg.Store)),
		zap.Duration("elapsed", time.Since(start)),
	)

	var results []int
	switch cfg.Mode {
	case config.ModeCount:
		results = append(results, f.CountAccessible())
	case config.ModePeel:
		results = append(results, f.PeelToExhaustion())
	case config.ModeBoth:
		results = append(results, f.CountAccessible(), f.PeelToExhaustion())
	default:
		return fmt.Errorf("%w: unknown mode %q", config.ErrInvalidConfig, cfg.Mode)
	}

	for _, n := range results {
		if _, err := fmt.Fprintln(out, n); err != nil {
			return fmt.Errorf("app: write result: %w", err)
		}
	}
	logger.Info("evaluation finished",
		zap.String("mode", string(cfg.Mode)),
		zap.Ints("results", results),
		zap.Int("remaining", f.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}
