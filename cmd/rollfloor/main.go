// Command rollfloor reads a roll grid from stdin and prints the number of
// accessible rolls, the number removed by peeling to exhaustion, or both.
//
// Settings come from ROLLFLOOR_* environment variables; see internal/config.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"go.uber.org/zap"

	"github.com/katalvlaran/rollfloor/internal/app"
	"github.com/katalvlaran/rollfloor/internal/config"
	"github.com/katalvlaran/rollfloor/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rollfloor: %v\n", err)
		return 1
	}

	logger, err := logging.NewLogger(cfg.Log.Level, cfg.Log.Format, "rollfloor")
	if err != nil {
		fmt.Fprintf(os.Stderr, "rollfloor: init logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	switch cfg.Profile.Kind {
	case config.ProfileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.Profile.Dir), profile.Quiet, profile.NoShutdownHook).Stop()
	case config.ProfileMem:
		defer profile.Start(profile.MemProfile, profile.ProfilePath(cfg.Profile.Dir), profile.Quiet, profile.NoShutdownHook).Stop()
	}

	if err := app.Run(os.Stdin, os.Stdout, cfg, logger); err != nil {
		logger.Error("evaluation failed", zap.Error(err))
		return 1
	}
	return 0
}
