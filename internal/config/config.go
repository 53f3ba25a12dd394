// Package config loads rollfloor runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/rollfloor/store"
)

// ErrInvalidConfig is wrapped by every validation failure in Load.
var ErrInvalidConfig = errors.New("config: invalid value")

// Mode selects which result the binary prints.
type Mode string

const (
	// ModePeel prints the number of rolls removed by a full peel.
	ModePeel Mode = "peel"
	// ModeCount prints the number of accessible rolls.
	ModeCount Mode = "count"
	// ModeBoth prints the count, then the peel total.
	ModeBoth Mode = "both"
)

// Profile selects an optional pprof profile.
type Profile string

const (
	ProfileOff Profile = ""
	ProfileCPU Profile = "cpu"
	ProfileMem Profile = "mem"
)

// Environment keys.
const (
	EnvMode       = "ROLLFLOOR_MODE"
	EnvStore      = "ROLLFLOOR_STORE"
	EnvWorkers    = "ROLLFLOOR_WORKERS"
	EnvLogLevel   = "ROLLFLOOR_LOG_LEVEL"
	EnvLogFormat  = "ROLLFLOOR_LOG_FORMAT"
	EnvProfile    = "ROLLFLOOR_PROFILE"
	EnvProfileDir = "ROLLFLOOR_PROFILE_DIR"
)

// Config is the full runtime configuration.
type Config struct {
	Mode    Mode
	Store   store.Kind
	Workers int

	Log struct {
		Level  string
		Format string
	}

	Profile struct {
		Kind Profile
		Dir  string
	}
}

// Load reads the configuration from the environment, applying defaults
// for unset keys. The first invalid value is returned wrapped in ErrInvalidConfig.
func Load() (*Config, error) {
	cfg := &Config{}

	switch m := Mode(getEnv(EnvMode, string(ModePeel))); m {
	case ModePeel, ModeCount, ModeBoth:
		cfg.Mode = m
	default:
		return nil, fmt.Errorf("%w: %s=%q (want peel, count or both)", ErrInvalidConfig, EnvMode, m)
	}

	kind, err := store.ParseKind(getEnv(EnvStore, string(store.KindSet)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, EnvStore, err)
	}
	cfg.Store = kind

	workers, err := strconv.Atoi(getEnv(EnvWorkers, "1"))
	if err != nil || workers < 0 {
		return nil, fmt.Errorf("%w: %s must be a non-negative integer", ErrInvalidConfig, EnvWorkers)
	}
	cfg.Workers = workers

	cfg.Log.Level = getEnv(EnvLogLevel, "info")
	cfg.Log.Format = getEnv(EnvLogFormat, "console")

	switch p := Profile(getEnv(EnvProfile, "")); p {
	case ProfileOff, ProfileCPU, ProfileMem:
		cfg.Profile.Kind = p
	default:
		return nil, fmt.Errorf("%w: %s=%q (want cpu or mem)", ErrInvalidConfig, EnvProfile, p)
	}
	cfg.Profile.Dir = getEnv(EnvProfileDir, ".")

	return cfg, nil
}

// getEnv returns the value of key, or defaultValue when unset or empty.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
