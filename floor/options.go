package floor

import (
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/rollfloor/coord"
	"github.com/katalvlaran/rollfloor/store"
)

// DefaultOccupancyLimit is the largest 3×3 occupancy (the roll itself
// included) at which a roll is still accessible.
const DefaultOccupancyLimit = 4

// ErrOptionViolation is returned by New when an invalid Option is supplied.
var ErrOptionViolation = errors.New("floor: invalid option supplied")

// Option configures a Floor via functional arguments.
// If an Option is invalid it is recorded and surfaced as
// ErrOptionViolation when New is invoked.
type Option func(*Options)

// RoundStats describes one peeling round that removed at least one roll.
type RoundStats struct {
	// Round is 1-based within a single PeelToExhaustion call.
	Round int
	// Removed is the number of rolls removed by this round.
	Removed int
	// Remaining is the number of rolls left after this round.
	Remaining int
}

// Options holds construction-time settings for a Floor.
type Options struct {
	// Store selects the backing store implementation.
	Store store.Kind

	// OccupancyLimit is the accessibility threshold, 0..9.
	OccupancyLimit int

	// Workers is the number of goroutines used to evaluate accessibility
	// during a peeling round. 1 means sequential.
	Workers int

	// Logger receives Debug records for every peeling round.
	Logger *zap.Logger

	// OnRound is called by PeelToExhaustion after every round that removed rolls.
	OnRound func(RoundStats)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - the canonical set store
//   - OccupancyLimit = DefaultOccupancyLimit
//   - sequential evaluation (Workers = 1)
//   - a no-op logger and no round hook
func DefaultOptions() Options {
	return Options{
		Store:          store.KindSet,
		OccupancyLimit: DefaultOccupancyLimit,
		Workers:        1,
		Logger:         zap.NewNop(),
		OnRound:        func(RoundStats) {},
	}
}

// WithStore selects the backing store kind.
func WithStore(kind store.Kind) Option {
	return func(o *Options) {
		if _, err := store.ParseKind(string(kind)); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Store = kind
	}
}

// WithOccupancyLimit sets the accessibility threshold.
//
//	0 <= n <= len(coord.Window): accepted
//	otherwise: ErrOptionViolation
func WithOccupancyLimit(n int) Option {
	return func(o *Options) {
		if n < 0 || n > len(coord.Window) {
			o.err = fmt.Errorf("%w: occupancy limit must be in [0,%d] (got %d)", ErrOptionViolation, len(coord.Window), n)
			return
		}
		o.OccupancyLimit = n
	}
}

// WithWorkers sets how many goroutines evaluate a peeling round.
//
//	n > 0: use n workers
//	n == 0: use runtime.GOMAXPROCS(0)
//	n < 0: ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithLogger routes round-level Debug logs to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnRound registers a callback for every round that removed rolls.
func WithOnRound(fn func(RoundStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}
