package floor

import (
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rollfloor/coord"
)

// minChunk is the smallest snapshot slice handed to one worker.
const minChunk = 256

// PeelRound runs a single batched round: every roll is judged against the
// same pre-round state, then all accessible rolls are removed together.
// Returns the number of rolls removed.
//
// Removing one roll never changes another roll's verdict within the same
// round; an eager remove-as-you-go loop would give different answers.
func (f *Floor) PeelRound() int {
	snapshot := slices.Collect(f.rolls.All())
	accessible := f.accessibleSubset(snapshot)

	return f.rolls.RemoveAll(accessible)
}

// PeelToExhaustion repeats PeelRound until a round removes nothing and
// returns the total number of rolls removed.
//
// The floor need not end empty: rolls that keep more than the occupancy
// limit around them form a fixpoint and stay. Calling PeelToExhaustion
// again on an exhausted floor returns 0 and changes nothing.
//
// Complexity: O(k·R) for k rounds over at most R rolls each.
func (f *Floor) PeelToExhaustion() int {
	total := 0
	round := 0
	for {
		removed := f.PeelRound()
		if removed == 0 {
			break
		}
		round++
		total += removed

		stats := RoundStats{Round: round, Removed: removed, Remaining: f.rolls.Len()}
		f.log.Debug("peel round",
			zap.Int("round", stats.Round),
			zap.Int("removed", stats.Removed),
			zap.Int("remaining", stats.Remaining),
		)
		f.onRound(stats)
	}
	f.log.Debug("peel finished",
		zap.Int("rounds", round),
		zap.Int("removed", total),
		zap.Int("remaining", f.rolls.Len()),
	)

	return total
}

// accessibleSubset filters snapshot down to accessible rolls. The store
// is read-only for the duration of the call, so chunks can be evaluated
// concurrently; each worker writes only its own result slot.
func (f *Floor) accessibleSubset(snapshot []coord.Coordinate) []coord.Coordinate {
	workers := f.workers
	if most := len(snapshot) / minChunk; workers > most {
		workers = most
	}
	if workers <= 1 {
		return f.filterAccessible(snapshot)
	}

	chunk := (len(snapshot) + workers - 1) / workers
	parts := make([][]coord.Coordinate, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, len(snapshot))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			parts[w] = f.filterAccessible(snapshot[lo:hi])
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	return slices.Concat(parts...)
}

func (f *Floor) filterAccessible(cs []coord.Coordinate) []coord.Coordinate {
	var out []coord.Coordinate
	for _, c := range cs {
		if f.accessible(c) {
			out = append(out, c)
		}
	}
	return out
}
