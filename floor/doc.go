// Package floor implements the roll-peeling engine: a sparse grid of
// occupied cells ("rolls") that can be queried for accessible rolls and
// peeled in batched rounds until nothing more can be removed.
//
// What:
//
//   - New parses '.'/'@' text into a Floor backed by a store.Store.
//   - A roll is accessible when its 3×3 window (itself included) holds at
//     most OccupancyLimit rolls (default 4). There is no bounds object;
//     cells outside the grid are absent, so edge and corner rolls see fewer
//     neighbours.
//   - CountAccessible is read-only.
//   - PeelToExhaustion removes every accessible roll per round, all at once,
//     and repeats until a round removes nothing. The floor may keep a
//     non-empty fixpoint.
//   - Components and String describe what is left.
//
// Determinism:
//
//	Every round is judged against the pre-round state, so results do not
//	depend on store iteration order or on the number of workers.
//
// Complexity (R = rolls, k = rounds):
//
//   - New:              O(N) for N input characters.
//   - CountAccessible:  O(R).
//   - PeelToExhaustion: O(k·R).
//   - Components:       O(R·d), d = 4 or 8.
//
// Options:
//
//   - WithStore(kind): backing store (store.KindSet, store.KindPacked).
//   - WithOccupancyLimit(n): accessibility threshold, 0..9.
//   - WithWorkers(n): parallel evaluation of each round (0 = GOMAXPROCS).
//   - WithLogger(l): zap logger for round-level Debug records.
//   - WithOnRound(fn): callback after every round that removed rolls.
//
// Errors:
//
//   - gridparse.ErrUnexpectedChar (*gridparse.SyntaxError): bad input character.
//   - ErrOptionViolation: invalid option value.
//
// Usage:
//
//	f, err := floor.FromString("@@@\n@.@\n@@@")
//	if err != nil {
//		// errors.As(err, new(*gridparse.SyntaxError))
//	}
//	f.CountAccessible()  // 4
//	f.PeelToExhaustion() // 8
package floor
