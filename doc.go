// Package rollfloor evaluates sparse grids of paper rolls: which rolls are
// reachable by a forklift, and how many can be taken away by repeatedly
// removing every reachable roll at once.
//
// 🚀 What is rollfloor?
//
//	A small, dependency-light engine built around a sparse set of occupied cells:
//		• Parsing: '@' is a roll, '.' is empty, ragged rows welcome
//		• Queries: occupancy of a 3×3 window, accessibility, accessible count
//		• Peeling: batched rounds against a frozen snapshot, until a fixpoint
//		• Clusters: 4- or 8-connected components of whatever remains
//
// ✨ Why rollfloor?
//
//   - Sparse: only rolls are stored, so a mostly empty floor costs little
//   - Swappable storage: a plain coordinate set or a packed 64-bit key set
//   - Deterministic: every result is independent of map iteration order
//   - Observable: zap logging and an OnRound hook report each peel round
//
// Layout:
//
//	coord/      Coordinate, Offset, the 3×3 window and 4/8 connectivity
//	store/      the Store interface with set and packed implementations
//	gridparse/  streaming grid reader with positioned syntax errors
//	floor/      the Floor type: queries, peeling, components, rendering
//	cmd/        the rollfloor binary (stdin in, integers out)
//
// Quick ASCII example (a roll is accessible when its window holds at most
// four rolls, itself included):
//
//	@@@      A@A
//	@@@  →   @@@   A = accessible, 4 of 9
//	@@@      A@A
//
// Peeling that 3×3 block removes 4, then 4, then 1: nine rolls in three rounds.
//
//	go get github.com/katalvlaran/rollfloor/floor
package rollfloor
