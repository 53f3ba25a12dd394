// Package store provides the occupied-coordinate stores that back a floor.
//
// What:
//
//   - Store is the capability the peeling engine needs: insert at
//     construction, O(1) membership, batch removal, size and iteration.
//   - SetStore keys a map by Coordinate directly (canonical).
//   - PackedStore packs (row, col) into a single uint64 key.
//
// Why:
//
//	Both layouts answer the same questions; which is faster depends on the
//	key hashing cost. Keeping them behind one interface lets benchmarks
//	compare them and lets every property test run against each.
//
// Errors:
//
//   - ErrUnknownKind: New was asked for a store kind it does not know.
package store

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/rollfloor/coord"
)

// ErrUnknownKind indicates an unrecognised store kind.
var ErrUnknownKind = errors.New("store: unknown store kind")

// Store is a mutable set of coordinates.
//
// Implementations are not safe for concurrent mutation. Concurrent calls
// to Contains, Len and All are safe as long as no goroutine mutates the
// store at the same time.
type Store interface {
	// Add inserts c. Adding a present coordinate is a no-op.
	Add(c coord.Coordinate)
	// Contains reports whether c is present.
	Contains(c coord.Coordinate) bool
	// RemoveAll deletes every coordinate in cs and returns how many were present.
	RemoveAll(cs []coord.Coordinate) int
	// Len returns the number of stored coordinates.
	Len() int
	// All yields every stored coordinate in unspecified order.
	// The store must not be mutated while the sequence is being consumed.
	All() iter.Seq[coord.Coordinate]
}

// Kind names a Store implementation.
type Kind string

const (
	// KindSet selects SetStore.
	KindSet Kind = "set"
	// KindPacked selects PackedStore.
	KindPacked Kind = "packed"
)

// Kinds returns every supported kind, canonical first.
func Kinds() []Kind {
	return []Kind{KindSet, KindPacked}
}

// ParseKind converts s into a Kind. The empty string yields KindSet.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case "", KindSet:
		return KindSet, nil
	case KindPacked:
		return KindPacked, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// New returns an empty store of the given kind, pre-sized for sizeHint entries.
func New(kind Kind, sizeHint int) (Store, error) {
	switch kind {
	case KindSet:
		return NewSetStore(sizeHint), nil
	case KindPacked:
		return NewPackedStore(sizeHint), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(kind))
	}
}
