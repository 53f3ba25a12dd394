package store

import (
	"iter"

	"github.com/katalvlaran/rollfloor/coord"
)

// SetStore is a hash set keyed by coord.Coordinate.
type SetStore struct {
	m map[coord.Coordinate]struct{}
}

// NewSetStore returns an empty SetStore sized for sizeHint entries.
func NewSetStore(sizeHint int) *SetStore {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &SetStore{m: make(map[coord.Coordinate]struct{}, sizeHint)}
}

// Add inserts c.
func (s *SetStore) Add(c coord.Coordinate) {
	s.m[c] = struct{}{}
}

// Contains reports whether c is present. Complexity: O(1) average.
func (s *SetStore) Contains(c coord.Coordinate) bool {
	_, ok := s.m[c]
	return ok
}

// RemoveAll deletes every coordinate in cs and returns how many were present.
func (s *SetStore) RemoveAll(cs []coord.Coordinate) int {
	removed := 0
	for _, c := range cs {
		if _, ok := s.m[c]; ok {
			delete(s.m, c)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored coordinates.
func (s *SetStore) Len() int {
	return len(s.m)
}

// All yields every stored coordinate.
func (s *SetStore) All() iter.Seq[coord.Coordinate] {
	return func(yield func(coord.Coordinate) bool) {
		for c := range s.m {
			if !yield(c) {
				return
			}
		}
	}
}
