package store

import (
	"iter"

	"github.com/katalvlaran/rollfloor/coord"
)

// PackedStore keys a map by a single uint64 holding the row in the high
// 32 bits and the column in the low 32 bits.
//
// Rows and columns must fit in an int32. Negative values round-trip, so
// membership probes just outside the grid (row or column -1) are exact.
type PackedStore struct {
	m map[uint64]struct{}
}

// NewPackedStore returns an empty PackedStore sized for sizeHint entries.
func NewPackedStore(sizeHint int) *PackedStore {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &PackedStore{m: make(map[uint64]struct{}, sizeHint)}
}

func pack(c coord.Coordinate) uint64 {
	return uint64(uint32(int32(c.Row)))<<32 | uint64(uint32(int32(c.Col)))
}

func unpack(k uint64) coord.Coordinate {
	return coord.Coordinate{
		Row: int(int32(uint32(k >> 32))),
		Col: int(int32(uint32(k))),
	}
}

// Add inserts c.
func (s *PackedStore) Add(c coord.Coordinate) {
	s.m[pack(c)] = struct{}{}
}

// Contains reports whether c is present. Complexity: O(1) average.
func (s *PackedStore) Contains(c coord.Coordinate) bool {
	_, ok := s.m[pack(c)]
	return ok
}

// RemoveAll deletes every coordinate in cs and returns how many were present.
func (s *PackedStore) RemoveAll(cs []coord.Coordinate) int {
	removed := 0
	for _, c := range cs {
		k := pack(c)
		if _, ok := s.m[k]; ok {
			delete(s.m, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored coordinates.
func (s *PackedStore) Len() int {
	return len(s.m)
}

// All yields every stored coordinate.
func (s *PackedStore) All() iter.Seq[coord.Coordinate] {
	return func(yield func(coord.Coordinate) bool) {
		for k := range s.m {
			if !yield(unpack(k)) {
				return
			}
		}
	}
}
