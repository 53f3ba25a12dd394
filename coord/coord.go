// Package coord defines the grid coordinate value type shared by the
// parser, the occupied-cell stores and the peeling engine.
//
// A Coordinate is a comparable (Row, Col) pair and can be used directly
// as a map key. Equality is structural: two coordinates are equal iff
// both components match.
package coord

import (
	"cmp"
	"fmt"
	"slices"
)

// Coordinate identifies a single grid cell by zero-based row and column.
type Coordinate struct {
	Row int
	Col int
}

// Translate returns the coordinate shifted by (dr, dc).
// Complexity: O(1).
func (c Coordinate) Translate(dr, dc int) Coordinate {
	return Coordinate{Row: c.Row + dr, Col: c.Col + dc}
}

// String formats the coordinate as "(r, c)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Compare orders coordinates row-major: by Row, then by Col.
// It returns -1, 0 or +1 and is suitable for slices.SortFunc.
func Compare(a, b Coordinate) int {
	if r := cmp.Compare(a.Row, b.Row); r != 0 {
		return r
	}
	return cmp.Compare(a.Col, b.Col)
}

// Sort orders cs in place, row-major.
// Complexity: O(n log n).
func Sort(cs []Coordinate) {
	slices.SortFunc(cs, Compare)
}
