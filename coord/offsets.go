package coord

// Offset is a (dRow, dCol) displacement.
type Offset struct {
	DRow, DCol int
}

// Window is the 3×3 block centred on a cell, the cell itself included.
// It is the neighbourhood read by the accessibility predicate.
var Window = [9]Offset{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 0}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	conn4Offsets = []Offset{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	conn8Offsets = []Offset{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Offsets returns the neighbour offsets for conn, excluding the cell itself.
// Any value other than Conn8 is treated as Conn4.
// The returned slice is shared and must not be modified.
func (conn Connectivity) Offsets() []Offset {
	if conn == Conn8 {
		return conn8Offsets
	}
	return conn4Offsets
}

// String returns "conn4" or "conn8".
func (conn Connectivity) String() string {
	if conn == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Neighbors returns the neighbours of c under conn. The coordinates are
// not bounds-checked; callers test membership against their own store.
// Complexity: O(d), d = 4 or 8.
func (c Coordinate) Neighbors(conn Connectivity) []Coordinate {
	offs := conn.Offsets()
	out := make([]Coordinate, 0, len(offs))
	for _, d := range offs {
		out = append(out, c.Translate(d.DRow, d.DCol))
	}
	return out
}
