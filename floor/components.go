package floor

import (
	"slices"

	"github.com/katalvlaran/rollfloor/coord"
)

// Components groups the current rolls into connected clusters under conn.
// Each cluster is sorted row-major and clusters are ordered by their first
// roll, so the result is deterministic regardless of the backing store.
//
// Typical use is describing what is left at a non-empty fixpoint.
//
// Time:   O(R·d), where d = 4 or 8.
// Memory: O(R) for visited flags and output.
func (f *Floor) Components(conn coord.Connectivity) [][]Roll {
	rolls := f.Rolls()
	seen := make(map[coord.Coordinate]bool, len(rolls))
	var comps [][]Roll

	for _, start := range rolls {
		if seen[start] {
			continue
		}
		// BFS to collect component
		queue := []coord.Coordinate{start}
		seen[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range queue[qi].Neighbors(conn) {
				if seen[v] || !f.rolls.Contains(v) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		coord.Sort(queue)
		comps = append(comps, slices.Clip(queue))
	}

	return comps
}
