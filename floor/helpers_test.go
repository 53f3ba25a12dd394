package floor_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/rollfloor/coord"
	"github.com/katalvlaran/rollfloor/floor"
	"github.com/katalvlaran/rollfloor/store"
)

// repeatRows joins n copies of row with '\n'.
func repeatRows(row string, n int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// randomGrid builds a rows×cols grid where each cell is a roll with probability p.
func randomGrid(rng *rand.Rand, rows, cols int, p float64) string {
	var sb strings.Builder
	for r := 0; r < rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < cols; c++ {
			if rng.Float64() < p {
				sb.WriteByte('@')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// mustFloor parses input with opts or fails the test.
func mustFloor(t testing.TB, input string, opts ...floor.Option) *floor.Floor {
	t.Helper()
	f, err := floor.FromString(input, opts...)
	require.NoError(t, err)
	require.NotNil(t, f)
	return f
}

// forEachStore runs fn as a subtest once per store kind.
func forEachStore(t *testing.T, fn func(t *testing.T, kind store.Kind)) {
	for _, kind := range store.Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			fn(t, kind)
		})
	}
}

// refFloor is a deliberately naive model of the engine used as an oracle.
type refFloor map[coord.Coordinate]bool

func newRef(t testing.TB, input string) refFloor {
	t.Helper()
	ref := refFloor{}
	for r, line := range strings.Split(input, "\n") {
		for c, ch := range []rune(line) {
			if ch == '@' {
				ref[coord.Coordinate{Row: r, Col: c}] = true
			}
		}
	}
	return ref
}

func (ref refFloor) occupancy(c coord.Coordinate) int {
	n := 0
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			if ref[coord.Coordinate{Row: c.Row + i, Col: c.Col + j}] {
				n++
			}
		}
	}
	return n
}

func (ref refFloor) accessible() []coord.Coordinate {
	var out []coord.Coordinate
	for c := range ref {
		if ref.occupancy(c) <= floor.DefaultOccupancyLimit {
			out = append(out, c)
		}
	}
	coord.Sort(out)
	return out
}

// peelRounds returns the per-round removal counts of a batched peel.
func (ref refFloor) peelRounds() []int {
	var rounds []int
	for {
		acc := ref.accessible()
		if len(acc) == 0 {
			return rounds
		}
		for _, c := range acc {
			delete(ref, c)
		}
		rounds = append(rounds, len(acc))
	}
}

func (ref refFloor) rolls() []coord.Coordinate {
	out := make([]coord.Coordinate, 0, len(ref))
	for c := range ref {
		out = append(out, c)
	}
	coord.Sort(out)
	return out
}
