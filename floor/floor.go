package floor

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/rollfloor/coord"
	"github.com/katalvlaran/rollfloor/gridparse"
	"github.com/katalvlaran/rollfloor/store"
)

// Roll is an occupied coordinate.
type Roll = coord.Coordinate

// Floor owns the set of rolls parsed from a grid.
//
// Rolls are never added after construction; the set only shrinks as
// peeling removes accessible rolls. A Floor is not safe for concurrent use.
type Floor struct {
	rolls   store.Store
	limit   int
	workers int
	log     *zap.Logger
	onRound func(RoundStats)
}

// New parses r and returns a Floor holding every '@' cell.
//
// Returns ErrOptionViolation (wrapped) for bad options, or the parse error
// from gridparse (a *gridparse.SyntaxError or a wrapped read error). On any
// error no Floor is returned.
//
// Complexity: O(N) for N input characters.
func New(r io.Reader, opts ...Option) (*Floor, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return nil, o.err
	}

	rolls, err := store.New(o.Store, 0)
	if err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}
	if err := gridparse.Parse(r, rolls.Add); err != nil {
		return nil, fmt.Errorf("floor: %w", err)
	}

	return &Floor{
		rolls:   rolls,
		limit:   o.OccupancyLimit,
		workers: o.Workers,
		log:     o.Logger,
		onRound: o.OnRound,
	}, nil
}

// FromString is New over strings.NewReader(s).
func FromString(s string, opts ...Option) (*Floor, error) {
	return New(strings.NewReader(s), opts...)
}

// Len returns the number of rolls currently on the floor.
func (f *Floor) Len() int {
	return f.rolls.Len()
}

// Contains reports whether c holds a roll.
func (f *Floor) Contains(c coord.Coordinate) bool {
	return f.rolls.Contains(c)
}

// Rolls returns the current rolls in row-major order.
func (f *Floor) Rolls() []Roll {
	out := slices.Collect(f.rolls.All())
	coord.Sort(out)
	return out
}

// Occupancy counts the occupied cells in the 3×3 window centred on c,
// c itself included. Cells outside the parsed grid are simply absent.
// Complexity: O(1).
func (f *Floor) Occupancy(c coord.Coordinate) int {
	n := 0
	for _, d := range coord.Window {
		if f.rolls.Contains(c.Translate(d.DRow, d.DCol)) {
			n++
		}
	}
	return n
}

// IsAccessible reports whether c holds a roll whose occupancy does not
// exceed the floor's limit. Empty cells are never accessible.
func (f *Floor) IsAccessible(c coord.Coordinate) bool {
	return f.rolls.Contains(c) && f.accessible(c)
}

// accessible applies the predicate to a known roll.
func (f *Floor) accessible(c coord.Coordinate) bool {
	return f.Occupancy(c) <= f.limit
}

// CountAccessible returns how many current rolls are accessible.
// It does not modify the floor.
// Complexity: O(R) for R rolls.
func (f *Floor) CountAccessible() int {
	n := 0
	for c := range f.rolls.All() {
		if f.accessible(c) {
			n++
		}
	}
	return n
}

// AccessibleRolls returns the currently accessible rolls in row-major order.
// It does not modify the floor.
func (f *Floor) AccessibleRolls() []Roll {
	out := f.accessibleSubset(slices.Collect(f.rolls.All()))
	coord.Sort(out)
	return out
}
