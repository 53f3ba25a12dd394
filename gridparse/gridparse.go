// Package gridparse reads line-oriented roll grids.
//
// Each input line is one grid row. Within a line every character is one
// column: '.' marks an empty cell and '@' marks an occupied cell (a roll).
// Any other character aborts parsing with a *SyntaxError naming the first
// offending character and its zero-based row and column.
//
// Rows may have different lengths and empty lines still consume a row
// index. Empty input is valid and produces no rolls.
package gridparse

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/rollfloor/coord"
)

// Cell glyphs.
const (
	EmptyCell = '.'
	RollCell  = '@'
)

// MaxLineLength is the longest line Parse accepts, in bytes.
const MaxLineLength = 16 << 20

// ErrUnexpectedChar is the sentinel behind every *SyntaxError.
var ErrUnexpectedChar = errors.New("gridparse: unexpected character")

// SyntaxError reports a character that is neither EmptyCell nor RollCell.
type SyntaxError struct {
	Char rune
	Row  int
	Col  int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("gridparse: unexpected character %q at row %d, column %d", e.Char, e.Row, e.Col)
}

// Unwrap returns ErrUnexpectedChar.
func (e *SyntaxError) Unwrap() error { return ErrUnexpectedChar }

// Parse scans r line by line and calls visit for every roll, in reading
// order. On the first unrecognised character it stops and returns a
// *SyntaxError; rolls visited before that point must be discarded by the
// caller. Read failures are returned wrapped.
//
// Complexity: O(N) time for N input characters, O(longest line) memory.
func Parse(r io.Reader, visit func(coord.Coordinate)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	row := 0
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		col := 0
		for _, ch := range line {
			switch ch {
			case EmptyCell:
			case RollCell:
				visit(coord.Coordinate{Row: row, Col: col})
			default:
				return &SyntaxError{Char: ch, Row: row, Col: col}
			}
			col++
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("gridparse: read input: %w", err)
	}

	return nil
}

// Rolls parses r and returns every roll in reading (row-major) order.
// On error it returns nil and the error.
func Rolls(r io.Reader) ([]coord.Coordinate, error) {
	var out []coord.Coordinate
	err := Parse(r, func(c coord.Coordinate) {
		out = append(out, c)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
