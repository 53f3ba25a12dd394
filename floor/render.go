package floor

import (
	"strings"

	"github.com/katalvlaran/rollfloor/gridparse"
)

// String renders the current rolls as grid text over the bounding box
// rows 0..maxRow and columns 0..maxCol, rows joined by '\n'. An empty
// floor renders as "". Parsing the result yields the same roll set.
func (f *Floor) String() string {
	rolls := f.Rolls()
	if len(rolls) == 0 {
		return ""
	}
	maxRow, maxCol := 0, 0
	for _, c := range rolls {
		maxRow = max(maxRow, c.Row)
		maxCol = max(maxCol, c.Col)
	}

	var sb strings.Builder
	sb.Grow((maxRow + 1) * (maxCol + 2))
	i := 0
	for r := 0; r <= maxRow; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c <= maxCol; c++ {
			if i < len(rolls) && rolls[i].Row == r && rolls[i].Col == c {
				sb.WriteByte(gridparse.RollCell)
				i++
				continue
			}
			sb.WriteByte(gridparse.EmptyCell)
		}
	}

	return sb.String()
}
