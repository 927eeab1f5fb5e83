package sudoku

import (
	"fmt"
	"strings"
)

const (
	// Size is the side length of the board.
	Size = 9
	// SubgridSize is the side length of one of the nine boxes.
	SubgridSize = 3
	// CellCount is the total number of cells on the board.
	CellCount = Size * Size
)

// Cell is a single square on the board. Value 0 means empty. IsClue marks
// cells placed at puzzle creation; they are immutable for the rest of the
// game. PossibleWrong is a soft hint set once at insert time when the
// entered digit conflicted with the grid as it stood at that moment; it is
// never recomputed when neighbouring cells change.
type Cell struct {
	Value         uint8 `json:"value"`
	IsClue        bool  `json:"is_clue"`
	PossibleWrong bool  `json:"possible_wrong,omitempty"`
}

// Grid is a fixed 9x9 board, row-major. It is a value type: assigning or
// returning a Grid yields an independent snapshot.
type Grid [Size][Size]Cell

func (g Grid) String() string {
	var b strings.Builder
	for row := range Size {
		for col := range Size {
			if v := g[row][col].Value; v == 0 {
				fmt.Fprint(&b, ". ")
			} else {
				fmt.Fprintf(&b, "%d ", v)
			}
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}

// InBounds reports whether (row, col) addresses a cell on the board.
func InBounds(row, col int) bool {
	return 0 <= row && row < Size && 0 <= col && col < Size
}

// ValidDigit reports whether d is a digit a player may enter.
func ValidDigit(digit int) bool {
	return 1 <= digit && digit <= 9
}
