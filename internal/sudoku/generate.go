package sudoku

import "math/rand/v2"

// fillGrid completes the grid into a full rule-valid solution by randomized
// recursive backtracking: find the first empty cell in row-major order, try
// the digits 1-9 in a freshly shuffled order, recurse, and undo the
// placement when the recursion fails. The shuffle is what makes every run
// produce a different solution. Returns false only when some prefix of the
// grid admits no completion; from an empty grid it always succeeds.
//
// The undo on the failure path is load-bearing: a cell left filled after a
// failed branch corrupts every later candidate check.
func fillGrid(g *Grid, r *rand.Rand) bool {
	row, col, ok := firstEmpty(g)
	if !ok {
		return true
	}

	digits := [Size]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	r.Shuffle(Size, func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})

	for _, d := range digits {
		if !isSafe(g, row, col, d) {
			continue
		}
		g[row][col].Value = d
		if fillGrid(g, r) {
			return true
		}
		g[row][col].Value = 0
	}

	return false
}

func firstEmpty(g *Grid) (row, col int, ok bool) {
	for row := range Size {
		for col := range Size {
			if g[row][col].Value == 0 {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}
