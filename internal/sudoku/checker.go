package sudoku

// IsInRow reports whether any cell in the row currently holds digit.
func IsInRow(g *Grid, row int, digit uint8) bool {
	for col := range Size {
		if g[row][col].Value == digit {
			return true
		}
	}
	return false
}

// IsInCol reports whether any cell in the column currently holds digit.
func IsInCol(g *Grid, col int, digit uint8) bool {
	for row := range Size {
		if g[row][col].Value == digit {
			return true
		}
	}
	return false
}

// isInSubgrid reports whether digit occurs in the 3x3 box anchored at
// (startRow, startCol). Both anchors must be block-aligned, i.e. computed
// as row - row%3 and col - col%3.
func isInSubgrid(g *Grid, startRow, startCol int, digit uint8) bool {
	for i := range SubgridSize {
		for j := range SubgridSize {
			if g[startRow+i][startCol+j].Value == digit {
				return true
			}
		}
	}
	return false
}

// isSafe reports whether placing digit at (row, col) would leave the grid
// free of row, column and subgrid duplicates. It does not check whether the
// target cell is occupied; that is up to the caller.
func isSafe(g *Grid, row, col int, digit uint8) bool {
	return !IsInRow(g, row, digit) &&
		!IsInCol(g, col, digit) &&
		!isInSubgrid(g, row-row%SubgridSize, col-col%SubgridSize, digit)
}

// validateGrid reports whether every row, column and subgrid contains each
// non-zero digit at most once. Empty cells never count as duplicates. This
// is the sole authority for rule consistency, used both to accept a freshly
// generated solution and to decide a winning state.
func validateGrid(g *Grid) bool {
	for row := range Size {
		var seen [Size + 1]bool
		for col := range Size {
			if dup := markSeen(&seen, g[row][col].Value); dup {
				return false
			}
		}
	}

	for col := range Size {
		var seen [Size + 1]bool
		for row := range Size {
			if dup := markSeen(&seen, g[row][col].Value); dup {
				return false
			}
		}
	}

	for startRow := 0; startRow < Size; startRow += SubgridSize {
		for startCol := 0; startCol < Size; startCol += SubgridSize {
			var seen [Size + 1]bool
			for i := range SubgridSize {
				for j := range SubgridSize {
					if dup := markSeen(&seen, g[startRow+i][startCol+j].Value); dup {
						return false
					}
				}
			}
		}
	}

	return true
}

func markSeen(seen *[Size + 1]bool, v uint8) (duplicate bool) {
	if v == 0 {
		return false
	}
	if seen[v] {
		return true
	}
	seen[v] = true
	return false
}
