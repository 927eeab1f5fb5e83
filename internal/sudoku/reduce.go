package sudoku

import "math/rand/v2"

// reduceToClues turns a full solution into a playable puzzle: shuffle all
// 81 coordinates, blank the first 81-clues of them, and mark every
// surviving cell as an immutable clue. No uniqueness check is performed on
// the result; the puzzle may admit more than one solution.
func reduceToClues(g *Grid, clues int, r *rand.Rand) {
	positions := make([][2]int, 0, CellCount)
	for row := range Size {
		for col := range Size {
			positions = append(positions, [2]int{row, col})
		}
	}
	r.Shuffle(len(positions), func(i, j int) {
		positions[i], positions[j] = positions[j], positions[i]
	})

	for _, pos := range positions[:CellCount-clues] {
		g[pos[0]][pos[1]] = Cell{}
	}
	for _, pos := range positions[CellCount-clues:] {
		g[pos[0]][pos[1]].IsClue = true
	}
}
