package sudoku

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countCells(g *Grid, pred func(Cell) bool) int {
	n := 0
	for row := range Size {
		for col := range Size {
			if pred(g[row][col]) {
				n++
			}
		}
	}
	return n
}

func TestNewGameClueCounts(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		clues      int
	}{
		{Easy, 36},
		{Medium, 34},
		{Hard, 32},
		{Expert, 30},
	}

	for _, test := range tests {
		t.Run(test.difficulty.String(), func(t *testing.T) {
			game := NewGame(test.difficulty, rand.New(rand.NewPCG(1, 2)))

			assert.Equal(t, test.clues, game.Clues)
			assert.Equal(t, test.clues, countCells(&game.Grid, func(c Cell) bool {
				return c.Value != 0
			}))
			assert.Equal(t, test.clues, countCells(&game.Grid, func(c Cell) bool {
				return c.IsClue
			}))
			assert.Equal(t, CellCount-test.clues, countCells(&game.Grid, func(c Cell) bool {
				return c.Value == 0 && !c.IsClue
			}))
			assert.False(t, game.Solved)
		})
	}
}

func TestNewGameIsValidAfterConstruction(t *testing.T) {
	game := NewGame(Medium, rand.New(rand.NewPCG(3, 4)))
	assert.True(t, game.Validate())
}

func TestClueCellsAreImmutable(t *testing.T) {
	game := NewGame(Easy, rand.New(rand.NewPCG(5, 6)))

	for row := range Size {
		for col := range Size {
			cell := game.Grid[row][col]
			if !cell.IsClue {
				continue
			}

			game.InsertDigit(row, col, int(cell.Value%9)+1)
			assert.Equal(t, cell, game.Grid[row][col], "insert must not touch clue (%d,%d)", row, col)

			game.ClearCell(row, col)
			assert.Equal(t, cell, game.Grid[row][col], "clear must not touch clue (%d,%d)", row, col)
		}
	}
}

func TestFirstFillWins(t *testing.T) {
	var game GameState
	game.Grid[0][0] = Cell{Value: 5, IsClue: true}

	game.InsertDigit(4, 4, 7)
	require.Equal(t, uint8(7), game.Grid[4][4].Value)

	// occupied cell ignores further inserts until cleared
	game.InsertDigit(4, 4, 2)
	assert.Equal(t, uint8(7), game.Grid[4][4].Value)

	game.ClearCell(4, 4)
	require.Zero(t, game.Grid[4][4].Value)

	game.InsertDigit(4, 4, 2)
	assert.Equal(t, uint8(2), game.Grid[4][4].Value)
}

func TestInsertIgnoresOutOfRangeInput(t *testing.T) {
	var game GameState

	game.InsertDigit(-1, 0, 5)
	game.InsertDigit(0, 9, 5)
	game.InsertDigit(0, 0, 0)
	game.InsertDigit(0, 0, 10)

	assert.Equal(t, GameState{}, game)
}

// Re-running the generator with an identically seeded source reproduces the
// puzzle's full solution, which lets the test play a perfect game.
func solutionFor(seed1, seed2 uint64) Grid {
	var solution Grid
	fillGrid(&solution, rand.New(rand.NewPCG(seed1, seed2)))
	return solution
}

func TestSolvedTransition(t *testing.T) {
	game := NewGame(Expert, rand.New(rand.NewPCG(7, 42)))
	solution := solutionFor(7, 42)

	for row := range Size {
		for col := range Size {
			if game.Grid[row][col].Value != 0 {
				continue
			}
			require.False(t, game.Solved, "must stay unsolved until the last cell")
			game.InsertDigit(row, col, int(solution[row][col].Value))
			require.Equal(t, solution[row][col].Value, game.Grid[row][col].Value)
			require.False(t, game.Grid[row][col].PossibleWrong)
		}
	}

	assert.True(t, game.Solved)
	assert.True(t, game.Validate())
}

func TestClearUnsolves(t *testing.T) {
	game := NewGame(Expert, rand.New(rand.NewPCG(7, 42)))
	solution := solutionFor(7, 42)

	for row := range Size {
		for col := range Size {
			if game.Grid[row][col].Value == 0 {
				game.InsertDigit(row, col, int(solution[row][col].Value))
			}
		}
	}
	require.True(t, game.Solved)

	for row := range Size {
		for col := range Size {
			if !game.Grid[row][col].IsClue {
				game.ClearCell(row, col)
				assert.False(t, game.Solved)
				return
			}
		}
	}
}

func TestPossibleWrongIsSetAtInsertTime(t *testing.T) {
	var game GameState
	game.Grid[0][0] = Cell{Value: 5, IsClue: true}

	// inserting onto a clue is a no-op
	game.InsertDigit(0, 0, 5)
	assert.Equal(t, Cell{Value: 5, IsClue: true}, game.Grid[0][0])

	// 5 is already in the row: accepted but flagged
	game.InsertDigit(0, 1, 5)
	assert.Equal(t, uint8(5), game.Grid[0][1].Value)
	assert.True(t, game.Grid[0][1].PossibleWrong)
	assert.True(t, IsInRow(&game.Grid, 0, 5))

	game.ClearCell(0, 1)
	assert.Zero(t, game.Grid[0][1].Value)
	assert.False(t, game.Grid[0][1].PossibleWrong)
	assert.True(t, IsInRow(&game.Grid, 0, 5), "clue still holds the 5")
}

func TestReset(t *testing.T) {
	game := NewGame(Hard, rand.New(rand.NewPCG(9, 10)))
	before := game.Grid

	game.InsertDigit(firstFree(&game.Grid))
	game.Reset()

	assert.False(t, game.Solved)
	for row := range Size {
		for col := range Size {
			if before[row][col].IsClue {
				assert.Equal(t, before[row][col], game.Grid[row][col])
			} else {
				assert.Equal(t, Cell{}, game.Grid[row][col])
			}
		}
	}
}

func firstFree(g *Grid) (row, col, digit int) {
	for row := range Size {
		for col := range Size {
			if g[row][col].Value == 0 {
				return row, col, 1
			}
		}
	}
	return 0, 0, 1
}

func TestGameStateRoundTripsThroughGob(t *testing.T) {
	game := NewGame(Medium, rand.New(rand.NewPCG(11, 12)))
	game.InsertDigit(firstFree(&game.Grid))

	b, err := game.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeGameState(b)
	require.NoError(t, err)
	assert.Equal(t, game, decoded)
}
