package sudoku

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillGridProducesFullValidSolution(t *testing.T) {
	var g Grid
	r := rand.New(rand.NewPCG(1, 2))

	require.True(t, fillGrid(&g, r))

	for row := range Size {
		for col := range Size {
			assert.NotZero(t, g[row][col].Value, "cell (%d,%d) left empty", row, col)
		}
	}
	assert.True(t, validateGrid(&g))
}

func TestFillGridIsDeterministicForSeed(t *testing.T) {
	var a, b Grid
	fillGrid(&a, rand.New(rand.NewPCG(7, 42)))
	fillGrid(&b, rand.New(rand.NewPCG(7, 42)))
	assert.Equal(t, a, b)
}

func TestFillGridRespectsExistingDigits(t *testing.T) {
	var g Grid
	g[0][0].Value = 5
	g[4][4].Value = 1

	require.True(t, fillGrid(&g, rand.New(rand.NewPCG(3, 4))))

	assert.Equal(t, uint8(5), g[0][0].Value)
	assert.Equal(t, uint8(1), g[4][4].Value)
	assert.True(t, validateGrid(&g))
}

func TestFillGridFailsOnContradiction(t *testing.T) {
	// first empty cell is (0,8); its row blocks 1-8 and its column blocks
	// 9, so no candidate fits and the search must report failure without
	// touching the rest of the grid
	var g Grid
	for col := range 8 {
		g[0][col].Value = uint8(col + 1)
	}
	g[8][8].Value = 9

	require.False(t, fillGrid(&g, rand.New(rand.NewPCG(5, 6))))

	for row := 1; row < Size; row++ {
		for col := range Size {
			if row == 8 && col == 8 {
				continue
			}
			assert.Zero(t, g[row][col].Value, "backtracking must undo cell (%d,%d)", row, col)
		}
	}
}
