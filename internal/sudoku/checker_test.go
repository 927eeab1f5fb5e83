package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSafeRowConflict(t *testing.T) {
	var g Grid
	g[0][0].Value = 1
	g[0][1].Value = 2

	assert.False(t, isSafe(&g, 0, 2, 1))
	assert.True(t, isSafe(&g, 0, 2, 3))
}

func TestIsSafeColumnConflict(t *testing.T) {
	var g Grid
	g[0][0].Value = 1
	g[1][0].Value = 2

	assert.False(t, isSafe(&g, 2, 0, 1))
	assert.True(t, isSafe(&g, 2, 0, 3))
}

func TestIsSafeSubgridConflict(t *testing.T) {
	var g Grid
	g[0][0].Value = 1
	g[1][1].Value = 2

	// (2, 2) shares only the top-left box with the placed digits
	assert.False(t, isSafe(&g, 2, 2, 1))
	assert.False(t, isSafe(&g, 2, 2, 2))
	assert.True(t, isSafe(&g, 2, 2, 3))
}

func TestIsSafeEmptyGrid(t *testing.T) {
	var g Grid
	assert.True(t, isSafe(&g, 4, 4, 5))
}

func TestIsInRowAndCol(t *testing.T) {
	var g Grid
	g[3][7].Value = 6

	assert.True(t, IsInRow(&g, 3, 6))
	assert.False(t, IsInRow(&g, 4, 6))
	assert.True(t, IsInCol(&g, 7, 6))
	assert.False(t, IsInCol(&g, 6, 6))
}

func TestValidateGrid(t *testing.T) {
	var g Grid
	assert.True(t, validateGrid(&g), "empty grid has no duplicates")

	g[0][0].Value = 5
	g[0][8].Value = 5
	assert.False(t, validateGrid(&g), "row duplicate")

	g[0][8].Value = 0
	g[8][0].Value = 5
	assert.False(t, validateGrid(&g), "column duplicate")

	g[8][0].Value = 0
	g[2][2].Value = 5
	assert.False(t, validateGrid(&g), "subgrid duplicate")

	g[2][2].Value = 0
	g[1][1].Value = 3
	assert.True(t, validateGrid(&g), "distinct digits are fine")
}
