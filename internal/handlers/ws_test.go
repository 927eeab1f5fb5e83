package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klmnkv/sudoku-server/internal/sudoku"
)

func TestExecuteCommand(t *testing.T) {
	var game sudoku.GameState

	require.NoError(t, executeCommand(&game, "i 4 4 7"))
	assert.Equal(t, uint8(7), game.Grid[4][4].Value)

	require.NoError(t, executeCommand(&game, "c 4 4"))
	assert.Zero(t, game.Grid[4][4].Value)

	require.NoError(t, executeCommand(&game, "i 0 0 1"))
	require.NoError(t, executeCommand(&game, "r"))
	assert.Zero(t, game.Grid[0][0].Value)

	assert.NoError(t, executeCommand(&game, "g"))
}

func TestExecuteCommandRejectsBadInput(t *testing.T) {
	var game sudoku.GameState

	tests := []struct {
		name    string
		command string
	}{
		{"unknown command", "x 1 2"},
		{"too few args", "i 1 2"},
		{"too many args", "r 1"},
		{"non-numeric row", "c one 2"},
		{"out of bounds", "i 9 0 5"},
		{"digit out of range", "i 0 0 0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Error(t, executeCommand(&game, test.command))
		})
	}
}
