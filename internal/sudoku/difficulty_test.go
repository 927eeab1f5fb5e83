package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		token string
		want  Difficulty
	}{
		{"easy", Easy},
		{"medium", Medium},
		{"hard", Hard},
		{"expert", Expert},
		{"EASY", Easy},
		{"Medium", Medium},
		{"hArD", Hard},
	}

	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			got, err := ParseDifficulty(test.token)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestParseDifficultyRejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"", "impossible", "easy ", "42"} {
		_, err := ParseDifficulty(token)
		assert.ErrorIs(t, err, ErrInvalidDifficulty, "token %q", token)
	}
}

func TestDifficultyClueCountsAreConstructible(t *testing.T) {
	for _, d := range []Difficulty{Easy, Medium, Hard, Expert} {
		assert.GreaterOrEqual(t, d.Clues(), MinClues)
		assert.LessOrEqual(t, d.Clues(), CellCount)
	}
}
