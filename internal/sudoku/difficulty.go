package sudoku

import (
	"errors"
	"fmt"
	"strings"
)

// MinClues is the theoretical minimum number of clues for a uniquely
// solvable 9x9 puzzle. The reducer never goes below it, although no
// uniqueness check is performed.
const MinClues = 17

const (
	easyClues   = 36
	mediumClues = 34
	hardClues   = 32
	expertClues = 30
)

// Difficulty selects how many clues remain after reduction.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

var ErrInvalidDifficulty = errors.New("invalid difficulty")

// Clues returns the number of pre-filled cells the difficulty maps to.
func (d Difficulty) Clues() int {
	switch d {
	case Easy:
		return easyClues
	case Medium:
		return mediumClues
	case Hard:
		return hardClues
	default:
		return expertClues
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty parses a case-insensitive difficulty token. Unknown
// tokens are an error; there is no fallback default.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	case "expert":
		return Expert, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
}
