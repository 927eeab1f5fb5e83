package sudoku

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"
)

// GameState is a single puzzle in play. It owns its grid exclusively; all
// mutation goes through the methods below, which keep the Solved flag and
// the clue-immutability invariant in sync. The exported fields exist for
// serialization; callers must not write to them directly.
type GameState struct {
	Grid       Grid
	Difficulty Difficulty
	Clues      int /* clue cells kept after reduction */
	Solved     bool
}

// NewGame generates a fresh puzzle: a randomized full solution reduced down
// to the difficulty's clue count. All randomness comes from r, so a seeded
// source reproduces the exact same puzzle.
func NewGame(difficulty Difficulty, r *rand.Rand) *GameState {
	s := &GameState{
		Difficulty: difficulty,
		Clues:      difficulty.Clues(),
	}
	fillGrid(&s.Grid, r)
	reduceToClues(&s.Grid, s.Clues, r)
	return s
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// InsertDigit writes digit into an empty, non-clue cell. Clue cells and
// already-filled cells are left untouched (clear first to overwrite). When
// the placement conflicts with the grid as it currently stands the cell is
// still written but flagged PossibleWrong. Out-of-range coordinates or
// digits are a no-op. Recomputes the Solved flag after a write.
func (s *GameState) InsertDigit(row, col, digit int) {
	if !InBounds(row, col) || !ValidDigit(digit) {
		return
	}
	cell := &s.Grid[row][col]
	if cell.IsClue || cell.Value != 0 {
		return
	}

	if !isSafe(&s.Grid, row, col, uint8(digit)) {
		cell.PossibleWrong = true
	}
	cell.Value = uint8(digit)
	s.Solved = s.checkSolved()
}

// ClearCell empties a non-clue cell and drops its mistake flag. A complete
// solution can never survive a clear, so Solved is forced off.
func (s *GameState) ClearCell(row, col int) {
	if !InBounds(row, col) {
		return
	}
	cell := &s.Grid[row][col]
	if cell.IsClue {
		return
	}

	cell.Value = 0
	cell.PossibleWrong = false
	s.Solved = false
}

// Reset blanks every non-clue cell, leaving clues untouched.
func (s *GameState) Reset() {
	for row := range Size {
		for col := range Size {
			if !s.Grid[row][col].IsClue {
				s.Grid[row][col] = Cell{}
			}
		}
	}
	s.Solved = s.checkSolved()
}

// Validate reports whether the live grid is rule-consistent: no digit
// repeats within a row, column or subgrid among the filled cells.
func (s *GameState) Validate() bool {
	return validateGrid(&s.Grid)
}

func (s *GameState) checkSolved() bool {
	for row := range Size {
		for col := range Size {
			if s.Grid[row][col].Value == 0 {
				return false
			}
		}
	}
	return s.Validate()
}
