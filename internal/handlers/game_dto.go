package handlers

import (
	"fmt"
	"strconv"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/klmnkv/sudoku-server/internal/repository"
	"github.com/klmnkv/sudoku-server/internal/sudoku"
)

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

type NewGameDTO struct {
	Difficulty string `schema:"difficulty,required"`
}

func ParseNewGameDTO(src map[string][]string) (sudoku.Difficulty, error) {
	var dto NewGameDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return 0, err
	}
	return sudoku.ParseDifficulty(dto.Difficulty)
}

type GameMove int

const (
	MoveInsert GameMove = iota
	MoveClear
	MoveReset
)

func ParseGameMove(s string) (GameMove, error) {
	switch s {
	case "insert":
		return MoveInsert, nil
	case "clear":
		return MoveClear, nil
	case "reset":
		return MoveReset, nil
	default:
		return 0, fmt.Errorf("unknown move %q", s)
	}
}

type MoveDTO struct {
	Move  string `schema:"move,required"`
	Row   int    `schema:"row"`
	Col   int    `schema:"col"`
	Digit int    `schema:"digit"`
}

func ParseMoveDTO(src map[string][]string) (MoveDTO, error) {
	var dto MoveDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

// Apply plays the move against the game. Coordinate and digit ranges are
// validated here, at the transport boundary.
func (dto MoveDTO) Apply(game *sudoku.GameState) error {
	move, err := ParseGameMove(dto.Move)
	if err != nil {
		return err
	}

	switch move {
	case MoveReset:
		game.Reset()
	case MoveInsert:
		if !sudoku.InBounds(dto.Row, dto.Col) {
			return fmt.Errorf("cell (%d,%d) is out of bounds", dto.Row, dto.Col)
		}
		if !sudoku.ValidDigit(dto.Digit) {
			return fmt.Errorf("digit must be in 1..9, got %d", dto.Digit)
		}
		game.InsertDigit(dto.Row, dto.Col, dto.Digit)
	case MoveClear:
		if !sudoku.InBounds(dto.Row, dto.Col) {
			return fmt.Errorf("cell (%d,%d) is out of bounds", dto.Row, dto.Col)
		}
		game.ClearCell(dto.Row, dto.Col)
	}
	return nil
}

type GameSessionDTO struct {
	GameSessionId string      `json:"game_session_id"`
	Difficulty    string      `json:"difficulty"`
	Clues         int         `json:"clues"`
	Grid          sudoku.Grid `json:"grid"`
	Solved        bool        `json:"solved"`
	StartedAt     int64       `json:"started_at"`
	EndedAt       *int64      `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(session *repository.GameSession, game *sudoku.GameState) *GameSessionDTO {
	dto := &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Difficulty:    game.Difficulty.String(),
		Clues:         game.Clues,
		Grid:          game.Grid,
		Solved:        game.Solved,
		StartedAt:     startedAtMilli(session.StartedAt),
	}
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	return dto
}

func startedAtMilli(t pgtype.Timestamptz) int64 {
	if !t.Valid {
		return 0
	}
	return t.Time.UnixMilli()
}
