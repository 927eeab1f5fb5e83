package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/klmnkv/sudoku-server/internal/sudoku"
)

type Record struct {
	GameSessionId int64   `json:"game_session_id"`
	Username      *string `json:"username"`
	Difficulty    string  `json:"difficulty"`
	Clues         int     `json:"clues"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type RecordFilter struct {
	Username   *string
	Difficulty *sudoku.Difficulty
}

func (f RecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Difficulty != nil {
		clauses = append(clauses, "difficulty = @difficulty")
		args["difficulty"] = f.Difficulty.String()
	}
	return strings.Join(clauses, " AND "), args
}

// GetRecords lists finished, solved sessions ordered by solve time.
func (q *Queries) GetRecords(
	ctx context.Context, filter RecordFilter,
) ([]Record, error) {
	query := `
	SELECT
		game_session_id,
		username,
		difficulty,
		clues,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player using (player_id)
	WHERE
		solved = true
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Record])
}
