package handlers

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/klmnkv/sudoku-server/internal/repository"
	"github.com/klmnkv/sudoku-server/internal/sudoku"
)

type Records struct {
	log  *logrus.Logger
	repo *repository.Queries
}

func NewRecords(log *logrus.Logger, db *pgxpool.Pool) *Records {
	return &Records{log: log, repo: repository.New(db)}
}

func (h *Records) Fetch(w http.ResponseWriter, r *http.Request) {
	var filter repository.RecordFilter

	query := r.URL.Query()
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if token := query.Get("difficulty"); token != "" {
		difficulty, err := sudoku.ParseDifficulty(token)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, h.log, wrapError(err))
			return
		}
		filter.Difficulty = &difficulty
	}

	records, err := h.repo.GetRecords(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.log.WithError(err).Error("unable to fetch records")
		return
	}

	sendJSONOrLog(w, h.log, records)
}
