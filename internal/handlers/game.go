package handlers

import (
	"errors"
	"math/rand/v2"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/klmnkv/sudoku-server/internal/config"
	"github.com/klmnkv/sudoku-server/internal/middleware"
	"github.com/klmnkv/sudoku-server/internal/repository"
	"github.com/klmnkv/sudoku-server/internal/sudoku"
)

type GameHandler struct {
	log  *logrus.Logger
	repo *repository.Queries
	ws   *config.WebSocket
	rnd  *rand.Rand
}

func NewGameHandler(
	log *logrus.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		log:  log,
		repo: repository.New(db),
		ws:   ws,
		rnd:  rnd,
	}
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	difficulty, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	game := sudoku.NewGame(difficulty, g.rnd)

	var params repository.CreateGameSessionParams
	if claims, loggedIn := middleware.PlayerClaims(r.Context()); loggedIn {
		g.log.WithField("player_id", claims.PlayerId).Debug("creating player session")
		params.PlayerId = &claims.PlayerId
	} else {
		g.log.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to create game session")
		return
	}

	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

func (g *GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *sudoku.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to fetch session from db")
		return nil, nil, false
	}

	game, err := sudoku.DecodeGameState(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("db returned invalid game_session.state")
		return nil, nil, false
	}

	return session, game, true
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

func (g *GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseMoveDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if err := dto.Apply(game); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.log, wrapError(err))
		return
	}

	session, err = g.repo.SaveGame(r.Context(), session, game)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to update session in db")
		return
	}

	sendJSONOrLog(w, g.log, NewGameSessionDTO(session, game))
}

// Validate reports rule consistency of the live grid without mutating it.
func (g *GameHandler) Validate(w http.ResponseWriter, r *http.Request) {
	_, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.log, map[string]bool{
		"valid":  game.Validate(),
		"solved": game.Solved,
	})
}
