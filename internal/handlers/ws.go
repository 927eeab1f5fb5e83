package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/klmnkv/sudoku-server/internal/repository"
	"github.com/klmnkv/sudoku-server/internal/sudoku"
)

// Single-letter wire commands for live play, one or more per text message,
// newline-separated:
//
//	g            fetch current state
//	i ROW COL D  insert digit D at (ROW, COL)
//	c ROW COL    clear (ROW, COL)
//	r            reset non-clue cells
var commandNargs = map[string]int{
	"g": 0,
	"i": 3,
	"c": 2,
	"r": 0,
}

func parseRowCol(args []string) (row, col int, err error) {
	if row, err = strconv.Atoi(args[0]); err != nil {
		return 0, 0, fmt.Errorf("row must be an int")
	}
	if col, err = strconv.Atoi(args[1]); err != nil {
		return 0, 0, fmt.Errorf("col must be an int")
	}
	if !sudoku.InBounds(row, col) {
		return 0, 0, fmt.Errorf("cell (%d,%d) is out of bounds", row, col)
	}
	return row, col, nil
}

func executeCommand(game *sudoku.GameState, command string) error {
	parts := strings.Split(command, " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "i":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		digit, err := strconv.Atoi(parts[3])
		if err != nil {
			return fmt.Errorf("digit must be an int")
		}
		if !sudoku.ValidDigit(digit) {
			return fmt.Errorf("digit must be in 1..9, got %d", digit)
		}
		game.InsertDigit(row, col, digit)
		return nil
	case "c":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		game.ClearCell(row, col)
		return nil
	case "r":
		game.Reset()
		return nil
	}
	return nil
}

func (g *GameHandler) runGameLoop(
	ctx context.Context,
	conn *websocket.Conn,
	session *repository.GameSession,
	game *sudoku.GameState,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		message := strings.TrimSpace(string(buf))
		for _, line := range strings.Split(message, "\n") {
			if err := executeCommand(game, strings.TrimSpace(line)); err != nil {
				return err
			}
		}

		session, err = g.repo.SaveGame(ctx, session, game)
		if err != nil {
			return fmt.Errorf("unable to update session in db: %w", err)
		}

		if err := conn.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
	}
}

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	g.log.Debug("established WS connection")

	if err := g.runGameLoop(r.Context(), conn, session, game); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
			return
		}
		g.log.WithError(err).Warn("error in ws loop")
	}
}
