package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/klmnkv/sudoku-server/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(a.log, a.db, a.ws, createRand())
	auth := handlers.NewAuth(a.log, a.db, a.cookies, a.jwt)
	records := handlers.NewRecords(a.log, a.db)

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("POST /game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("GET /game/{id}/validate", game.Validate)
	a.router.HandleFunc("/game/{id}/connect", game.ConnectWS)

	a.router.HandleFunc("GET /records", records.Fetch)

	a.router.HandleFunc("GET /status", auth.Status)
	a.router.HandleFunc("POST /register", auth.Register)
	a.router.HandleFunc("POST /login", auth.Login)
	a.router.HandleFunc("POST /logout", auth.Logout)
}
