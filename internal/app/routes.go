package app

import (
	"github.com/vancomm/minesweeper/internal/handlers"
)

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.ws, a.config.Presets, a.config.Rand, a.journal, a.tracer,
	)

	base := a.config.BasePath
	a.router.HandleFunc("GET "+base+"/presets", game.Presets)
	a.router.HandleFunc("GET "+base+"/play", game.Play)
}
