package wire

import (
	"net/http"

	"turf-booking/internal/adaptor"
	"turf-booking/internal/data/entity"
	"turf-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGame(r chi.Router, gameHandler *adaptor.GameHandler, requireAuth func(http.Handler) http.Handler, log *zap.Logger) {
	r.Get("/api/games", gameHandler.GetGames)

	r.With(
		requireAuth,
		middleware.RequireRole(log, entity.RoleAdmin),
	).Post("/api/games", gameHandler.CreateGame)
}
