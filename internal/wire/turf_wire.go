package wire

import (
	"net/http"

	"turf-booking/internal/adaptor"
	"turf-booking/internal/data/entity"
	"turf-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTurf(r chi.Router, turfHandler *adaptor.TurfHandler, requireAuth func(http.Handler) http.Handler, log *zap.Logger) {
	r.Get("/api/turfs", turfHandler.GetTurfs)
	r.Get("/api/turfs/{id}", turfHandler.GetTurfByID)
	r.Get("/api/games/{id}/turfs", turfHandler.GetTurfsByGame)
	r.Get("/api/owners/{id}/turfs", turfHandler.GetTurfsByOwner)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)
		r.Use(middleware.RequireRole(log, entity.RoleOwner, entity.RoleAdmin))

		r.Post("/api/turfs", turfHandler.CreateTurf)
		// Turf ownership is checked by the service.
		r.Put("/api/turfs/{id}", turfHandler.UpdateTurf)
		r.Delete("/api/turfs/{id}", turfHandler.DeleteTurf)
	})
}
