package wire

import (
	"net/http"

	"turf-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures routes about the calling user. Ownership checks live in the services.
func wireUser(r chi.Router, userHandler *adaptor.UserHandler, requireAuth func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Get("/api/me", userHandler.GetProfile)
		r.Get("/api/users/{id}/bookings", userHandler.GetBookings)
	})
}
