package wire

import (
	"net/http"

	"turf-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, requireAuth func(http.Handler) http.Handler) {
	r.Get("/api/turfs/{id}/bookings", bookingHandler.ListByTurf)
	r.Get("/api/turfs/{id}/availability", bookingHandler.Availability)

	r.Group(func(r chi.Router) {
		r.Use(requireAuth)

		r.Post("/api/bookings", bookingHandler.Reserve)
		r.Delete("/api/bookings/{id}", bookingHandler.Cancel)
	})
}
