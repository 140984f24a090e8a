package wire

import (
	"net/http"

	"turf-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, requireAuth func(http.Handler) http.Handler) {
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)

	r.With(requireAuth).Post("/api/logout", authHandler.Logout)
}
