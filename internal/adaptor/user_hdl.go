package adaptor

import (
	"net/http"

	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	auth     usecase.AuthService
	bookings usecase.BookingService
	log      *zap.Logger
}

func NewUserHandler(auth usecase.AuthService, bookings usecase.BookingService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		auth:     auth,
		bookings: bookings,
		log:      log.With(zap.String("handler", "user")),
	}
}

// GetProfile handles GET /api/me
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.auth.Me(r.Context(), actor)
	if err != nil {
		handleServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "Profile retrieved successfully", profile)
}

// GetBookings handles GET /api/users/{id}/bookings (self or admin)
func (h *UserHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookings, err := h.bookings.ListByUser(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}
