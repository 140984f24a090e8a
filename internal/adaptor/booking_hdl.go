package adaptor

import (
	"encoding/json"
	"net/http"

	"turf-booking/internal/dto/request"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Reserve handles POST /api/bookings (protected)
func (h *BookingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ReserveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.Reserve(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "reserve slot")
		return
	}

	utils.ResponseCreated(w, "Booking created", booking)
}

// Cancel handles DELETE /api/bookings/{id} (protected)
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Cancel(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", nil)
}

// ListByTurf handles GET /api/turfs/{id}/bookings
func (h *BookingHandler) ListByTurf(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.service.ListByTurf(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list turf bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// Availability handles GET /api/turfs/{id}/availability?date=YYYY-MM-DD
func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	req := &request.AvailabilityRequest{Date: r.URL.Query().Get("date")}

	availability, err := h.service.Availability(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}
