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

type TurfHandler struct {
	service usecase.TurfService
	log     *zap.Logger
}

func NewTurfHandler(service usecase.TurfService, log *zap.Logger) *TurfHandler {
	return &TurfHandler{
		service: service,
		log:     log.With(zap.String("handler", "turf")),
	}
}

// GetTurfs handles GET /api/turfs
func (h *TurfHandler) GetTurfs(w http.ResponseWriter, r *http.Request) {
	turfs, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list turfs")
		return
	}

	utils.ResponseSuccess(w, "success", turfs)
}

// GetTurfByID handles GET /api/turfs/{id}
func (h *TurfHandler) GetTurfByID(w http.ResponseWriter, r *http.Request) {
	turf, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get turf")
		return
	}

	utils.ResponseSuccess(w, "success", turf)
}

// GetTurfsByGame handles GET /api/games/{id}/turfs
func (h *TurfHandler) GetTurfsByGame(w http.ResponseWriter, r *http.Request) {
	turfs, err := h.service.ListByGame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list turfs by game")
		return
	}

	utils.ResponseSuccess(w, "success", turfs)
}

// GetTurfsByOwner handles GET /api/owners/{id}/turfs
func (h *TurfHandler) GetTurfsByOwner(w http.ResponseWriter, r *http.Request) {
	turfs, err := h.service.ListByOwner(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "list turfs by owner")
		return
	}

	utils.ResponseSuccess(w, "success", turfs)
}

// CreateTurf handles POST /api/turfs (owner or admin)
func (h *TurfHandler) CreateTurf(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateTurfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	turf, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create turf")
		return
	}

	utils.ResponseCreated(w, "Turf created", turf)
}

// UpdateTurf handles PUT /api/turfs/{id} (turf owner or admin)
func (h *TurfHandler) UpdateTurf(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateTurfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	turf, err := h.service.Update(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update turf")
		return
	}

	utils.ResponseSuccess(w, "Turf updated", turf)
}

// DeleteTurf handles DELETE /api/turfs/{id} (turf owner or admin)
func (h *TurfHandler) DeleteTurf(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), actor, chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete turf")
		return
	}

	utils.ResponseSuccess(w, "Turf deleted", nil)
}
