package adaptor

import (
	"encoding/json"
	"net/http"

	"turf-booking/internal/dto/request"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

type GameHandler struct {
	service usecase.GameService
	log     *zap.Logger
}

func NewGameHandler(service usecase.GameService, log *zap.Logger) *GameHandler {
	return &GameHandler{
		service: service,
		log:     log.With(zap.String("handler", "game")),
	}
}

// GetGames handles GET /api/games
func (h *GameHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list games")
		return
	}

	utils.ResponseSuccess(w, "success", games)
}

// CreateGame handles POST /api/games (admin only)
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromRequest(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	game, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create game")
		return
	}

	utils.ResponseCreated(w, "Game created", game)
}
