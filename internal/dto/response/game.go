package response

import (
	"time"

	"turf-booking/internal/data/entity"
)

type GameResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

func GameToResponse(game *entity.Game) GameResponse {
	return GameResponse{
		ID:        game.ID.String(),
		Name:      game.Name,
		ImageURL:  game.ImageURL,
		CreatedAt: game.CreatedAt,
	}
}
