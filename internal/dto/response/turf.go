package response

import (
	"time"

	"turf-booking/internal/data/entity"
)

type TurfResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Location     string     `json:"location"`
	ImageURL     string     `json:"image_url"`
	PricePerHour float64    `json:"price_per_hour"`
	Contact      string     `json:"contact"`
	Description  string     `json:"description"`
	Slots        []string   `json:"slots"`
	OwnerID      string     `json:"owner_id"`
	GameID       string     `json:"game_id"`
	Game         *TurfGame  `json:"game,omitempty"`
	Owner        *TurfOwner `json:"owner,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type TurfGame struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// TurfOwner is the public contact card of the turf's owner.
type TurfOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func TurfToResponse(turf *entity.Turf) TurfResponse {
	resp := TurfResponse{
		ID:           turf.ID.String(),
		Name:         turf.Name,
		Location:     turf.Location,
		ImageURL:     turf.ImageURL,
		PricePerHour: turf.PricePerHour,
		Contact:      turf.Contact,
		Description:  turf.Description,
		Slots:        turf.Slots,
		OwnerID:      turf.OwnerID.String(),
		GameID:       turf.GameID.String(),
		CreatedAt:    turf.CreatedAt,
		UpdatedAt:    turf.UpdatedAt,
	}
	if game := turf.Game; game != nil {
		resp.Game = &TurfGame{ID: game.ID.String(), Name: game.Name, ImageURL: game.ImageURL}
	}
	if owner := turf.Owner; owner != nil {
		resp.Owner = &TurfOwner{ID: owner.ID.String(), Name: owner.Name, Email: owner.Email}
	}
	return resp
}

func TurfsToResponse(turfs []*entity.Turf) []TurfResponse {
	out := make([]TurfResponse, len(turfs))
	for i, turf := range turfs {
		out[i] = TurfToResponse(turf)
	}
	return out
}
