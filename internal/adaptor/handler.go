package adaptor

import (
	"turf-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Game    *GameHandler
	Turf    *TurfHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.Auth, service.Booking, log),
		Game:    NewGameHandler(service.Game, log),
		Turf:    NewTurfHandler(service.Turf, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}
