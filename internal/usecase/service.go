package usecase

import (
	"fmt"

	"turf-booking/internal/data/repository"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Game    GameService
	Turf    TurfService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, tokens utils.TokenManager, log *zap.Logger) (*Service, error) {
	location, err := config.App.Location()
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	timeout := config.App.StorageTimeout
	return &Service{
		Auth:    NewAuthService(repo, config, tokens, log),
		Game:    NewGameService(repo.Game, timeout, log),
		Turf:    NewTurfService(repo, timeout, log),
		Booking: NewBookingService(repo, timeout, location, log),
	}, nil
}
