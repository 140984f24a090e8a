package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"
	"turf-booking/internal/dto/response"
	"turf-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type GameService interface {
	Create(ctx context.Context, actor Actor, req *request.CreateGameRequest) (*response.GameResponse, error)
	List(ctx context.Context) ([]response.GameResponse, error)
}

type gameService struct {
	repo    repository.GameRepository
	timeout time.Duration
	log     *zap.Logger
}

func NewGameService(repo repository.GameRepository, timeout time.Duration, log *zap.Logger) GameService {
	return &gameService{
		repo:    repo,
		timeout: timeout,
		log:     log.With(zap.String("service", "game")),
	}
}

func (s *gameService) Create(ctx context.Context, actor Actor, req *request.CreateGameRequest) (*response.GameResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create game validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	game := &entity.Game{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:     strings.TrimSpace(req.Name),
		ImageURL: req.ImageURL,
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.repo.Create(ctx, game); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyExists
		}
		return nil, storageError("create game", err)
	}

	s.log.Info("Game created", zap.String("game_id", game.ID.String()), zap.String("name", game.Name))
	resp := response.GameToResponse(game)
	return &resp, nil
}

func (s *gameService) List(ctx context.Context) ([]response.GameResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	games, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storageError("list games", err)
	}

	out := make([]response.GameResponse, len(games))
	for i, game := range games {
		out[i] = response.GameToResponse(game)
	}
	return out, nil
}
