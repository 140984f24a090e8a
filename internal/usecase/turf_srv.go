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

type TurfService interface {
	Create(ctx context.Context, actor Actor, req *request.CreateTurfRequest) (*response.TurfResponse, error)
	Get(ctx context.Context, turfID string) (*response.TurfResponse, error)
	List(ctx context.Context) ([]response.TurfResponse, error)
	ListByGame(ctx context.Context, gameID string) ([]response.TurfResponse, error)
	ListByOwner(ctx context.Context, ownerID string) ([]response.TurfResponse, error)
	Update(ctx context.Context, actor Actor, turfID string, req *request.UpdateTurfRequest) (*response.TurfResponse, error)
	Delete(ctx context.Context, actor Actor, turfID string) error
}

type turfService struct {
	repo    *repository.Repository
	timeout time.Duration
	log     *zap.Logger
}

func NewTurfService(repo *repository.Repository, timeout time.Duration, log *zap.Logger) TurfService {
	return &turfService{
		repo:    repo,
		timeout: timeout,
		log:     log.With(zap.String("service", "turf")),
	}
}

func (s *turfService) Create(ctx context.Context, actor Actor, req *request.CreateTurfRequest) (*response.TurfResponse, error) {
	if actor.Role != entity.RoleOwner && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create turf validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	slots, err := ValidateCatalog(req.Slots)
	if err != nil {
		return nil, err
	}

	// Admins may list a turf for an owner; owners always list for themselves.
	ownerID := actor.UserID
	if req.OwnerID != "" && actor.IsAdmin() {
		ownerID = uuid.MustParse(req.OwnerID)
	}
	gameID := uuid.MustParse(req.GameID)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	owner, err := s.repo.User.FindByID(ctx, ownerID)
	if err != nil {
		return nil, storageError("find owner", err)
	}
	if owner == nil {
		return nil, notFound("owner")
	}

	game, err := s.repo.Game.FindByID(ctx, gameID)
	if err != nil {
		return nil, storageError("find game", err)
	}
	if game == nil {
		return nil, notFound("game")
	}

	now := time.Now()
	turf := &entity.Turf{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		Location:     strings.TrimSpace(req.Location),
		ImageURL:     req.ImageURL,
		PricePerHour: *req.PricePerHour,
		Contact:      req.Contact,
		Description:  req.Description,
		Slots:        slots,
		OwnerID:      owner.ID,
		GameID:       game.ID,
		Game:         game,
		Owner:        owner,
	}

	if err := s.repo.Turf.Create(ctx, turf); err != nil {
		return nil, storageError("create turf", err)
	}

	s.log.Info("Turf created",
		zap.String("turf_id", turf.ID.String()),
		zap.String("owner_id", turf.OwnerID.String()),
		zap.Int("slot_count", len(turf.Slots)),
	)

	resp := response.TurfToResponse(turf)
	return &resp, nil
}

func (s *turfService) Get(ctx context.Context, turfID string) (*response.TurfResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	turf, err := s.find(ctx, turfID)
	if err != nil {
		return nil, err
	}
	resp := response.TurfToResponse(turf)
	return &resp, nil
}

func (s *turfService) List(ctx context.Context) ([]response.TurfResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	turfs, err := s.repo.Turf.FindAll(ctx)
	if err != nil {
		return nil, storageError("list turfs", err)
	}
	return response.TurfsToResponse(turfs), nil
}

func (s *turfService) ListByGame(ctx context.Context, gameID string) ([]response.TurfResponse, error) {
	id, err := uuid.Parse(gameID)
	if err != nil {
		return nil, notFound("game")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	turfs, err := s.repo.Turf.FindByGameID(ctx, id)
	if err != nil {
		return nil, storageError("list turfs by game", err)
	}
	return response.TurfsToResponse(turfs), nil
}

func (s *turfService) ListByOwner(ctx context.Context, ownerID string) ([]response.TurfResponse, error) {
	id, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, notFound("owner")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	turfs, err := s.repo.Turf.FindByOwnerID(ctx, id)
	if err != nil {
		return nil, storageError("list turfs by owner", err)
	}
	return response.TurfsToResponse(turfs), nil
}

// Update changes listing details. A replaced slot catalog only affects
// future reservations; existing bookings keep their slot label.
func (s *turfService) Update(ctx context.Context, actor Actor, turfID string, req *request.UpdateTurfRequest) (*response.TurfResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update turf validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	turf, err := s.find(ctx, turfID)
	if err != nil {
		return nil, err
	}
	if !actor.CanActFor(turf.OwnerID) {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		turf.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		turf.Location = strings.TrimSpace(*req.Location)
	}
	if req.PricePerHour != nil {
		turf.PricePerHour = *req.PricePerHour
	}
	if req.Description != nil {
		turf.Description = *req.Description
	}
	if req.Slots != nil {
		slots, err := ValidateCatalog(req.Slots)
		if err != nil {
			return nil, err
		}
		turf.Slots = slots
	}
	turf.UpdatedAt = time.Now()

	if err := s.repo.Turf.Update(ctx, turf); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("turf")
		}
		return nil, storageError("update turf", err)
	}

	s.log.Info("Turf updated", zap.String("turf_id", turf.ID.String()))
	resp := response.TurfToResponse(turf)
	return &resp, nil
}

func (s *turfService) Delete(ctx context.Context, actor Actor, turfID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	turf, err := s.find(ctx, turfID)
	if err != nil {
		return err
	}
	if !actor.CanActFor(turf.OwnerID) {
		return ErrForbidden
	}

	if err := s.repo.Turf.Delete(ctx, turf.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("turf")
		}
		return storageError("delete turf", err)
	}
	return nil
}

func (s *turfService) find(ctx context.Context, turfID string) (*entity.Turf, error) {
	id, err := uuid.Parse(turfID)
	if err != nil {
		return nil, notFound("turf")
	}

	turf, err := s.repo.Turf.FindByID(ctx, id)
	if err != nil {
		return nil, storageError("find turf", err)
	}
	if turf == nil {
		return nil, notFound("turf")
	}
	return turf, nil
}
