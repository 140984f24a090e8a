package usecase

import (
	"context"
	"errors"
	"time"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"
	"turf-booking/internal/dto/request"
	"turf-booking/internal/dto/response"
	"turf-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type BookingService interface {
	Reserve(ctx context.Context, actor Actor, req *request.ReserveRequest) (*response.BookingResponse, error)
	Cancel(ctx context.Context, actor Actor, bookingID string) error
	ListByTurf(ctx context.Context, turfID string) ([]response.BookingResponse, error)
	ListByUser(ctx context.Context, actor Actor, userID string) ([]response.BookingResponse, error)
	Availability(ctx context.Context, turfID string, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	checker  *ConflictChecker
	timeout  time.Duration
	location *time.Location
	now      func() time.Time
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, timeout time.Duration, location *time.Location, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		checker:  NewConflictChecker(repo.Booking),
		timeout:  timeout,
		location: location,
		now:      time.Now,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) today() string {
	return s.now().In(s.location).Format(dateLayout)
}

func (s *bookingService) Reserve(ctx context.Context, actor Actor, req *request.ReserveRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve validation failed", zap.Any("errors", errs))
		return nil, validationFailed(errs)
	}

	turfID := uuid.MustParse(req.TurfID)
	gameID := uuid.MustParse(req.GameID)
	userID := actor.UserID
	if req.UserID != "" {
		userID = uuid.MustParse(req.UserID)
	}
	if !actor.CanActFor(userID) {
		s.log.Warn("Reserve on behalf of another user rejected",
			zap.String("actor_id", actor.UserID.String()),
			zap.String("user_id", userID.String()),
		)
		return nil, ErrForbidden
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	turf, err := s.repo.Turf.FindByID(ctx, turfID)
	if err != nil {
		return nil, storageError("find turf", err)
	}
	if turf == nil {
		return nil, notFound("turf")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, storageError("find user", err)
	}
	if user == nil {
		return nil, notFound("user")
	}

	game, err := s.repo.Game.FindByID(ctx, gameID)
	if err != nil {
		return nil, storageError("find game", err)
	}
	if game == nil {
		return nil, notFound("game")
	}

	if !turf.HasSlot(req.Slot) {
		s.log.Warn("Slot not offered by turf",
			zap.String("turf_id", turf.ID.String()),
			zap.String("slot", req.Slot),
		)
		return nil, ErrInvalidSlot
	}

	// ISO dates order lexically.
	if req.Date < s.today() {
		return nil, ErrPastDate
	}

	verdict, err := s.checker.Check(ctx, turf.ID, req.Date, req.Slot)
	if err != nil {
		return nil, storageError("check conflict", err)
	}
	if !verdict.Available {
		s.log.Info("Slot already booked",
			zap.String("turf_id", turf.ID.String()),
			zap.String("date", req.Date),
			zap.String("slot", req.Slot),
			zap.String("booking_id", verdict.Conflict.ID.String()),
		)
		return nil, ErrSlotUnavailable
	}

	booking := &entity.Booking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		TurfID:        turf.ID,
		UserID:        user.ID,
		GameID:        game.ID,
		Date:          req.Date,
		Slot:          req.Slot,
		Price:         *req.Price,
		PaymentStatus: entity.PaymentStatusPaid,
	}

	if err := s.repo.Booking.Insert(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return nil, ErrSlotUnavailable
		}
		return nil, storageError("insert booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("turf_id", booking.TurfID.String()),
		zap.String("user_id", booking.UserID.String()),
		zap.String("date", booking.Date),
		zap.String("slot", booking.Slot),
		zap.Float64("price", booking.Price),
	)

	booking.Turf = turf
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) Cancel(ctx context.Context, actor Actor, bookingID string) error {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return notFound("booking")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return storageError("find booking", err)
	}
	if booking == nil {
		return notFound("booking")
	}
	if !actor.CanActFor(booking.UserID) {
		return ErrForbidden
	}

	if err := s.repo.Booking.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("booking")
		}
		return storageError("delete booking", err)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("actor_id", actor.UserID.String()),
	)
	return nil
}

func (s *bookingService) ListByTurf(ctx context.Context, turfID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(turfID)
	if err != nil {
		return nil, notFound("turf")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	bookings, err := s.repo.Booking.FindByTurfID(ctx, id)
	if err != nil {
		return nil, storageError("list bookings by turf", err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) ListByUser(ctx context.Context, actor Actor, userID string) ([]response.BookingResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, notFound("user")
	}
	if !actor.CanActFor(id) {
		return nil, ErrForbidden
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	bookings, err := s.repo.Booking.FindByUserID(ctx, id)
	if err != nil {
		return nil, storageError("list bookings by user", err)
	}
	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) Availability(ctx context.Context, turfID string, req *request.AvailabilityRequest) (*response.AvailabilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, validationFailed(errs)
	}
	id, err := uuid.Parse(turfID)
	if err != nil {
		return nil, notFound("turf")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	turf, err := s.repo.Turf.FindByID(ctx, id)
	if err != nil {
		return nil, storageError("find turf", err)
	}
	if turf == nil {
		return nil, notFound("turf")
	}

	occupied, err := s.checker.Occupied(ctx, turf.ID, req.Date)
	if err != nil {
		return nil, storageError("load occupancy", err)
	}

	slots := ListSlots(turf)
	resp := &response.AvailabilityResponse{
		TurfID: turf.ID.String(),
		Date:   req.Date,
		Slots:  make([]response.SlotAvailability, len(slots)),
	}
	for i, slot := range slots {
		resp.Slots[i] = response.SlotAvailability{Slot: slot, Booked: occupied[slot]}
	}
	return resp, nil
}
