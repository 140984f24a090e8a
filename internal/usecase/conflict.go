package usecase

import (
	"context"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/data/repository"

	"github.com/google/uuid"
)

// Verdict is the result of a conflict check. Conflict is set iff Available is false.
type Verdict struct {
	Available bool
	Conflict  *entity.Booking
}

// ConflictChecker decides slot availability. Only paid bookings block;
// dates and slots compare by exact equality.
type ConflictChecker struct {
	bookings repository.BookingRepository
}

func NewConflictChecker(bookings repository.BookingRepository) *ConflictChecker {
	return &ConflictChecker{bookings: bookings}
}

func (c *ConflictChecker) Check(ctx context.Context, turfID uuid.UUID, date, slot string) (Verdict, error) {
	existing, err := c.bookings.FindConflict(ctx, turfID, date, slot)
	if err != nil {
		return Verdict{}, err
	}
	if existing != nil && existing.Blocks() {
		return Verdict{Conflict: existing}, nil
	}
	return Verdict{Available: true}, nil
}

// Occupied returns the set of slots held by paid bookings on date.
func (c *ConflictChecker) Occupied(ctx context.Context, turfID uuid.UUID, date string) (map[string]bool, error) {
	bookings, err := c.bookings.FindByTurfID(ctx, turfID)
	if err != nil {
		return nil, err
	}

	occupied := make(map[string]bool)
	for _, booking := range bookings {
		if booking.Date == date && booking.Blocks() {
			occupied[booking.Slot] = true
		}
	}
	return occupied, nil
}
