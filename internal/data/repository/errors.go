package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolationCode = "23505"

	constraintBookingPaidSlot = "bookings_paid_slot_key"
	constraintUserEmail       = "users_email_key"
	constraintGameName        = "games_name_key"
)

var (
	// ErrNotFound is returned by writes that matched no row.
	ErrNotFound = errors.New("record not found")
	// ErrSlotTaken means another paid booking already holds the (turf, date, slot) triple.
	ErrSlotTaken = errors.New("slot already taken")
	// ErrDuplicate is a unique violation on a natural key such as email or game name.
	ErrDuplicate = errors.New("duplicate record")
)

// MissingFieldError is returned before touching storage when a required column is empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %s", e.Field)
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraint
	}
	return false
}
