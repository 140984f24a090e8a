package usecase

import (
	"context"
	"errors"
	"fmt"

	"turf-booking/internal/data/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidSlot        = errors.New("slot is not offered by this turf")
	ErrPastDate           = errors.New("date is earlier than today")
	ErrSlotUnavailable    = errors.New("slot is already booked for this date")
	ErrTimeout            = errors.New("storage did not answer in time")
	ErrForbidden          = errors.New("not allowed to act on this resource")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAlreadyExists      = errors.New("already exists")
)

// NotFoundError names the entity that could not be resolved.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// ValidationError names the offending input field. Fields holds every
// failing field when the error came from struct validation.
type ValidationError struct {
	Field   string
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("validation failed: %s", e.Field)
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

func notFound(entity string) error {
	return &NotFoundError{Entity: entity}
}

// validationFailed turns validator output into a ValidationError for the first field in name order.
func validationFailed(errs map[string]string) error {
	first := ""
	for field := range errs {
		if first == "" || field < first {
			first = field
		}
	}
	return &ValidationError{Field: first, Message: errs[first], Fields: errs}
}

// storageError maps storage failures onto the taxonomy. Deadline expiry
// becomes ErrTimeout, a missing column becomes a ValidationError, anything
// else is returned wrapped with op.
func storageError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w", op, ErrTimeout)
	}
	var missing *repository.MissingFieldError
	if errors.As(err, &missing) {
		return &ValidationError{Field: missing.Field, Message: "This field is required"}
	}
	return fmt.Errorf("%s: %w", op, err)
}
