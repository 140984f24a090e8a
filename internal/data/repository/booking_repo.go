package repository

import (
	"context"
	"errors"
	"fmt"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// BookingRepository is the booking ledger. It holds no conflict policy of its
// own; Insert relies on the bookings_paid_slot_key index to stay race-free.
type BookingRepository interface {
	Insert(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindConflict(ctx context.Context, turfID uuid.UUID, date, slot string) (*entity.Booking, error)
	FindByTurfID(ctx context.Context, turfID uuid.UUID) ([]*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const bookingColumns = `id, turf_id, user_id, game_id, booking_date, slot, price, payment_status, created_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Insert(ctx context.Context, booking *entity.Booking) error {
	if err := checkBookingFields(booking); err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.TurfID,
		booking.UserID,
		booking.GameID,
		booking.Date,
		booking.Slot,
		booking.Price,
		booking.PaymentStatus,
		booking.CreatedAt,
	)

	if isUniqueViolation(err, constraintBookingPaidSlot) {
		r.log.Info("Booking insert lost slot race",
			zap.String("turf_id", booking.TurfID.String()),
			zap.String("date", booking.Date),
			zap.String("slot", booking.Slot),
		)
		return fmt.Errorf("insert booking %s %s/%s: %w", booking.TurfID.String(), booking.Date, booking.Slot, ErrSlotTaken)
	}
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("turf_id", booking.TurfID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindConflict(ctx context.Context, turfID uuid.UUID, date, slot string) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE turf_id = $1 AND booking_date = $2 AND slot = $3 AND payment_status = 'paid'
	`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, turfID, date, slot))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find conflicting booking",
			zap.Error(err),
			zap.String("turf_id", turfID.String()),
			zap.String("date", date),
			zap.String("slot", slot),
		)
		return nil, fmt.Errorf("find conflict for turf %s %s/%s: %w", turfID.String(), date, slot, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByTurfID(ctx context.Context, turfID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE turf_id = $1
		ORDER BY booking_date, slot, created_at
	`

	rows, err := r.db.Query(ctx, query, turfID)
	if err != nil {
		r.log.Error("Failed to find bookings by turf ID",
			zap.Error(err),
			zap.String("turf_id", turfID.String()),
		)
		return nil, fmt.Errorf("find bookings by turf ID %s: %w", turfID.String(), err)
	}

	return r.collect(rows, scanBooking)
}

// FindByUserID joins each booking's turf, including soft-deleted ones, for the user dashboard.
func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	query := `
		SELECT b.id, b.turf_id, b.user_id, b.game_id, b.booking_date, b.slot, b.price, b.payment_status, b.created_at,
		       t.name, t.location, t.image_url, t.price_per_hour, t.contact
		FROM bookings b
		INNER JOIN turfs t ON t.id = b.turf_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}

	return r.collect(rows, scanBookingWithTurf)
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete booking %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) collect(rows pgx.Rows, scan func(pgx.Row) (*entity.Booking, error)) ([]*entity.Booking, error) {
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		booking, err := scan(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate booking rows", zap.Error(err))
		return nil, fmt.Errorf("iterate booking rows: %w", err)
	}

	return bookings, nil
}

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.TurfID,
		&booking.UserID,
		&booking.GameID,
		&booking.Date,
		&booking.Slot,
		&booking.Price,
		&booking.PaymentStatus,
		&booking.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func scanBookingWithTurf(row pgx.Row) (*entity.Booking, error) {
	var (
		booking entity.Booking
		turf    entity.Turf
	)
	err := row.Scan(
		&booking.ID,
		&booking.TurfID,
		&booking.UserID,
		&booking.GameID,
		&booking.Date,
		&booking.Slot,
		&booking.Price,
		&booking.PaymentStatus,
		&booking.CreatedAt,
		&turf.Name,
		&turf.Location,
		&turf.ImageURL,
		&turf.PricePerHour,
		&turf.Contact,
	)
	if err != nil {
		return nil, err
	}

	turf.ID = booking.TurfID
	booking.Turf = &turf
	return &booking, nil
}

func checkBookingFields(booking *entity.Booking) error {
	switch {
	case booking.ID == uuid.Nil:
		return &MissingFieldError{Field: "id"}
	case booking.TurfID == uuid.Nil:
		return &MissingFieldError{Field: "turf_id"}
	case booking.UserID == uuid.Nil:
		return &MissingFieldError{Field: "user_id"}
	case booking.GameID == uuid.Nil:
		return &MissingFieldError{Field: "game_id"}
	case booking.Date == "":
		return &MissingFieldError{Field: "date"}
	case booking.Slot == "":
		return &MissingFieldError{Field: "slot"}
	case booking.PaymentStatus == "":
		return &MissingFieldError{Field: "payment_status"}
	}
	return nil
}
