package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// Booking is one reservation of a turf slot on a calendar day. Date is an
// ISO YYYY-MM-DD string compared by equality only.
type Booking struct {
	BaseSimple
	TurfID        uuid.UUID     `db:"turf_id"`
	UserID        uuid.UUID     `db:"user_id"`
	GameID        uuid.UUID     `db:"game_id"`
	Date          string        `db:"booking_date"`
	Slot          string        `db:"slot"`
	Price         float64       `db:"price"`
	PaymentStatus PaymentStatus `db:"payment_status"`

	// Turf is filled by reads that join the booked venue.
	Turf *Turf `db:"-"`
}

// Blocks reports whether the booking occupies its slot.
func (b *Booking) Blocks() bool {
	return b.PaymentStatus == PaymentStatusPaid
}
