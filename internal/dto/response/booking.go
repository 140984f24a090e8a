package response

import (
	"time"

	"turf-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	TurfID        string               `json:"turf_id"`
	UserID        string               `json:"user_id"`
	GameID        string               `json:"game_id"`
	Date          string               `json:"date"`
	Slot          string               `json:"slot"`
	Price         float64              `json:"price"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time            `json:"created_at"`
	Turf          *BookedTurf          `json:"turf,omitempty"`
}

// BookedTurf is the venue shown next to a booking on the user dashboard.
type BookedTurf struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	ImageURL     string  `json:"image_url"`
	PricePerHour float64 `json:"price_per_hour"`
	Contact      string  `json:"contact"`
}

type SlotAvailability struct {
	Slot   string `json:"slot"`
	Booked bool   `json:"booked"`
}

// AvailabilityResponse is the occupancy map of one turf on one date, in catalog order.
type AvailabilityResponse struct {
	TurfID string             `json:"turf_id"`
	Date   string             `json:"date"`
	Slots  []SlotAvailability `json:"slots"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID.String(),
		TurfID:        booking.TurfID.String(),
		UserID:        booking.UserID.String(),
		GameID:        booking.GameID.String(),
		Date:          booking.Date,
		Slot:          booking.Slot,
		Price:         booking.Price,
		PaymentStatus: booking.PaymentStatus,
		CreatedAt:     booking.CreatedAt,
	}
	if turf := booking.Turf; turf != nil {
		resp.Turf = &BookedTurf{
			ID:           turf.ID.String(),
			Name:         turf.Name,
			Location:     turf.Location,
			ImageURL:     turf.ImageURL,
			PricePerHour: turf.PricePerHour,
			Contact:      turf.Contact,
		}
	}
	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking)
	}
	return out
}
