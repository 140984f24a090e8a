package request

// ReserveRequest is the body of POST /api/bookings. UserID may be omitted;
// the authenticated caller is used instead.
type ReserveRequest struct {
	TurfID string   `json:"turf_id" validate:"required,uuid"`
	UserID string   `json:"user_id,omitempty" validate:"omitempty,uuid"`
	GameID string   `json:"game_id" validate:"required,uuid"`
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
	Slot   string   `json:"slot" validate:"required,max=20"`
	Price  *float64 `json:"price" validate:"required,gte=0,money"`
}

type AvailabilityRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
