package entity

import "github.com/google/uuid"

type Turf struct {
	Base
	Name         string    `db:"name"`
	Location     string    `db:"location"`
	ImageURL     string    `db:"image_url"`
	PricePerHour float64   `db:"price_per_hour"`
	Contact      string    `db:"contact"`
	Description  string    `db:"description"`
	Slots        []string  `db:"slots"`
	OwnerID      uuid.UUID `db:"owner_id"`
	GameID       uuid.UUID `db:"game_id"`

	Game  *Game `db:"-"`
	Owner *User `db:"-"`
}

// HasSlot reports whether label is part of the turf's slot catalog.
func (t *Turf) HasSlot(label string) bool {
	for _, slot := range t.Slots {
		if slot == label {
			return true
		}
	}
	return false
}
