package repository

import (
	"turf-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Game    GameRepository
	Turf    TurfRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Game:    NewGameRepository(db, log),
		Turf:    NewTurfRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
