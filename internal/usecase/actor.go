package usecase

import (
	"turf-booking/internal/data/entity"

	"github.com/google/uuid"
)

// Actor is the verified caller, taken from the access token rather than the request body.
type Actor struct {
	UserID uuid.UUID
	Role   entity.UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// CanActFor reports whether the actor may touch resources belonging to userID.
func (a Actor) CanActFor(userID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == userID
}
