package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session backs one issued access token. Token is the JWT jti the auth
// middleware looks up; ID is only the row key.
type Session struct {
	BaseSimple
	UserID    uuid.UUID `db:"user_id"`
	Token     uuid.UUID `db:"token"`
	UserAgent *string   `db:"user_agent"`
	IPAddress *string   `db:"ip_address"`
	ExpiresAt time.Time `db:"expires_at"`
	// RevokedAt is set on logout.
	RevokedAt *time.Time `db:"revoked_at"`
}

// Live reports whether the session can still authenticate requests at now.
func (s *Session) Live(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}
