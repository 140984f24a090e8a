package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey       contextKey = "user_id"
	RoleKey         contextKey = "role"
	SessionTokenKey contextKey = "session_token"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok && role != ""
}

func SetUserContext(ctx context.Context, userID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	ctx = context.WithValue(ctx, RoleKey, role)
	return ctx
}

// GetSessionTokenFromContext returns the session token the request was authenticated with.
func GetSessionTokenFromContext(ctx context.Context) (uuid.UUID, bool) {
	sessionToken, ok := ctx.Value(SessionTokenKey).(uuid.UUID)
	return sessionToken, ok
}

func SetSessionTokenContext(ctx context.Context, sessionToken uuid.UUID) context.Context {
	return context.WithValue(ctx, SessionTokenKey, sessionToken)
}
