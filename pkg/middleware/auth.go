package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authenticator resolves a bearer token to the caller and its session.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (actor usecase.Actor, sessionToken uuid.UUID, err error)
}

// AuthToken validates the bearer access token and its backing session.
func AuthToken(auth Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			actor, sessionToken, err := auth.Authenticate(r.Context(), parts[1])
			switch {
			case errors.Is(err, utils.ErrExpiredToken):
				utils.ResponseUnauthorized(w, "Token has expired")
				return
			case errors.Is(err, utils.ErrInvalidToken):
				logger.Warn("Invalid or revoked token", zap.Error(err), zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			case errors.Is(err, usecase.ErrTimeout):
				logger.Error("Session lookup timed out", zap.Error(err))
				utils.ResponseError(w, http.StatusGatewayTimeout, "timeout", usecase.ErrTimeout.Error(), nil)
				return
			case err != nil:
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetUserContext(r.Context(), actor.UserID, string(actor.Role))
			ctx = utils.SetSessionTokenContext(ctx, sessionToken)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole only lets callers with one of roles through. It must run after AuthToken.
func RequireRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, allowed := range roles {
				if entity.UserRole(role) == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Role check failed",
				zap.String("role", role),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "Insufficient role")
		})
	}
}
