package adaptor

import (
	"errors"
	"net/http"

	"turf-booking/internal/data/entity"
	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"go.uber.org/zap"
)

// Error kinds reported in the response envelope.
const (
	KindNotFound        = "not_found"
	KindValidation      = "validation_error"
	KindInvalidSlot     = "invalid_slot"
	KindPastDate        = "past_date"
	KindSlotUnavailable = "slot_unavailable"
	KindTimeout         = "timeout"
	KindForbidden       = "forbidden"
	KindUnauthorized    = "unauthorized"
	KindAlreadyExists   = "already_exists"
	KindInternal        = "internal"
)

// classify maps a service error onto an HTTP status and error kind.
func classify(err error) (int, string) {
	var notFound *usecase.NotFoundError
	var invalid *usecase.ValidationError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, KindNotFound
	case errors.As(err, &invalid):
		return http.StatusBadRequest, KindValidation
	case errors.Is(err, usecase.ErrInvalidSlot):
		return http.StatusUnprocessableEntity, KindInvalidSlot
	case errors.Is(err, usecase.ErrPastDate):
		return http.StatusUnprocessableEntity, KindPastDate
	case errors.Is(err, usecase.ErrSlotUnavailable):
		return http.StatusConflict, KindSlotUnavailable
	case errors.Is(err, usecase.ErrTimeout):
		return http.StatusGatewayTimeout, KindTimeout
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden, KindForbidden
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, utils.ErrInvalidToken),
		errors.Is(err, utils.ErrExpiredToken):
		return http.StatusUnauthorized, KindUnauthorized
	case errors.Is(err, usecase.ErrAlreadyExists):
		return http.StatusConflict, KindAlreadyExists
	default:
		return http.StatusInternalServerError, KindInternal
	}
}

func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	code, kind := classify(err)

	if code >= http.StatusInternalServerError && kind != KindTimeout {
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	log.Warn(operation+" failed",
		zap.Error(err),
		zap.String("operation", operation),
		zap.String("kind", kind))

	var invalid *usecase.ValidationError
	if errors.As(err, &invalid) {
		fields := invalid.Fields
		if fields == nil {
			fields = map[string]string{invalid.Field: invalid.Message}
		}
		utils.ResponseError(w, code, kind, "Validation failed", fields)
		return
	}

	utils.ResponseError(w, code, kind, errorMessage(err, kind), nil)
}

// errorMessage keeps wrapped storage details out of the response body.
func errorMessage(err error, kind string) string {
	switch kind {
	case KindTimeout:
		return usecase.ErrTimeout.Error()
	default:
		return err.Error()
	}
}

// actorFromRequest rebuilds the verified caller placed in the context by the auth middleware.
func actorFromRequest(r *http.Request) (usecase.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	role, _ := utils.GetRoleFromContext(r.Context())
	return usecase.Actor{UserID: userID, Role: entity.UserRole(role)}, true
}
