package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"turf-booking/internal/usecase"
	"turf-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		err  error
		code int
		kind string
	}{
		{&usecase.NotFoundError{Entity: "turf"}, http.StatusNotFound, KindNotFound},
		{&usecase.ValidationError{Field: "date"}, http.StatusBadRequest, KindValidation},
		{usecase.ErrInvalidSlot, http.StatusUnprocessableEntity, KindInvalidSlot},
		{usecase.ErrPastDate, http.StatusUnprocessableEntity, KindPastDate},
		{usecase.ErrSlotUnavailable, http.StatusConflict, KindSlotUnavailable},
		{fmt.Errorf("insert booking: %w", usecase.ErrTimeout), http.StatusGatewayTimeout, KindTimeout},
		{usecase.ErrForbidden, http.StatusForbidden, KindForbidden},
		{usecase.ErrInvalidCredentials, http.StatusUnauthorized, KindUnauthorized},
		{utils.ErrExpiredToken, http.StatusUnauthorized, KindUnauthorized},
		{usecase.ErrAlreadyExists, http.StatusConflict, KindAlreadyExists},
		{errors.New("boom"), http.StatusInternalServerError, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			code, kind := classify(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestHandleServiceErrorHidesInternals(t *testing.T) {
	rec := httptest.NewRecorder()
	handleServiceError(rec, zap.NewNop(), errors.New("pq: password authentication failed"), "reserve slot")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, KindInternal, body.Kind)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestHandleServiceErrorListsInvalidFields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &usecase.ValidationError{Field: "date", Message: "bad", Fields: map[string]string{"date": "bad", "slot": "missing"}}
	handleServiceError(rec, zap.NewNop(), err, "reserve slot")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body struct {
		Kind   string            `json:"kind"`
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, KindValidation, body.Kind)
	assert.Equal(t, "missing", body.Errors["slot"])
}
