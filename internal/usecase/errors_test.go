package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"turf-booking/internal/data/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorageError(t *testing.T) {
	assert.ErrorIs(t, storageError("op", fmt.Errorf("query: %w", context.DeadlineExceeded)), ErrTimeout)

	var invalid *ValidationError
	require.ErrorAs(t, storageError("op", &repository.MissingFieldError{Field: "turf_id"}), &invalid)
	assert.Equal(t, "turf_id", invalid.Field)

	cause := errors.New("connection refused")
	err := storageError("insert booking", cause)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.Equal(t, "insert booking: connection refused", err.Error())
}

func TestValidationFailedPicksFirstField(t *testing.T) {
	err := validationFailed(map[string]string{"slot": "This field is required", "date": "bad"})

	var invalid *ValidationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "date", invalid.Field)
	assert.Len(t, invalid.Fields, 2)
}
