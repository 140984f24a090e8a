package repository

import (
	"context"
	"testing"
	"time"

	"turf-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func turfRow(id, ownerID, gameID uuid.UUID) valuesRow {
	now := time.Now()
	return valuesRow{
		id, "Green Park", "Downtown", "https://images.example.com/green.png", 40.0, "0123456789", "",
		[]string{"8am-9am", "9am-10am"}, ownerID, gameID, now, now, nil,
		"Football", "https://images.example.com/football.png", "Owner", "owner@example.com",
	}
}

func assertJoined(t *testing.T, turf *entity.Turf, ownerID, gameID uuid.UUID) {
	t.Helper()
	require.NotNil(t, turf.Game)
	assert.Equal(t, gameID, turf.Game.ID)
	assert.Equal(t, "Football", turf.Game.Name)
	require.NotNil(t, turf.Owner)
	assert.Equal(t, ownerID, turf.Owner.ID)
	assert.Equal(t, "Owner", turf.Owner.Name)
	assert.Equal(t, "owner@example.com", turf.Owner.Email)
	assert.Empty(t, turf.Owner.PasswordHash)
}

func TestTurfListings_JoinGameAndOwner(t *testing.T) {
	ownerID, gameID := uuid.New(), uuid.New()
	ctx := context.Background()

	tests := []struct {
		name  string
		where string
		list  func(repo TurfRepository) ([]*entity.Turf, error)
	}{
		{"all", "WHERE t.deleted_at IS NULL", func(repo TurfRepository) ([]*entity.Turf, error) {
			return repo.FindAll(ctx)
		}},
		{"by game", "WHERE t.game_id = $1", func(repo TurfRepository) ([]*entity.Turf, error) {
			return repo.FindByGameID(ctx, gameID)
		}},
		{"by owner", "WHERE t.owner_id = $1", func(repo TurfRepository) ([]*entity.Turf, error) {
			return repo.FindByOwnerID(ctx, ownerID)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &fakeDB{rows: &fakeRows{rows: []valuesRow{turfRow(uuid.New(), ownerID, gameID)}}}
			repo := NewTurfRepository(db, zap.NewNop())

			turfs, err := tt.list(repo)
			require.NoError(t, err)
			require.Len(t, turfs, 1)
			assert.Equal(t, []string{"8am-9am", "9am-10am"}, turfs[0].Slots)
			assertJoined(t, turfs[0], ownerID, gameID)

			require.Len(t, db.queries, 1)
			assert.Contains(t, db.queries[0], "INNER JOIN games g ON g.id = t.game_id")
			assert.Contains(t, db.queries[0], "INNER JOIN users u ON u.id = t.owner_id")
			assert.Contains(t, db.queries[0], tt.where)
		})
	}
}

func TestTurfFindByID(t *testing.T) {
	id, ownerID, gameID := uuid.New(), uuid.New(), uuid.New()
	repo := NewTurfRepository(&fakeDB{row: turfRow(id, ownerID, gameID)}, zap.NewNop())

	turf, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, turf)
	assert.Equal(t, id, turf.ID)
	assert.Nil(t, turf.DeletedAt)
	assertJoined(t, turf, ownerID, gameID)

	repo = NewTurfRepository(&fakeDB{row: errRow{err: pgx.ErrNoRows}}, zap.NewNop())
	turf, err = repo.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.Nil(t, turf)
}
