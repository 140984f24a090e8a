package repository

import (
	"context"
	"errors"
	"fmt"

	"turf-booking/internal/data/entity"
	"turf-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TurfRepository interface {
	Create(ctx context.Context, turf *entity.Turf) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Turf, error)
	FindAll(ctx context.Context) ([]*entity.Turf, error)
	FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Turf, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Turf, error)
	Update(ctx context.Context, turf *entity.Turf) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// turfSelect reads a turf with its game and owner so listings need no follow-up lookups.
const turfSelect = `
	SELECT t.id, t.name, t.location, t.image_url, t.price_per_hour, t.contact, t.description, t.slots,
	       t.owner_id, t.game_id, t.created_at, t.updated_at, t.deleted_at,
	       g.name, g.image_url, u.name, u.email
	FROM turfs t
	INNER JOIN games g ON g.id = t.game_id
	INNER JOIN users u ON u.id = t.owner_id`

type turfRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTurfRepository(db database.PgxIface, log *zap.Logger) TurfRepository {
	return &turfRepository{
		db:  db,
		log: log.With(zap.String("repository", "turf")),
	}
}

func (r *turfRepository) Create(ctx context.Context, turf *entity.Turf) error {
	query := `
		INSERT INTO turfs (id, name, location, image_url, price_per_hour, contact, description, slots,
		                   owner_id, game_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		turf.ID,
		turf.Name,
		turf.Location,
		turf.ImageURL,
		turf.PricePerHour,
		turf.Contact,
		turf.Description,
		turf.Slots,
		turf.OwnerID,
		turf.GameID,
		turf.CreatedAt,
		turf.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create turf",
			zap.Error(err),
			zap.String("name", turf.Name),
			zap.String("owner_id", turf.OwnerID.String()),
		)
		return fmt.Errorf("create turf %s: %w", turf.Name, err)
	}

	return nil
}

func (r *turfRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Turf, error) {
	query := turfSelect + ` WHERE t.id = $1 AND t.deleted_at IS NULL`

	turf, err := scanTurf(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find turf by ID",
			zap.Error(err),
			zap.String("turf_id", id.String()),
		)
		return nil, fmt.Errorf("find turf by ID %s: %w", id.String(), err)
	}

	return turf, nil
}

func (r *turfRepository) FindAll(ctx context.Context) ([]*entity.Turf, error) {
	query := turfSelect + ` WHERE t.deleted_at IS NULL ORDER BY t.created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list turfs", zap.Error(err))
		return nil, fmt.Errorf("list turfs: %w", err)
	}

	return r.collect(rows)
}

func (r *turfRepository) FindByGameID(ctx context.Context, gameID uuid.UUID) ([]*entity.Turf, error) {
	query := turfSelect + `
		WHERE t.game_id = $1 AND t.deleted_at IS NULL
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, gameID)
	if err != nil {
		r.log.Error("Failed to find turfs by game ID",
			zap.Error(err),
			zap.String("game_id", gameID.String()),
		)
		return nil, fmt.Errorf("find turfs by game ID %s: %w", gameID.String(), err)
	}

	return r.collect(rows)
}

func (r *turfRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Turf, error) {
	query := turfSelect + `
		WHERE t.owner_id = $1 AND t.deleted_at IS NULL
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		r.log.Error("Failed to find turfs by owner ID",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find turfs by owner ID %s: %w", ownerID.String(), err)
	}

	return r.collect(rows)
}

func (r *turfRepository) Update(ctx context.Context, turf *entity.Turf) error {
	query := `
		UPDATE turfs
		SET name = $2, location = $3, price_per_hour = $4, description = $5, slots = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		turf.ID,
		turf.Name,
		turf.Location,
		turf.PricePerHour,
		turf.Description,
		turf.Slots,
		turf.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update turf",
			zap.Error(err),
			zap.String("turf_id", turf.ID.String()),
		)
		return fmt.Errorf("update turf %s: %w", turf.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("update turf %s: %w", turf.ID.String(), ErrNotFound)
	}

	return nil
}

// Delete soft-deletes the turf; its bookings stay in the ledger.
func (r *turfRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE turfs SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete turf",
			zap.Error(err),
			zap.String("turf_id", id.String()),
		)
		return fmt.Errorf("delete turf %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("delete turf %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Turf deleted", zap.String("turf_id", id.String()))
	return nil
}

func (r *turfRepository) collect(rows pgx.Rows) ([]*entity.Turf, error) {
	defer rows.Close()

	turfs := make([]*entity.Turf, 0)
	for rows.Next() {
		turf, err := scanTurf(rows)
		if err != nil {
			r.log.Error("Failed to scan turf row", zap.Error(err))
			return nil, fmt.Errorf("scan turf row: %w", err)
		}
		turfs = append(turfs, turf)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate turf rows: %w", err)
	}

	return turfs, nil
}

func scanTurf(row pgx.Row) (*entity.Turf, error) {
	var (
		turf  entity.Turf
		game  entity.Game
		owner entity.User
	)
	err := row.Scan(
		&turf.ID,
		&turf.Name,
		&turf.Location,
		&turf.ImageURL,
		&turf.PricePerHour,
		&turf.Contact,
		&turf.Description,
		&turf.Slots,
		&turf.OwnerID,
		&turf.GameID,
		&turf.CreatedAt,
		&turf.UpdatedAt,
		&turf.DeletedAt,
		&game.Name,
		&game.ImageURL,
		&owner.Name,
		&owner.Email,
	)
	if err != nil {
		return nil, err
	}

	game.ID = turf.GameID
	owner.ID = turf.OwnerID
	turf.Game = &game
	turf.Owner = &owner
	return &turf, nil
}
