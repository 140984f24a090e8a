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

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)
	FindAll(ctx context.Context) ([]*entity.Game, error)
}

type gameRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGameRepository(db database.PgxIface, log *zap.Logger) GameRepository {
	return &gameRepository{
		db:  db,
		log: log.With(zap.String("repository", "game")),
	}
}

func (r *gameRepository) Create(ctx context.Context, game *entity.Game) error {
	query := `INSERT INTO games (id, name, image_url, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, game.ID, game.Name, game.ImageURL, game.CreatedAt)
	if isUniqueViolation(err, constraintGameName) {
		return fmt.Errorf("create game %s: %w", game.Name, ErrDuplicate)
	}
	if err != nil {
		r.log.Error("Failed to create game",
			zap.Error(err),
			zap.String("name", game.Name),
		)
		return fmt.Errorf("create game %s: %w", game.Name, err)
	}

	return nil
}

func (r *gameRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error) {
	query := `SELECT id, name, image_url, created_at FROM games WHERE id = $1`

	var game entity.Game
	err := r.db.QueryRow(ctx, query, id).Scan(
		&game.ID,
		&game.Name,
		&game.ImageURL,
		&game.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find game by ID",
			zap.Error(err),
			zap.String("game_id", id.String()),
		)
		return nil, fmt.Errorf("find game by ID %s: %w", id.String(), err)
	}

	return &game, nil
}

// FindAll lists games newest first.
func (r *gameRepository) FindAll(ctx context.Context) ([]*entity.Game, error) {
	query := `SELECT id, name, image_url, created_at FROM games ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list games", zap.Error(err))
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	games := make([]*entity.Game, 0)
	for rows.Next() {
		var game entity.Game
		if err := rows.Scan(&game.ID, &game.Name, &game.ImageURL, &game.CreatedAt); err != nil {
			r.log.Error("Failed to scan game row", zap.Error(err))
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		games = append(games, &game)
	}

	return games, rows.Err()
}
