package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/beautyease/beautyease/internal/dbx"
	"github.com/beautyease/beautyease/internal/server/models"
	"github.com/beautyease/beautyease/internal/shared"
)

// PostgresRepository implements Repository over dbx.DBTX (satisfied by
// *sql.DB or *sql.Tx). Skin concerns are stored as a jsonb array.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	concerns, err := json.Marshal(profile.SkinConcerns)
	if err != nil {
		return nil, fmt.Errorf("error encoding skin concerns: %w", err)
	}

	query := `
		INSERT INTO profiles (user_id, email, full_name, skin_type, skin_concerns, age_range)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.Email, profile.FullName,
		profile.SkinType, concerns, profile.AgeRange).
		Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT user_id, email, full_name, skin_type, skin_concerns, age_range, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	profile := &models.Profile{}
	var concerns []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID, &profile.Email, &profile.FullName,
		&profile.SkinType, &concerns, &profile.AgeRange,
		&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := json.Unmarshal(concerns, &profile.SkinConcerns); err != nil {
		return nil, fmt.Errorf("error decoding skin concerns: %w", err)
	}

	return profile, nil
}

func (r *PostgresRepository) Update(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	concerns, err := json.Marshal(profile.SkinConcerns)
	if err != nil {
		return nil, fmt.Errorf("error encoding skin concerns: %w", err)
	}

	query := `
		UPDATE profiles
		SET full_name = $2, skin_type = $3, skin_concerns = $4, age_range = $5, updated_at = now()
		WHERE user_id = $1
		RETURNING updated_at
	`
	err = r.db.QueryRowContext(ctx, query,
		profile.UserID, profile.FullName, profile.SkinType,
		concerns, profile.AgeRange).
		Scan(&profile.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}
