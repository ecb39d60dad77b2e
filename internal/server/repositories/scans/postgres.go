package scans

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/beautyease/beautyease/internal/dbx"
	"github.com/beautyease/beautyease/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX. List-valued
// fields are stored as jsonb arrays.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, scan *models.Scan) (*models.Scan, error) {
	concerns, err := json.Marshal(scan.Concerns)
	if err != nil {
		return nil, fmt.Errorf("error encoding concerns: %w", err)
	}
	products, err := json.Marshal(scan.Products)
	if err != nil {
		return nil, fmt.Errorf("error encoding products: %w", err)
	}
	treatments, err := json.Marshal(scan.Treatments)
	if err != nil {
		return nil, fmt.Errorf("error encoding treatments: %w", err)
	}
	remedies, err := json.Marshal(scan.HomeRemedies)
	if err != nil {
		return nil, fmt.Errorf("error encoding home remedies: %w", err)
	}

	query := `
		INSERT INTO skin_analyses
			(user_id, skin_type, concerns, score, confidence,
			 products, treatments, home_remedies, needs_doctor, image_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, analysis_date
	`
	err = r.db.QueryRowContext(ctx, query,
		scan.UserID, scan.SkinType, concerns, scan.Score, scan.Confidence,
		products, treatments, remedies, scan.NeedsDoctor, scan.ImageKey).
		Scan(&scan.ID, &scan.AnalysisDate)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return scan, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*models.Scan, error) {
	query := `
		SELECT id, user_id, analysis_date, skin_type, concerns, score, confidence,
		       products, treatments, home_remedies, needs_doctor, image_key
		FROM skin_analyses
		WHERE user_id = $1
		ORDER BY analysis_date DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Scan
	for rows.Next() {
		scan := &models.Scan{}
		var concerns, products, treatments, remedies []byte
		err := rows.Scan(&scan.ID, &scan.UserID, &scan.AnalysisDate,
			&scan.SkinType, &concerns, &scan.Score, &scan.Confidence,
			&products, &treatments, &remedies, &scan.NeedsDoctor, &scan.ImageKey)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		for _, pair := range []struct {
			raw []byte
			dst *[]string
		}{
			{concerns, &scan.Concerns},
			{products, &scan.Products},
			{treatments, &scan.Treatments},
			{remedies, &scan.HomeRemedies},
		} {
			if err := json.Unmarshal(pair.raw, pair.dst); err != nil {
				return nil, fmt.Errorf("error decoding scan lists: %w", err)
			}
		}
		result = append(result, scan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
