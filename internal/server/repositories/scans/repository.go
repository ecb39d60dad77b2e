// Package scans declares the server-side repository contract for saved
// skin-analysis rows.
package scans

import (
	"context"

	"github.com/beautyease/beautyease/internal/server/models"
)

type Repository interface {
	// Create inserts a new scan row. Scan rows are immutable after creation.
	Create(ctx context.Context, scan *models.Scan) (*models.Scan, error)

	// ListByUser returns the user's scans, newest first, up to limit rows.
	ListByUser(ctx context.Context, userID string, limit int) ([]*models.Scan, error)
}
