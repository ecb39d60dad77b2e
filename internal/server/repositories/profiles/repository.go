// Package profiles declares the server-side repository contract for
// per-user profile rows.
package profiles

import (
	"context"

	"github.com/beautyease/beautyease/internal/server/models"
)

type Repository interface {
	// Create inserts a fresh profile row for a newly registered user.
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)

	// Get returns the profile for userID; absent rows yield shared.ErrNotFound.
	Get(ctx context.Context, userID string) (*models.Profile, error)

	// Update overwrites the mutable profile fields and bumps updated_at.
	Update(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}
