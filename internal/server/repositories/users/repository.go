// Package users declares the server-side repository contract for user
// account rows.
package users

import (
	"context"

	"github.com/beautyease/beautyease/internal/server/models"
)

type Repository interface {
	// Create inserts a new user. A duplicate email yields shared.ErrEmailTaken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail looks a user up by email; absent users yield shared.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
