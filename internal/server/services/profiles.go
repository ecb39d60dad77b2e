package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/beautyease/beautyease/internal/server/models"
	"github.com/beautyease/beautyease/internal/server/repositories/repomanager"
	"github.com/beautyease/beautyease/internal/shared"
	"github.com/beautyease/beautyease/internal/wire"
)

// ProfileService reads and partially updates per-user profile rows.
type ProfileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProfileService(db *sql.DB, m repomanager.RepositoryManager) *ProfileService {
	return &ProfileService{db: db, repomanager: m}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*models.Profile, error) {
	return s.repomanager.Profiles(s.db).Get(ctx, userID)
}

// Update applies a partial patch to the stored profile. Nil patch fields are
// left unchanged. A skin type outside the enumeration is rejected with
// ErrValidation before anything is written; an empty string clears the field
// back to "unset".
func (s *ProfileService) Update(ctx context.Context, userID string, patch *wire.ProfilePatch) (*models.Profile, error) {
	if patch.SkinType != nil && *patch.SkinType != "" && !shared.ValidSkinType(*patch.SkinType) {
		return nil, fmt.Errorf("%w: unknown skin type %q", shared.ErrValidation, *patch.SkinType)
	}
	if patch.FullName != nil && *patch.FullName == "" {
		return nil, fmt.Errorf("%w: full name cannot be empty", shared.ErrValidation)
	}
	if patch.AgeRange != nil && !shared.ValidAgeRange(*patch.AgeRange) {
		return nil, fmt.Errorf("%w: unknown age range %q", shared.ErrValidation, *patch.AgeRange)
	}

	repo := s.repomanager.Profiles(s.db)

	profile, err := repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.FullName != nil {
		profile.FullName = *patch.FullName
	}
	if patch.SkinType != nil {
		profile.SkinType = *patch.SkinType
	}
	if patch.SkinConcerns != nil {
		profile.SkinConcerns = *patch.SkinConcerns
	}
	if patch.AgeRange != nil {
		profile.AgeRange = *patch.AgeRange
	}

	return repo.Update(ctx, profile)
}
