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

// ScanService stores and lists saved skin-analysis results.
type ScanService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewScanService(db *sql.DB, m repomanager.RepositoryManager) *ScanService {
	return &ScanService{db: db, repomanager: m}
}

// Save persists one analysis result for the user. The concerns list length
// is bounded by the analyzer contract; it is re-checked here because rows
// are immutable once written.
func (s *ScanService) Save(ctx context.Context, userID string, req *wire.SaveScanRequest) (*models.Scan, error) {
	if n := len(req.Concerns); n < 1 || n > 3 {
		return nil, fmt.Errorf("%w: concerns list must have 1-3 entries", shared.ErrValidation)
	}

	scan := &models.Scan{
		UserID:       userID,
		SkinType:     req.SkinType,
		Concerns:     req.Concerns,
		Score:        req.Score,
		Confidence:   req.Confidence,
		Products:     req.Recommendations.Products,
		Treatments:   req.Recommendations.Treatments,
		HomeRemedies: req.Recommendations.HomeRemedies,
		NeedsDoctor:  req.Recommendations.DoctorConsultation,
		ImageKey:     req.ImageKey,
	}

	return s.repomanager.Scans(s.db).Create(ctx, scan)
}

// List returns the user's saved scans, newest first.
func (s *ScanService) List(ctx context.Context, userID string, limit int) ([]*models.Scan, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repomanager.Scans(s.db).ListByUser(ctx, userID, limit)
}
