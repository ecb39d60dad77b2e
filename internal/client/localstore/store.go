// Package localstore persists client-side state in a local sqlite database:
// session metadata that survives restarts, plus the wishlist and cart.
package localstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/beautyease/beautyease/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// Metadata keys used by the session layer.
const (
	KeyUserID       = "user_id"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)

// Store bundles the local repositories over one sqlite database.
type Store struct {
	db       *sql.DB
	Metadata *MetadataRepository
	Wishlist *ProductSetRepository
	Cart     *ProductSetRepository
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (or creates) the sqlite database at dsn, runs migrations, and
// returns the repositories. The caller owns Close.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:       db,
		Metadata: NewMetadataRepository(db),
		Wishlist: NewProductSetRepository(db, "wishlist"),
		Cart:     NewProductSetRepository(db, "cart"),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
