package localstore

import (
	"context"
	"fmt"

	"github.com/beautyease/beautyease/internal/dbx"
)

// ProductSetRepository stores a set of product IDs in a single-column
// table. The wishlist and cart share this shape.
type ProductSetRepository struct {
	db    dbx.DBTX
	table string
}

// NewProductSetRepository binds a repository to one of the known set
// tables ("wishlist" or "cart"). The table name is never caller-supplied.
func NewProductSetRepository(db dbx.DBTX, table string) *ProductSetRepository {
	return &ProductSetRepository{db: db, table: table}
}

func (r *ProductSetRepository) Add(ctx context.Context, productID string) error {
	q := fmt.Sprintf(`INSERT INTO %s (product_id) VALUES (?) ON CONFLICT(product_id) DO NOTHING`, r.table)
	if _, err := r.db.ExecContext(ctx, q, productID); err != nil {
		return fmt.Errorf("failed to add to %s: %w", r.table, err)
	}
	return nil
}

func (r *ProductSetRepository) Remove(ctx context.Context, productID string) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE product_id = ?`, r.table)
	if _, err := r.db.ExecContext(ctx, q, productID); err != nil {
		return fmt.Errorf("failed to remove from %s: %w", r.table, err)
	}
	return nil
}

// Toggle adds the product if absent and removes it if present, returning
// whether the product is in the set afterwards.
func (r *ProductSetRepository) Toggle(ctx context.Context, productID string) (bool, error) {
	in, err := r.Contains(ctx, productID)
	if err != nil {
		return false, err
	}
	if in {
		return false, r.Remove(ctx, productID)
	}
	return true, r.Add(ctx, productID)
}

func (r *ProductSetRepository) Contains(ctx context.Context, productID string) (bool, error) {
	q := fmt.Sprintf(`SELECT COUNT(1) FROM %s WHERE product_id = ?`, r.table)
	var n int
	if err := r.db.QueryRowContext(ctx, q, productID).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", r.table, err)
	}
	return n > 0, nil
}

func (r *ProductSetRepository) List(ctx context.Context) ([]string, error) {
	q := fmt.Sprintf(`SELECT product_id FROM %s ORDER BY product_id`, r.table)
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", r.table, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", r.table, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", r.table, err)
	}
	return ids, nil
}

func (r *ProductSetRepository) Clear(ctx context.Context) error {
	q := fmt.Sprintf(`DELETE FROM %s`, r.table)
	if _, err := r.db.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("failed to clear %s: %w", r.table, err)
	}
	return nil
}
