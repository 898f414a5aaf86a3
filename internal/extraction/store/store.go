package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindProductMatch(ctx context.Context, rawName string) (uuid.UUID, bool, error) {
	query := `
		SELECT product_id
		FROM product_name_mappings
		WHERE $1 ILIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, created_at DESC
		LIMIT 1
	`

	var productID uuid.UUID

	err := s.db.QueryRowContext(ctx, query, rawName).Scan(&productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return uuid.Nil, false, nil
		}

		return uuid.Nil, false, fmt.Errorf("finding product match: %w", err)
	}

	return productID, true, nil
}

func (s *Store) CreateProductMapping(ctx context.Context, rawPattern string, productID uuid.UUID) error {
	query := `
		INSERT INTO product_name_mappings (raw_pattern, product_id, created_at)
		VALUES ($1, $2, NOW())
	`

	_, err := s.db.ExecContext(ctx, query, rawPattern, productID)
	if err != nil {
		return fmt.Errorf("creating product mapping: %w", err)
	}

	return nil
}
