package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/product"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, name, sku, unit, cost_price, selling_price, min_stock_level, initial_stock, created_at, updated_at
func scanProduct(s scanner) (*product.Product, error) {
	var p product.Product

	var sku sql.NullString

	var unitStr string

	if err := s.Scan(
		&p.ID, &p.Name, &sku, &unitStr,
		&p.CostPrice, &p.SellingPrice, &p.MinStockLevel, &p.InitialStock,
		&p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	p.SKU = sku.String
	p.Unit = product.Unit(unitStr)

	return &p, nil
}

const selectProductColumns = `
	p.id, p.name, p.sku, p.unit, p.cost_price, p.selling_price,
	p.min_stock_level, p.initial_stock, p.created_at, p.updated_at
`

func (s *Store) CreateProduct(ctx context.Context, p *product.Product) error {
	query := `
		INSERT INTO products (name, sku, unit, cost_price, selling_price, min_stock_level, initial_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		p.Name,
		p.SKU,
		p.Unit,
		p.CostPrice,
		p.SellingPrice,
		p.MinStockLevel,
		p.InitialStock,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}

	return nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products p WHERE p.id = $1`

	p, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, product.ErrNotFound
		}

		return nil, fmt.Errorf("getting product: %w", err)
	}

	return p, nil
}

func (s *Store) ListProducts(ctx context.Context) ([]*product.Product, error) {
	query := `SELECT ` + selectProductColumns + ` FROM products p ORDER BY p.name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []*product.Product

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

func (s *Store) UpdateProduct(ctx context.Context, p *product.Product) error {
	query := `
		UPDATE products
		SET name = $1, sku = $2, unit = $3, cost_price = $4, selling_price = $5,
		    min_stock_level = $6, initial_stock = $7, updated_at = NOW()
		WHERE id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.SKU,
		p.Unit,
		p.CostPrice,
		p.SellingPrice,
		p.MinStockLevel,
		p.InitialStock,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return product.ErrNotFound
	}

	return nil
}

// DeleteProduct removes the product and every inventory transaction
// referencing it. Both deletes run in one database transaction so the
// cascade cannot half-apply.
func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM inventory_transactions WHERE product_id = $1`, id); err != nil {
		return fmt.Errorf("deleting product transactions: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return product.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}

	return nil
}
