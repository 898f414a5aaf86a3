package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/stock"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row from the scanner.
// Expected column order: id, product_id, type, quantity, date, related_party, notes, related_order_id, created_at
func scanTransaction(s scanner) (*stock.Transaction, error) {
	var tx stock.Transaction

	var typeStr string

	var relatedParty, notes sql.NullString

	var relatedOrderID *uuid.UUID

	if err := s.Scan(
		&tx.ID, &tx.ProductID, &typeStr, &tx.Quantity, &tx.Date,
		&relatedParty, &notes, &relatedOrderID, &tx.CreatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = stock.Type(typeStr)
	tx.RelatedParty = relatedParty.String
	tx.Notes = notes.String
	tx.RelatedOrderID = relatedOrderID

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.product_id, t.type, t.quantity, t.date,
	t.related_party, t.notes, t.related_order_id, t.created_at
`

func (s *Store) InitialStock(ctx context.Context, productID uuid.UUID) (int64, error) {
	query := `SELECT initial_stock FROM products WHERE id = $1`

	var initial int64

	err := s.db.QueryRowContext(ctx, query, productID).Scan(&initial)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, stock.ErrProductNotFound
		}

		return 0, fmt.Errorf("getting initial stock: %w", err)
	}

	return initial, nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *stock.Transaction) error {
	query := `
		INSERT INTO inventory_transactions (product_id, type, quantity, date, related_party, notes, related_order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.ProductID,
		tx.Type,
		tx.Quantity,
		tx.Date,
		tx.RelatedParty,
		tx.Notes,
		tx.RelatedOrderID,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating inventory transaction: %w", err)
	}

	return nil
}

func (s *Store) ListTransactions(ctx context.Context, filter stock.ListFilter) ([]*stock.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM inventory_transactions t
		WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.ProductID != nil {
		query += fmt.Sprintf(" AND t.product_id = $%d", argIdx)

		args = append(args, *filter.ProductID)
		argIdx++
	}

	if filter.Type != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY t.date ASC, t.created_at ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing inventory transactions: %w", err)
	}
	defer rows.Close()

	var txs []*stock.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning inventory transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating inventory transactions: %w", err)
	}

	return txs, nil
}
