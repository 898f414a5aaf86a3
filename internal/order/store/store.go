package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/ledger"
	"github.com/minhtp/sobanhang/internal/order"
	"github.com/minhtp/sobanhang/internal/stock"
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

// Expected column order: id, number, customer_name, date, status, total_amount,
// discount_percentage, other_income_amount, final_amount, total_cost, total_profit,
// payment_method, cash_received, change_given, created_at, updated_at
func scanOrder(s scanner) (*order.Order, error) {
	var o order.Order

	var statusStr string

	var customerName, paymentMethod sql.NullString

	if err := s.Scan(
		&o.ID, &o.Number, &customerName, &o.Date, &statusStr,
		&o.TotalAmount, &o.DiscountPercentage, &o.OtherIncomeAmount,
		&o.FinalAmount, &o.TotalCost, &o.TotalProfit,
		&paymentMethod, &o.CashReceived, &o.ChangeGiven,
		&o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}

	o.Status = order.Status(statusStr)
	o.CustomerName = customerName.String
	o.PaymentMethod = order.PaymentMethod(paymentMethod.String)

	return &o, nil
}

const selectOrderColumns = `
	o.id, o.number, o.customer_name, o.date, o.status, o.total_amount,
	o.discount_percentage, o.other_income_amount, o.final_amount, o.total_cost,
	o.total_profit, o.payment_method, o.cash_received, o.change_given,
	o.created_at, o.updated_at
`

func (s *Store) CreateOrder(ctx context.Context, o *order.Order) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO orders (number, customer_name, date, status, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err = dbTx.QueryRowContext(ctx, query,
		o.Number,
		o.CustomerName,
		o.Date,
		o.Status,
		o.TotalAmount,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}

	if err := insertItems(ctx, dbTx, o); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing order: %w", err)
	}

	return nil
}

func insertItems(ctx context.Context, dbTx *sql.Tx, o *order.Order) error {
	query := `
		INSERT INTO order_items (order_id, position, product_id, product_name, quantity, unit_price, cost_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i, item := range o.Items {
		if _, err := dbTx.ExecContext(ctx, query,
			o.ID, i, item.ProductID, item.ProductName, item.Quantity, item.UnitPrice, item.CostPrice,
		); err != nil {
			return fmt.Errorf("creating order item: %w", err)
		}
	}

	return nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + ` FROM orders o WHERE o.id = $1`

	o, err := scanOrder(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, order.ErrNotFound
		}

		return nil, fmt.Errorf("getting order: %w", err)
	}

	items, err := s.listItems(ctx, id)
	if err != nil {
		return nil, err
	}

	o.Items = items

	return o, nil
}

func (s *Store) listItems(ctx context.Context, orderID uuid.UUID) ([]order.Item, error) {
	query := `
		SELECT product_id, product_name, quantity, unit_price, cost_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY position ASC
	`

	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	var items []order.Item

	for rows.Next() {
		var item order.Item
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice, &item.CostPrice); err != nil {
			return nil, fmt.Errorf("scanning order item: %w", err)
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order items: %w", err)
	}

	return items, nil
}

func (s *Store) ListOrders(ctx context.Context, filter order.ListFilter) ([]*order.Order, error) {
	query := `SELECT ` + selectOrderColumns + ` FROM orders o WHERE 1=1`

	var args []any

	argIdx := 1

	if filter.Status != nil {
		query += fmt.Sprintf(" AND o.status = $%d", argIdx)

		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND o.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND o.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY o.date DESC, o.created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order

	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}

		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	for _, o := range orders {
		items, err := s.listItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}

		o.Items = items
	}

	return orders, nil
}

func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status order.Status) error {
	query := `
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`

	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return order.ErrNotFound
	}

	return nil
}

type settleTx struct {
	tx *sql.Tx
}

func (s *Store) BeginSettle(ctx context.Context) (order.SettleTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning settle tx: %w", err)
	}

	return &settleTx{tx: dbTx}, nil
}

func (stx *settleTx) Commit() error   { return stx.tx.Commit() }
func (stx *settleTx) Rollback() error { return stx.tx.Rollback() }

func (stx *settleTx) UpdateOrder(ctx context.Context, o *order.Order) error {
	query := `
		UPDATE orders
		SET status = $1, total_amount = $2, discount_percentage = $3,
		    other_income_amount = $4, final_amount = $5, total_cost = $6,
		    total_profit = $7, payment_method = $8, cash_received = $9,
		    change_given = $10, updated_at = NOW()
		WHERE id = $11
	`

	res, err := stx.tx.ExecContext(ctx, query,
		o.Status,
		o.TotalAmount,
		o.DiscountPercentage,
		o.OtherIncomeAmount,
		o.FinalAmount,
		o.TotalCost,
		o.TotalProfit,
		o.PaymentMethod,
		o.CashReceived,
		o.ChangeGiven,
		o.ID,
	)
	if err != nil {
		return fmt.Errorf("updating order: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return order.ErrNotFound
	}

	return nil
}

func (stx *settleTx) CreateStockTransactions(ctx context.Context, txs []*stock.Transaction) error {
	query := `
		INSERT INTO inventory_transactions (product_id, type, quantity, date, related_party, notes, related_order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	for _, tx := range txs {
		err := stx.tx.QueryRowContext(ctx, query,
			tx.ProductID,
			tx.Type,
			tx.Quantity,
			tx.Date,
			tx.RelatedParty,
			tx.Notes,
			tx.RelatedOrderID,
		).Scan(&tx.ID, &tx.CreatedAt)
		if err != nil {
			return fmt.Errorf("creating stock transaction: %w", err)
		}
	}

	return nil
}

func (stx *settleTx) CreateIncomeEntry(ctx context.Context, e *ledger.Entry) error {
	query := `
		INSERT INTO ledger_entries (kind, date, amount, category, description, receipt_image_url, related_order_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := stx.tx.QueryRowContext(ctx, query,
		e.Kind,
		e.Date,
		e.Amount,
		e.Category,
		e.Description,
		e.ReceiptImageURL,
		e.RelatedOrderID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating income entry: %w", err)
	}

	return nil
}
