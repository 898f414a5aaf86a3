package stock

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrUnknownType     = errors.New("unknown transaction type")
)

// InsufficientStockError rejects an export that would drive derived stock
// below zero. Available is the derived stock at admission time, so callers
// can show "only N available".
type InsufficientStockError struct {
	ProductID uuid.UUID
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

// Type represents the direction of a stock movement.
type Type string

const (
	TypeImport Type = "import"
	TypeExport Type = "export"
)

// Transaction is a recorded movement of stock. The log is append-only:
// transactions are immutable once admitted and there is no update path.
type Transaction struct {
	ID             uuid.UUID
	ProductID      uuid.UUID
	Type           Type
	Quantity       int64
	Date           time.Time
	RelatedParty   string
	Notes          string
	RelatedOrderID *uuid.UUID
	CreatedAt      time.Time
}
