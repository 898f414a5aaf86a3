package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=stock
type Repository interface {
	// InitialStock returns the initial stock baseline of the product, or
	// ErrProductNotFound.
	InitialStock(ctx context.Context, productID uuid.UUID) (int64, error)

	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
}

type ListFilter struct {
	ProductID *uuid.UUID
	Type      *Type
	StartDate *time.Time
	EndDate   *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CurrentStock derives the quantity on hand by replaying the full transaction
// history against the product's initial stock. It is recomputed on every read
// rather than cached, so edits to transactions or the baseline can never leave
// a stale balance behind.
func (s *Service) CurrentStock(ctx context.Context, productID uuid.UUID) (int64, error) {
	initial, err := s.repo.InitialStock(ctx, productID)
	if err != nil {
		return 0, err
	}

	txs, err := s.repo.ListTransactions(ctx, ListFilter{ProductID: &productID})
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	return Replay(initial, txs), nil
}

// Replay folds transactions over an initial stock baseline. Insertion order
// within the set does not matter: the fold is a plain sum.
func Replay(initial int64, txs []*Transaction) int64 {
	stock := initial

	for _, tx := range txs {
		switch tx.Type {
		case TypeImport:
			stock += tx.Quantity
		case TypeExport:
			stock -= tx.Quantity
		}
	}

	return stock
}

type CreateParams struct {
	ProductID      uuid.UUID
	Type           Type
	Quantity       int64
	Date           time.Time
	RelatedParty   string
	Notes          string
	RelatedOrderID *uuid.UUID
}

// Admit validates a transaction and appends it to the log. Exports are
// checked against derived stock before admission; imports are always
// admitted. The check-then-append sequence assumes a single writer.
func (s *Service) Admit(ctx context.Context, params CreateParams) (*Transaction, error) {
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	switch params.Type {
	case TypeImport:
	case TypeExport:
		available, err := s.CurrentStock(ctx, params.ProductID)
		if err != nil {
			return nil, err
		}

		if params.Quantity > available {
			return nil, &InsufficientStockError{
				ProductID: params.ProductID,
				Requested: params.Quantity,
				Available: available,
			}
		}
	default:
		return nil, ErrUnknownType
	}

	tx := &Transaction{
		ProductID:      params.ProductID,
		Type:           params.Type,
		Quantity:       params.Quantity,
		Date:           params.Date,
		RelatedParty:   params.RelatedParty,
		Notes:          params.Notes,
		RelatedOrderID: params.RelatedOrderID,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("creating transaction: %w", err)
	}

	return tx, nil
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}
