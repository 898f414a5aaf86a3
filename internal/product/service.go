package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=product
type Repository interface {
	CreateProduct(ctx context.Context, p *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	UpdateProduct(ctx context.Context, p *Product) error

	// DeleteProduct removes the product together with every inventory
	// transaction referencing it, in one database transaction.
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// StockReader derives current stock for a product. Satisfied by the stock
// service.
type StockReader interface {
	CurrentStock(ctx context.Context, productID uuid.UUID) (int64, error)
}

type Service struct {
	repo   Repository
	stocks StockReader
}

func NewService(repo Repository, stocks StockReader) *Service {
	return &Service{repo: repo, stocks: stocks}
}

type CreateParams struct {
	Name          string
	SKU           string
	Unit          Unit
	CostPrice     int64
	SellingPrice  int64
	MinStockLevel int64
	InitialStock  int64
}

func (p CreateParams) validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}

	if p.CostPrice < 0 || p.SellingPrice < 0 || p.MinStockLevel < 0 || p.InitialStock < 0 {
		return ErrInvalidAmount
	}

	return nil
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Product, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	p := &Product{
		Name:          params.Name,
		SKU:           params.SKU,
		Unit:          params.Unit,
		CostPrice:     params.CostPrice,
		SellingPrice:  params.SellingPrice,
		MinStockLevel: params.MinStockLevel,
		InitialStock:  params.InitialStock,
	}
	if err := s.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	// A fresh product has no transactions yet.
	p.CurrentStock = p.InitialStock

	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	stock, err := s.stocks.CurrentStock(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("deriving stock: %w", err)
	}

	p.CurrentStock = stock

	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		stock, err := s.stocks.CurrentStock(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("deriving stock for %s: %w", p.ID, err)
		}

		p.CurrentStock = stock
	}

	return products, nil
}

// Update persists edited fields and re-derives CurrentStock afterwards.
// A caller-supplied CurrentStock is never trusted.
func (s *Service) Update(ctx context.Context, p *Product) error {
	if p.Name == "" {
		return ErrNameRequired
	}

	if p.CostPrice < 0 || p.SellingPrice < 0 || p.MinStockLevel < 0 || p.InitialStock < 0 {
		return ErrInvalidAmount
	}

	if err := s.repo.UpdateProduct(ctx, p); err != nil {
		return err
	}

	stock, err := s.stocks.CurrentStock(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("deriving stock: %w", err)
	}

	p.CurrentStock = stock

	return nil
}

// Delete removes the product and cascades to its inventory transactions.
// A deleted product cannot retain stock history that would be visible nowhere.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteProduct(ctx, id)
}
