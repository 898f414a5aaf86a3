package product_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/minhtp/sobanhang/internal/product"
)

type serviceMocks struct {
	repo   *product.MockRepository
	stocks *product.MockStockReader
}

func newService(t *testing.T) (*product.Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:   product.NewMockRepository(ctrl),
		stocks: product.NewMockStockReader(ctrl),
	}

	return product.NewService(m.repo, m.stocks), m
}

func TestService_Create(t *testing.T) {
	svc, m := newService(t)

	m.repo.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *product.Product) error {
			p.ID = uuid.New()
			p.CreatedAt = time.Now()
			return nil
		})

	p, err := svc.Create(context.Background(), product.CreateParams{
		Name:         "Cà phê sữa",
		SKU:          "CF-001",
		Unit:         product.UnitPiece,
		CostPrice:    30000,
		SellingPrice: 50000,
		InitialStock: 10,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	// No transactions exist yet, so derived stock equals the baseline.
	assert.Equal(t, int64(10), p.CurrentStock)
}

func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name    string
		params  product.CreateParams
		wantErr error
	}{
		{"missing name", product.CreateParams{SellingPrice: 100}, product.ErrNameRequired},
		{"negative cost", product.CreateParams{Name: "x", CostPrice: -1}, product.ErrInvalidAmount},
		{"negative selling price", product.CreateParams{Name: "x", SellingPrice: -1}, product.ErrInvalidAmount},
		{"negative initial stock", product.CreateParams{Name: "x", InitialStock: -5}, product.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(t)

			_, err := svc.Create(context.Background(), tt.params)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Get_DerivesStock(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()

	m.repo.EXPECT().GetProduct(gomock.Any(), id).Return(&product.Product{
		ID:           id,
		Name:         "Trà đào",
		InitialStock: 10,
	}, nil)
	m.stocks.EXPECT().CurrentStock(gomock.Any(), id).Return(int64(12), nil)

	p, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(12), p.CurrentStock)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()
	m.repo.EXPECT().GetProduct(gomock.Any(), id).Return(nil, product.ErrNotFound)

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func TestService_List_DerivesStockPerProduct(t *testing.T) {
	svc, m := newService(t)

	a := &product.Product{ID: uuid.New(), Name: "A"}
	b := &product.Product{ID: uuid.New(), Name: "B"}

	m.repo.EXPECT().ListProducts(gomock.Any()).Return([]*product.Product{a, b}, nil)
	m.stocks.EXPECT().CurrentStock(gomock.Any(), a.ID).Return(int64(3), nil)
	m.stocks.EXPECT().CurrentStock(gomock.Any(), b.ID).Return(int64(0), nil)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(3), products[0].CurrentStock)
	assert.Equal(t, int64(0), products[1].CurrentStock)
}

func TestService_Update_RederivesStock(t *testing.T) {
	svc, m := newService(t)

	p := &product.Product{
		ID:           uuid.New(),
		Name:         "Cà phê sữa",
		SellingPrice: 55000,
		// A caller trying to smuggle in a stock value.
		CurrentStock: 9999,
	}

	m.repo.EXPECT().UpdateProduct(gomock.Any(), p).Return(nil)
	m.stocks.EXPECT().CurrentStock(gomock.Any(), p.ID).Return(int64(7), nil)

	require.NoError(t, svc.Update(context.Background(), p))
	assert.Equal(t, int64(7), p.CurrentStock)
}

func TestService_Update_Validation(t *testing.T) {
	svc, _ := newService(t)

	err := svc.Update(context.Background(), &product.Product{ID: uuid.New()})
	assert.ErrorIs(t, err, product.ErrNameRequired)

	err = svc.Update(context.Background(), &product.Product{ID: uuid.New(), Name: "x", CostPrice: -1})
	assert.ErrorIs(t, err, product.ErrInvalidAmount)
}

func TestService_Delete(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()
	m.repo.EXPECT().DeleteProduct(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
}
