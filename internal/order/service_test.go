package order_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/minhtp/sobanhang/internal/ledger"
	"github.com/minhtp/sobanhang/internal/order"
	"github.com/minhtp/sobanhang/internal/product"
	"github.com/minhtp/sobanhang/internal/stock"
)

type serviceMocks struct {
	repo     *order.MockRepository
	stocks   *order.MockStockReader
	products *order.MockProductReader
}

func newService(t *testing.T) (*order.Service, serviceMocks) {
	ctrl := gomock.NewController(t)

	m := serviceMocks{
		repo:     order.NewMockRepository(ctrl),
		stocks:   order.NewMockStockReader(ctrl),
		products: order.NewMockProductReader(ctrl),
	}

	return order.NewService(m.repo, m.stocks, m.products), m
}

func TestService_CreateDraft(t *testing.T) {
	svc, m := newService(t)

	coffee := &product.Product{
		ID:           uuid.New(),
		Name:         "Cà phê sữa",
		SellingPrice: 50000,
		CostPrice:    30000,
	}
	tea := &product.Product{
		ID:           uuid.New(),
		Name:         "Trà đào",
		SellingPrice: 100000,
		CostPrice:    60000,
	}

	m.products.EXPECT().GetProduct(gomock.Any(), coffee.ID).Return(coffee, nil)
	m.products.EXPECT().GetProduct(gomock.Any(), tea.ID).Return(tea, nil)
	m.repo.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *order.Order) error {
			o.ID = uuid.New()
			o.CreatedAt = time.Now()
			return nil
		})

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	o, err := svc.CreateDraft(context.Background(), order.CreateParams{
		CustomerName: "Chị Lan",
		Date:         date,
		Items: []order.ItemParams{
			{ProductID: coffee.ID, Quantity: 2},
			{ProductID: tea.ID, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, order.StatusNew, o.Status)
	assert.Equal(t, int64(200000), o.TotalAmount)
	assert.Regexp(t, `^DH-20240115-[0-9A-F]{6}$`, o.Number)

	// Prices and names are snapshots of the catalog at draft time.
	require.Len(t, o.Items, 2)
	assert.Equal(t, "Cà phê sữa", o.Items[0].ProductName)
	assert.Equal(t, int64(50000), o.Items[0].UnitPrice)
	assert.Equal(t, int64(30000), o.Items[0].CostPrice)
}

func TestService_CreateDraft_UnitPriceOverride(t *testing.T) {
	svc, m := newService(t)

	p := &product.Product{ID: uuid.New(), Name: "Bánh mì", SellingPrice: 20000, CostPrice: 12000}

	m.products.EXPECT().GetProduct(gomock.Any(), p.ID).Return(p, nil)
	m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)

	price := int64(18000)
	o, err := svc.CreateDraft(context.Background(), order.CreateParams{
		Items: []order.ItemParams{
			{ProductID: p.ID, Quantity: 3, UnitPrice: &price},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(18000), o.Items[0].UnitPrice)
	// Cost is still the catalog's, overrides only touch the selling price.
	assert.Equal(t, int64(12000), o.Items[0].CostPrice)
	assert.Equal(t, int64(54000), o.TotalAmount)
}

func TestService_CreateDraft_Empty(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateDraft(context.Background(), order.CreateParams{})
	assert.ErrorIs(t, err, order.ErrEmptyOrder)
}

func TestService_CreateDraft_InvalidQuantity(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateDraft(context.Background(), order.CreateParams{
		Items: []order.ItemParams{{ProductID: uuid.New(), Quantity: 0}},
	})
	assert.ErrorIs(t, err, order.ErrInvalidAmount)
}

func TestService_CreateDraft_ProductNotFound(t *testing.T) {
	svc, m := newService(t)

	id := uuid.New()
	m.products.EXPECT().GetProduct(gomock.Any(), id).Return(nil, product.ErrNotFound)

	_, err := svc.CreateDraft(context.Background(), order.CreateParams{
		Items: []order.ItemParams{{ProductID: id, Quantity: 1}},
	})
	assert.ErrorIs(t, err, product.ErrNotFound)
}

func draftOrder() *order.Order {
	coffeeID := uuid.New()
	teaID := uuid.New()

	return &order.Order{
		ID:           uuid.New(),
		Number:       "DH-20240115-3F9A2C",
		CustomerName: "Chị Lan",
		Date:         time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status:       order.StatusNew,
		TotalAmount:  200000,
		Items: []order.Item{
			{ProductID: coffeeID, ProductName: "Cà phê sữa", Quantity: 2, UnitPrice: 50000, CostPrice: 30000},
			{ProductID: teaID, ProductName: "Trà đào", Quantity: 1, UnitPrice: 100000, CostPrice: 60000},
		},
	}
}

func TestService_Settle(t *testing.T) {
	svc, m := newService(t)

	o := draftOrder()

	m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)
	m.stocks.EXPECT().CurrentStock(gomock.Any(), o.Items[0].ProductID).Return(int64(10), nil)
	m.stocks.EXPECT().CurrentStock(gomock.Any(), o.Items[1].ProductID).Return(int64(4), nil)

	stx := order.NewMockSettleTx(gomock.NewController(t))
	m.repo.EXPECT().BeginSettle(gomock.Any()).Return(stx, nil)

	stx.EXPECT().
		UpdateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *order.Order) error {
			assert.Equal(t, order.StatusCompleted, got.Status)
			assert.Equal(t, int64(185000), got.FinalAmount)
			return nil
		})
	stx.EXPECT().
		CreateStockTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, txs []*stock.Transaction) error {
			require.Len(t, txs, 2)
			for i, tx := range txs {
				assert.Equal(t, stock.TypeExport, tx.Type)
				assert.Equal(t, o.Items[i].ProductID, tx.ProductID)
				assert.Equal(t, o.Items[i].Quantity, tx.Quantity)
				require.NotNil(t, tx.RelatedOrderID)
				assert.Equal(t, o.ID, *tx.RelatedOrderID)
			}
			return nil
		})
	stx.EXPECT().
		CreateIncomeEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
			assert.Equal(t, ledger.KindIncome, e.Kind)
			assert.Equal(t, ledger.CategorySales, e.Category)
			assert.Equal(t, int64(185000), e.Amount)
			require.NotNil(t, e.RelatedOrderID)
			assert.Equal(t, o.ID, *e.RelatedOrderID)
			return nil
		})
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	got, err := svc.Settle(context.Background(), o.ID, order.SettleParams{
		DiscountPercentage: 10,
		OtherIncomeAmount:  5000,
		PaymentMethod:      order.PaymentCash,
		CashReceived:       200000,
	})
	require.NoError(t, err)

	assert.Equal(t, order.StatusCompleted, got.Status)
	assert.Equal(t, int64(200000), got.TotalAmount)
	assert.Equal(t, int64(185000), got.FinalAmount)
	assert.Equal(t, int64(120000), got.TotalCost)
	assert.Equal(t, int64(65000), got.TotalProfit)
	assert.Equal(t, int64(200000), got.CashReceived)
	assert.Equal(t, int64(15000), got.ChangeGiven)
}

func TestService_Settle_UnderPayment(t *testing.T) {
	svc, m := newService(t)

	o := draftOrder()
	m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)

	// Payment is validated before stock; no transaction is ever begun.
	_, err := svc.Settle(context.Background(), o.ID, order.SettleParams{
		PaymentMethod: order.PaymentCash,
		CashReceived:  150000,
	})
	assert.ErrorIs(t, err, order.ErrUnderPayment)
	assert.Equal(t, order.StatusNew, o.Status)
}

func TestService_Settle_TransferNeedsNoCash(t *testing.T) {
	svc, m := newService(t)

	o := draftOrder()

	m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)
	m.stocks.EXPECT().CurrentStock(gomock.Any(), gomock.Any()).Return(int64(100), nil).Times(2)

	stx := order.NewMockSettleTx(gomock.NewController(t))
	m.repo.EXPECT().BeginSettle(gomock.Any()).Return(stx, nil)
	stx.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil)
	stx.EXPECT().CreateStockTransactions(gomock.Any(), gomock.Any()).Return(nil)
	stx.EXPECT().CreateIncomeEntry(gomock.Any(), gomock.Any()).Return(nil)
	stx.EXPECT().Commit().Return(nil)
	stx.EXPECT().Rollback().Return(nil)

	got, err := svc.Settle(context.Background(), o.ID, order.SettleParams{
		PaymentMethod: order.PaymentTransfer,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), got.CashReceived)
	assert.Equal(t, int64(0), got.ChangeGiven)
}

func TestService_Settle_InsufficientStock(t *testing.T) {
	svc, m := newService(t)

	o := draftOrder()

	m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)
	m.stocks.EXPECT().CurrentStock(gomock.Any(), o.Items[0].ProductID).Return(int64(1), nil)

	// BeginSettle is never expected: a failing line must leave no writes.
	_, err := svc.Settle(context.Background(), o.ID, order.SettleParams{
		PaymentMethod: order.PaymentTransfer,
	})

	var insufficient *stock.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, o.Items[0].ProductID, insufficient.ProductID)
	assert.Equal(t, int64(2), insufficient.Requested)
	assert.Equal(t, int64(1), insufficient.Available)
}

func TestService_Settle_DuplicateLinesShareStock(t *testing.T) {
	svc, m := newService(t)

	productID := uuid.New()
	o := &order.Order{
		ID:     uuid.New(),
		Number: "DH-20240115-AB12CD",
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Status: order.StatusNew,
		Items: []order.Item{
			{ProductID: productID, ProductName: "Nước suối", Quantity: 3, UnitPrice: 10000},
			{ProductID: productID, ProductName: "Nước suối", Quantity: 3, UnitPrice: 10000},
		},
	}

	m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)
	// Stock of 4 covers either line alone but not both together.
	m.stocks.EXPECT().CurrentStock(gomock.Any(), productID).Return(int64(4), nil)

	_, err := svc.Settle(context.Background(), o.ID, order.SettleParams{
		PaymentMethod: order.PaymentTransfer,
	})

	var insufficient *stock.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(6), insufficient.Requested)
	assert.Equal(t, int64(4), insufficient.Available)
}

func TestService_Settle_RollsBackOnWriteFailure(t *testing.T) {
	svc, m := newService(t)

	o := draftOrder()

	m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)
	m.stocks.EXPECT().CurrentStock(gomock.Any(), gomock.Any()).Return(int64(100), nil).Times(2)

	stx := order.NewMockSettleTx(gomock.NewController(t))
	m.repo.EXPECT().BeginSettle(gomock.Any()).Return(stx, nil)
	stx.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil)
	stx.EXPECT().CreateStockTransactions(gomock.Any(), gomock.Any()).Return(assert.AnError)
	stx.EXPECT().Rollback().Return(nil)

	_, err := svc.Settle(context.Background(), o.ID, order.SettleParams{
		PaymentMethod: order.PaymentTransfer,
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestService_Settle_NotNew(t *testing.T) {
	svc, m := newService(t)

	for _, status := range []order.Status{order.StatusCompleted, order.StatusCancelled} {
		o := draftOrder()
		o.Status = status

		m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)

		_, err := svc.Settle(context.Background(), o.ID, order.SettleParams{
			PaymentMethod: order.PaymentTransfer,
		})
		assert.ErrorIs(t, err, order.ErrOrderNotNew)
	}
}

func TestService_Settle_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params order.SettleParams
	}{
		{"negative discount", order.SettleParams{DiscountPercentage: -1, PaymentMethod: order.PaymentTransfer}},
		{"discount over 100", order.SettleParams{DiscountPercentage: 101, PaymentMethod: order.PaymentTransfer}},
		{"negative other income", order.SettleParams{OtherIncomeAmount: -500, PaymentMethod: order.PaymentTransfer}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(t)

			o := draftOrder()
			m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)

			_, err := svc.Settle(context.Background(), o.ID, tt.params)
			assert.ErrorIs(t, err, order.ErrInvalidAmount)
		})
	}
}

func TestService_Cancel(t *testing.T) {
	svc, m := newService(t)

	o := draftOrder()

	m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)
	m.repo.EXPECT().UpdateStatus(gomock.Any(), o.ID, order.StatusCancelled).Return(nil)

	require.NoError(t, svc.Cancel(context.Background(), o.ID))
}

func TestService_Cancel_Completed(t *testing.T) {
	svc, m := newService(t)

	o := draftOrder()
	o.Status = order.StatusCompleted

	m.repo.EXPECT().GetOrder(gomock.Any(), o.ID).Return(o, nil)

	err := svc.Cancel(context.Background(), o.ID)
	assert.ErrorIs(t, err, order.ErrOrderNotNew)
}
