package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/minhtp/sobanhang/internal/ledger"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	repo.EXPECT().
		CreateEntry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *ledger.Entry) error {
			e.CreatedAt = time.Now()
			return nil
		})

	e, err := svc.Create(context.Background(), ledger.CreateParams{
		Kind:        ledger.KindExpense,
		Date:        date(2024, 1, 15),
		Amount:      2000000,
		Category:    ledger.CategoryRent,
		Description: "Tiền thuê mặt bằng tháng 1",
	})
	require.NoError(t, err)
	assert.Equal(t, ledger.KindExpense, e.Kind)
	assert.Equal(t, int64(2000000), e.Amount)
}

func TestService_Create_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ledger.NewService(ledger.NewMockRepository(ctrl))

	for _, amount := range []int64{0, -100} {
		_, err := svc.Create(context.Background(), ledger.CreateParams{
			Kind:     ledger.KindIncome,
			Amount:   amount,
			Category: ledger.CategorySales,
		})
		assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
	}
}

func TestService_Create_CategoryMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := ledger.NewService(ledger.NewMockRepository(ctrl))

	// Expense categories cannot be used on income entries and vice versa.
	_, err := svc.Create(context.Background(), ledger.CreateParams{
		Kind:     ledger.KindIncome,
		Amount:   50000,
		Category: ledger.CategoryRent,
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidCategory)

	_, err = svc.Create(context.Background(), ledger.CreateParams{
		Kind:     ledger.KindExpense,
		Amount:   50000,
		Category: ledger.CategorySales,
	})
	assert.ErrorIs(t, err, ledger.ErrInvalidCategory)
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ledger.ValidCategory(ledger.KindIncome, ledger.CategorySales))
	assert.True(t, ledger.ValidCategory(ledger.KindExpense, ledger.CategoryTransport))
	assert.False(t, ledger.ValidCategory(ledger.KindIncome, ledger.CategoryGoods))
	assert.False(t, ledger.ValidCategory(ledger.KindExpense, ledger.Category("fuel")))
}

func TestService_CategoryTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	repo.EXPECT().
		ListEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter ledger.ListFilter) ([]*ledger.Entry, error) {
			require.NotNil(t, filter.Kind)
			assert.Equal(t, ledger.KindExpense, *filter.Kind)

			return []*ledger.Entry{
				{Kind: ledger.KindExpense, Category: ledger.CategoryRent, Amount: 2000000},
				{Kind: ledger.KindExpense, Category: ledger.CategoryGoods, Amount: 500000},
				{Kind: ledger.KindExpense, Category: ledger.CategoryGoods, Amount: 300000},
			}, nil
		})

	totals, err := svc.CategoryTotals(context.Background(), ledger.KindExpense)
	require.NoError(t, err)

	assert.Equal(t, map[ledger.Category]int64{
		ledger.CategoryRent:  2000000,
		ledger.CategoryGoods: 800000,
	}, totals)
}

func TestService_MonthlySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	repo.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return([]*ledger.Entry{
		{Kind: ledger.KindExpense, Date: date(2024, 2, 3), Amount: 700000},
		{Kind: ledger.KindIncome, Date: date(2024, 1, 15), Amount: 500000},
		{Kind: ledger.KindIncome, Date: date(2024, 2, 20), Amount: 1000000},
		{Kind: ledger.KindExpense, Date: date(2024, 1, 28), Amount: 200000},
		{Kind: ledger.KindIncome, Date: date(2023, 12, 31), Amount: 300000},
	}, nil)

	summaries, err := svc.MonthlySummary(context.Background())
	require.NoError(t, err)

	// Ascending by month regardless of entry order.
	assert.Equal(t, []ledger.MonthSummary{
		{Month: "2023-12", Income: 300000, Expenses: 0, Balance: 300000},
		{Month: "2024-01", Income: 500000, Expenses: 200000, Balance: 300000},
		{Month: "2024-02", Income: 1000000, Expenses: 700000, Balance: 300000},
	}, summaries)
}

func TestService_MonthlySummary_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	repo.EXPECT().ListEntries(gomock.Any(), gomock.Any()).Return(nil, nil)

	summaries, err := svc.MonthlySummary(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestService_Totals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := ledger.NewMockRepository(ctrl)
	svc := ledger.NewService(repo)

	repo.EXPECT().
		ListEntries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter ledger.ListFilter) ([]*ledger.Entry, error) {
			require.NotNil(t, filter.Kind)

			switch *filter.Kind {
			case ledger.KindIncome:
				return []*ledger.Entry{{Amount: 500000}, {Amount: 185000}}, nil
			default:
				return []*ledger.Entry{{Amount: 120000}}, nil
			}
		}).
		Times(2)

	income, err := svc.TotalIncome(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(685000), income)

	expenses, err := svc.TotalExpenses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(120000), expenses)
}
