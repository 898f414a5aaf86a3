package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minhtp/sobanhang/internal/order"
)

func TestSubtotal(t *testing.T) {
	items := []order.Item{
		{Quantity: 2, UnitPrice: 50000, CostPrice: 30000},
		{Quantity: 1, UnitPrice: 100000, CostPrice: 60000},
	}

	assert.Equal(t, int64(100000), order.LineTotal(items[0]))
	assert.Equal(t, int64(200000), order.Subtotal(items))
	assert.Equal(t, int64(120000), order.TotalCost(items))
}

func TestAmountDue(t *testing.T) {
	type testCase struct {
		name        string
		subtotal    int64
		discountPct float64
		otherIncome int64
		want        int64
	}

	tests := []testCase{
		{
			name:        "NoDiscountNoOther",
			subtotal:    200000,
			discountPct: 0,
			otherIncome: 0,
			want:        200000,
		},
		{
			name:        "TenPercentPlusOther",
			subtotal:    200000,
			discountPct: 10,
			otherIncome: 5000,
			want:        185000,
		},
		{
			name:        "FullDiscount",
			subtotal:    200000,
			discountPct: 100,
			otherIncome: 0,
			want:        0,
		},
		{
			name:        "FullDiscountWithOther",
			subtotal:    200000,
			discountPct: 100,
			otherIncome: 7000,
			want:        7000,
		},
		{
			name:        "RoundsDiscountedSubtotal",
			subtotal:    99999,
			discountPct: 50,
			otherIncome: 0,
			want:        50000, // 49999.5 rounds up
		},
		{
			name:        "ZeroSubtotal",
			subtotal:    0,
			discountPct: 50,
			otherIncome: 0,
			want:        0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := order.AmountDue(tt.subtotal, tt.discountPct, tt.otherIncome)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}

func TestChangeDue(t *testing.T) {
	assert.Equal(t, int64(15000), order.ChangeDue(200000, 185000))
	assert.Equal(t, int64(0), order.ChangeDue(185000, 185000))
	// Underpayment is rejected before ChangeDue is ever computed; the clamp
	// keeps the function total anyway.
	assert.Equal(t, int64(0), order.ChangeDue(150000, 185000))
}

func TestProfit(t *testing.T) {
	assert.Equal(t, int64(65000), order.Profit(185000, 120000))
	assert.Equal(t, int64(-20000), order.Profit(100000, 120000))
}
