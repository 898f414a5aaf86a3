package order

import "math"

// Pure order arithmetic. No side effects; everything an invoice shows is
// derived from these.

// LineTotal is quantity times the snapshotted unit price.
func LineTotal(item Item) int64 {
	return item.Quantity * item.UnitPrice
}

// Subtotal sums line totals over all items.
func Subtotal(items []Item) int64 {
	var sum int64
	for _, item := range items {
		sum += LineTotal(item)
	}

	return sum
}

// AmountDue applies the discount percentage to the subtotal, adds other
// income and clamps at zero. The discounted subtotal is rounded to the
// nearest whole VND before other income is added.
func AmountDue(subtotal int64, discountPct float64, otherIncome int64) int64 {
	discounted := int64(math.Round(float64(subtotal) * (1 - discountPct/100)))

	due := discounted + otherIncome
	if due < 0 {
		return 0
	}

	return due
}

// ChangeDue is the cash handed back to the customer. Only meaningful for
// cash payments.
func ChangeDue(cashReceived, amountDue int64) int64 {
	change := cashReceived - amountDue
	if change < 0 {
		return 0
	}

	return change
}

// TotalCost sums quantity times the snapshotted cost price over all items.
func TotalCost(items []Item) int64 {
	var sum int64
	for _, item := range items {
		sum += item.Quantity * item.CostPrice
	}

	return sum
}

// Profit is the amount due minus the total cost.
func Profit(amountDue, totalCost int64) int64 {
	return amountDue - totalCost
}
