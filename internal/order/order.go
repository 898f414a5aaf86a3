package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order has no valid line items")
	ErrUnderPayment  = errors.New("cash received is less than the amount due")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrOrderNotNew   = errors.New("order is not in status new")
)

// Status represents the lifecycle state of a sales order.
type Status string

const (
	StatusNew       Status = "new"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// PaymentMethod is how a completed order was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "cash"
	PaymentTransfer PaymentMethod = "transfer"
)

// Item is one order line. ProductName, UnitPrice and CostPrice are snapshots
// taken at order time; they are never re-derived from the live product, so a
// later catalog edit cannot rewrite history.
type Item struct {
	ProductID   uuid.UUID
	ProductName string
	Quantity    int64
	UnitPrice   int64
	CostPrice   int64
}

// Order is a customer sales order. Amounts are in VND.
//
// A draft (status new) carries only items and TotalAmount. Settlement fills
// the discount, payment and profit fields and moves the order to completed.
type Order struct {
	ID                 uuid.UUID
	Number             string
	CustomerName       string
	Date               time.Time
	Items              []Item
	Status             Status
	TotalAmount        int64
	DiscountPercentage float64
	OtherIncomeAmount  int64
	FinalAmount        int64
	TotalCost          int64
	TotalProfit        int64
	PaymentMethod      PaymentMethod
	CashReceived       int64
	ChangeGiven        int64
	CreatedAt          time.Time
	UpdatedAt          *time.Time
}
