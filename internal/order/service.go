package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/minhtp/sobanhang/internal/ledger"
	"github.com/minhtp/sobanhang/internal/product"
	"github.com/minhtp/sobanhang/internal/stock"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=order
type Repository interface {
	CreateOrder(ctx context.Context, o *Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*Order, error)
	ListOrders(ctx context.Context, filter ListFilter) ([]*Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error

	BeginSettle(ctx context.Context) (SettleTx, error)
}

// SettleTx groups the writes of one settlement so they commit or roll back
// together: the completed order, its export stock transactions and the
// income entry.
type SettleTx interface {
	UpdateOrder(ctx context.Context, o *Order) error
	CreateStockTransactions(ctx context.Context, txs []*stock.Transaction) error
	CreateIncomeEntry(ctx context.Context, e *ledger.Entry) error
	Commit() error
	Rollback() error
}

// StockReader derives current stock. Satisfied by the stock service.
type StockReader interface {
	CurrentStock(ctx context.Context, productID uuid.UUID) (int64, error)
}

// ProductReader resolves catalog products for price snapshots at draft time.
type ProductReader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*product.Product, error)
}

type Service struct {
	repo     Repository
	stocks   StockReader
	products ProductReader
}

func NewService(repo Repository, stocks StockReader, products ProductReader) *Service {
	return &Service{repo: repo, stocks: stocks, products: products}
}

type ItemParams struct {
	ProductID uuid.UUID
	Quantity  int64
	// UnitPrice overrides the catalog selling price when set. Cost price is
	// always snapshotted from the catalog.
	UnitPrice *int64
}

type CreateParams struct {
	CustomerName string
	Date         time.Time
	Items        []ItemParams
}

type ListFilter struct {
	Status    *Status
	StartDate *time.Time
	EndDate   *time.Time
}

// CreateDraft builds a new order in status new, snapshotting product names
// and prices at order time. No stock moves and no payment fields are set.
func (s *Service) CreateDraft(ctx context.Context, params CreateParams) (*Order, error) {
	if len(params.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	items := make([]Item, 0, len(params.Items))

	for _, ip := range params.Items {
		if ip.Quantity <= 0 {
			return nil, ErrInvalidAmount
		}

		p, err := s.products.GetProduct(ctx, ip.ProductID)
		if err != nil {
			return nil, fmt.Errorf("resolving product %s: %w", ip.ProductID, err)
		}

		unitPrice := p.SellingPrice
		if ip.UnitPrice != nil {
			if *ip.UnitPrice < 0 {
				return nil, ErrInvalidAmount
			}

			unitPrice = *ip.UnitPrice
		}

		items = append(items, Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    ip.Quantity,
			UnitPrice:   unitPrice,
			CostPrice:   p.CostPrice,
		})
	}

	date := params.Date
	if date.IsZero() {
		date = time.Now()
	}

	o := &Order{
		Number:       generateNumber(date),
		CustomerName: params.CustomerName,
		Date:         date,
		Items:        items,
		Status:       StatusNew,
		TotalAmount:  Subtotal(items),
	}
	if err := s.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	return o, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	return s.repo.GetOrder(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Order, error) {
	return s.repo.ListOrders(ctx, filter)
}

type SettleParams struct {
	DiscountPercentage float64
	OtherIncomeAmount  int64
	PaymentMethod      PaymentMethod
	CashReceived       int64
}

// Settle finalizes a draft order: validates payment and every line's stock,
// computes the totals, and commits the completed order, one export stock
// transaction per line and the sales income entry as one unit. Every export
// is validated against derived stock before anything is written, so a
// failing line leaves no partial state behind.
func (s *Service) Settle(ctx context.Context, id uuid.UUID, params SettleParams) (*Order, error) {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if o.Status != StatusNew {
		return nil, ErrOrderNotNew
	}

	if err := validateItems(o.Items); err != nil {
		return nil, err
	}

	if params.DiscountPercentage < 0 || params.DiscountPercentage > 100 || params.OtherIncomeAmount < 0 {
		return nil, ErrInvalidAmount
	}

	subtotal := Subtotal(o.Items)
	due := AmountDue(subtotal, params.DiscountPercentage, params.OtherIncomeAmount)

	if params.PaymentMethod == PaymentCash && params.CashReceived < due {
		return nil, ErrUnderPayment
	}

	if err := s.validateExports(ctx, o.Items); err != nil {
		return nil, err
	}

	o.Status = StatusCompleted
	o.TotalAmount = subtotal
	o.DiscountPercentage = params.DiscountPercentage
	o.OtherIncomeAmount = params.OtherIncomeAmount
	o.FinalAmount = due
	o.TotalCost = TotalCost(o.Items)
	o.TotalProfit = Profit(due, o.TotalCost)
	o.PaymentMethod = params.PaymentMethod

	if params.PaymentMethod == PaymentCash {
		o.CashReceived = params.CashReceived
		o.ChangeGiven = ChangeDue(params.CashReceived, due)
	}

	stx, err := s.repo.BeginSettle(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin settle: %w", err)
	}
	defer stx.Rollback()

	if err := stx.UpdateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}

	if err := stx.CreateStockTransactions(ctx, exportsFor(o)); err != nil {
		return nil, fmt.Errorf("create stock transactions: %w", err)
	}

	income := &ledger.Entry{
		Kind:           ledger.KindIncome,
		Date:           o.Date,
		Amount:         o.FinalAmount,
		Category:       ledger.CategorySales,
		Description:    fmt.Sprintf("Sales order %s", o.Number),
		RelatedOrderID: &o.ID,
	}
	if err := stx.CreateIncomeEntry(ctx, income); err != nil {
		return nil, fmt.Errorf("create income entry: %w", err)
	}

	if err := stx.Commit(); err != nil {
		return nil, fmt.Errorf("commit settle: %w", err)
	}

	return o, nil
}

// Cancel moves a draft order to cancelled. Stock is untouched: no export was
// ever committed for a non-completed order.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	o, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		return err
	}

	if o.Status != StatusNew {
		return ErrOrderNotNew
	}

	return s.repo.UpdateStatus(ctx, id, StatusCancelled)
}

func validateItems(items []Item) error {
	valid := false

	for _, item := range items {
		if item.Quantity > 0 {
			valid = true
		}
	}

	if !valid {
		return ErrEmptyOrder
	}

	return nil
}

// validateExports checks every line against derived stock before any write.
// Demand is accumulated per product so two lines of the same product cannot
// each pass against the full balance.
func (s *Service) validateExports(ctx context.Context, items []Item) error {
	demand := make(map[uuid.UUID]int64)
	for _, item := range items {
		demand[item.ProductID] += item.Quantity
	}

	for _, item := range items {
		qty, pending := demand[item.ProductID]
		if !pending {
			continue
		}

		delete(demand, item.ProductID)

		available, err := s.stocks.CurrentStock(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("deriving stock for %s: %w", item.ProductID, err)
		}

		if qty > available {
			return &stock.InsufficientStockError{
				ProductID: item.ProductID,
				Requested: qty,
				Available: available,
			}
		}
	}

	return nil
}

func exportsFor(o *Order) []*stock.Transaction {
	txs := make([]*stock.Transaction, 0, len(o.Items))
	for _, item := range o.Items {
		txs = append(txs, &stock.Transaction{
			ProductID:      item.ProductID,
			Type:           stock.TypeExport,
			Quantity:       item.Quantity,
			Date:           o.Date,
			Notes:          fmt.Sprintf("Sales order %s", o.Number),
			RelatedOrderID: &o.ID,
		})
	}

	return txs
}

// generateNumber builds a human-readable unique order number like
// DH-20240115-3F9A2C.
func generateNumber(date time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:6])
	return fmt.Sprintf("DH-%s-%s", date.Format("20060102"), suffix)
}
