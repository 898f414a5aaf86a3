package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("entry not found")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidCategory = errors.New("category does not belong to entry kind")
)

// Kind separates the two sides of the cash-flow book.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Category is a closed enum per entry kind.
type Category string

const (
	// Income categories.
	CategorySales       Category = "sales"
	CategoryService     Category = "service"
	CategoryOtherIncome Category = "other_income"

	// Expense categories.
	CategoryGoods        Category = "goods"
	CategoryRent         Category = "rent"
	CategoryUtilities    Category = "utilities"
	CategorySalary       Category = "salary"
	CategoryTransport    Category = "transport"
	CategoryOtherExpense Category = "other_expense"
)

var categoriesByKind = map[Kind][]Category{
	KindIncome:  {CategorySales, CategoryService, CategoryOtherIncome},
	KindExpense: {CategoryGoods, CategoryRent, CategoryUtilities, CategorySalary, CategoryTransport, CategoryOtherExpense},
}

// ValidCategory reports whether c belongs to the given kind.
func ValidCategory(kind Kind, c Category) bool {
	for _, valid := range categoriesByKind[kind] {
		if c == valid {
			return true
		}
	}

	return false
}

// Entry is a single income or expense record. Amounts are in VND.
// ReceiptImageURL is only meaningful for expenses.
type Entry struct {
	ID              uuid.UUID
	Kind            Kind
	Date            time.Time
	Amount          int64
	Category        Category
	Description     string
	ReceiptImageURL string
	RelatedOrderID  *uuid.UUID
	CreatedAt       time.Time
}

// MonthSummary is one bucket of the monthly report. Month is formatted
// "2006-01".
type MonthSummary struct {
	Month    string
	Income   int64
	Expenses int64
	Balance  int64
}
