package ledger

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	CreateEntry(ctx context.Context, e *Entry) error
	GetEntry(ctx context.Context, id uuid.UUID) (*Entry, error)
	ListEntries(ctx context.Context, filter ListFilter) ([]*Entry, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

type ListFilter struct {
	Kind      *Kind
	Category  *Category
	StartDate *time.Time
	EndDate   *time.Time
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Kind            Kind
	Date            time.Time
	Amount          int64
	Category        Category
	Description     string
	ReceiptImageURL string
	RelatedOrderID  *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Entry, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	if !ValidCategory(params.Kind, params.Category) {
		return nil, ErrInvalidCategory
	}

	e := &Entry{
		Kind:            params.Kind,
		Date:            params.Date,
		Amount:          params.Amount,
		Category:        params.Category,
		Description:     params.Description,
		ReceiptImageURL: params.ReceiptImageURL,
		RelatedOrderID:  params.RelatedOrderID,
	}
	if err := s.repo.CreateEntry(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.repo.GetEntry(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteEntry(ctx, id)
}

// CategoryTotals groups entries of one kind by category and sums their
// amounts. Recomputed from the current entries on every call.
func (s *Service) CategoryTotals(ctx context.Context, kind Kind) (map[Category]int64, error) {
	entries, err := s.repo.ListEntries(ctx, ListFilter{Kind: &kind})
	if err != nil {
		return nil, err
	}

	totals := make(map[Category]int64)
	for _, e := range entries {
		totals[e.Category] += e.Amount
	}

	return totals, nil
}

// MonthlySummary buckets all entries by calendar month, ascending by month
// key. Balance is income minus expenses per bucket.
func (s *Service) MonthlySummary(ctx context.Context) ([]MonthSummary, error) {
	entries, err := s.repo.ListEntries(ctx, ListFilter{})
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*MonthSummary)

	for _, e := range entries {
		key := e.Date.Format("2006-01")

		b, ok := buckets[key]
		if !ok {
			b = &MonthSummary{Month: key}
			buckets[key] = b
		}

		switch e.Kind {
		case KindIncome:
			b.Income += e.Amount
		case KindExpense:
			b.Expenses += e.Amount
		}
	}

	summaries := make([]MonthSummary, 0, len(buckets))
	for _, b := range buckets {
		b.Balance = b.Income - b.Expenses
		summaries = append(summaries, *b)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Month < summaries[j].Month
	})

	return summaries, nil
}

func (s *Service) TotalIncome(ctx context.Context) (int64, error) {
	return s.total(ctx, KindIncome)
}

func (s *Service) TotalExpenses(ctx context.Context) (int64, error) {
	return s.total(ctx, KindExpense)
}

func (s *Service) total(ctx context.Context, kind Kind) (int64, error) {
	entries, err := s.repo.ListEntries(ctx, ListFilter{Kind: &kind})
	if err != nil {
		return 0, err
	}

	var sum int64
	for _, e := range entries {
		sum += e.Amount
	}

	return sum, nil
}
