package extraction

import (
	"context"

	"github.com/google/uuid"
)

type MatchRepository interface {
	FindProductMatch(ctx context.Context, rawName string) (uuid.UUID, bool, error)
	CreateProductMapping(ctx context.Context, rawPattern string, productID uuid.UUID) error
}

// Matcher remembers which catalog product a raw note name refers to, so
// repeated notes pre-fill the product match for the confirmation step.
type Matcher struct {
	repo MatchRepository
}

func NewMatcher(repo MatchRepository) *Matcher {
	return &Matcher{repo: repo}
}

// Suggest returns the learned product for a raw item name, if any.
func (m *Matcher) Suggest(ctx context.Context, rawName string) (uuid.UUID, bool, error) {
	return m.repo.FindProductMatch(ctx, rawName)
}

// Learn remembers a new mapping between a raw name pattern and a product.
func (m *Matcher) Learn(ctx context.Context, rawPattern string, productID uuid.UUID) error {
	return m.repo.CreateProductMapping(ctx, rawPattern, productID)
}
