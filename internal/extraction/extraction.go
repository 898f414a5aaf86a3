// Package extraction turns photographed or exported handwritten notes into
// structured suggestions. Every field of a suggestion is best-effort and
// untrusted: nothing here becomes an order item or a stock movement until a
// user confirms it against a real catalog product, and even then the result
// still passes through the normal validators.
package extraction

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoProductMatch  = errors.New("suggestion is not confirmed against a product")
	ErrInvalidQuantity = errors.New("confirmed quantity must be positive")
)

// SuggestedItem is one guessed line from a note. Name and quantity are the
// extractor's reading; UnitPrice is only set when a price was legible.
type SuggestedItem struct {
	Name      string
	Quantity  int64
	UnitPrice *int64
}

// Suggestion is the full guess for one note. All fields are optional.
type Suggestion struct {
	Date        *time.Time
	Counterpart string
	Notes       string
	Items       []SuggestedItem
}

// ConfirmedItem is a suggestion a user has explicitly bound to a catalog
// product with a positive quantity. Only this type converts into order or
// stock create-params.
type ConfirmedItem struct {
	ProductID uuid.UUID
	Quantity  int64
	UnitPrice *int64
}

// Confirm binds a suggested item to a product. The product match and a
// positive quantity are both required; the quantity may differ from the
// guess when the user corrects it.
func Confirm(s SuggestedItem, productID uuid.UUID, quantity int64) (ConfirmedItem, error) {
	if productID == uuid.Nil {
		return ConfirmedItem{}, ErrNoProductMatch
	}

	if quantity <= 0 {
		return ConfirmedItem{}, ErrInvalidQuantity
	}

	return ConfirmedItem{
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: s.UnitPrice,
	}, nil
}
