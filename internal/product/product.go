package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("product not found")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrNameRequired  = errors.New("product name is required")
)

// Unit represents the physical unit a product is counted in.
type Unit string

const (
	UnitPiece Unit = "piece"
	UnitKg    Unit = "kg"
	UnitGram  Unit = "g"
	UnitLiter Unit = "l"
	UnitMl    Unit = "ml"
	UnitBox   Unit = "box"
	UnitPack  Unit = "pack"
	UnitMeter Unit = "m"
)

// Product is a catalog entry. Prices are in VND.
//
// CurrentStock is derived: InitialStock plus the replay of all inventory
// transactions referencing this product. It is never persisted as its own
// column and must not be set by callers.
type Product struct {
	ID            uuid.UUID
	Name          string
	SKU           string
	Unit          Unit
	CostPrice     int64
	SellingPrice  int64
	MinStockLevel int64
	InitialStock  int64
	CurrentStock  int64
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
