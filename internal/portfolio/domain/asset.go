package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset is a catalog entry for a tradable instrument. The name is the
// natural key used during reconciliation; value is its unit price.
type Asset struct {
	ID        int64
	Name      string
	Value     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
