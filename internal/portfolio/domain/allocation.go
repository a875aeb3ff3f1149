package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allocation is the join record stating that a client holds a quantity of
// an asset. At most one allocation exists per (ClientID, AssetID) pair; the
// datastore's unique constraint is the arbiter of that invariant.
type Allocation struct {
	ID        int64
	ClientID  int64
	AssetID   int64
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllocationPatch is a partial update for an allocation. A nil Quantity
// means "no change".
type AllocationPatch struct {
	Quantity *int64
}

// IsEmpty reports whether the patch carries no changes.
func (p AllocationPatch) IsEmpty() bool { return p.Quantity == nil }

// ClientSummary is the denormalized client snapshot attached to an
// allocation when listing by client. Derived at read time, never stored.
type ClientSummary struct {
	ID    int64
	Name  string
	Email string
}

// AssetSummary is the denormalized asset snapshot attached to an allocation.
type AssetSummary struct {
	ID    int64
	Name  string
	Value decimal.Decimal
}

// AllocationDetail is an allocation joined with its client and asset
// summaries for display.
type AllocationDetail struct {
	Allocation
	Client ClientSummary
	Asset  AssetSummary
}
