package service

import (
	"context"
	"errors"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
	"github.com/walletworks/portfolio/internal/portfolio/store"
	"github.com/walletworks/portfolio/pkg/slogx"
)

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrAssetNotFound       = errors.New("asset not found")
	ErrAllocationNotFound  = errors.New("allocation not found")
	ErrDuplicateAllocation = errors.New("allocation for this client and asset already exists")
)

// AllocationService owns the allocation lifecycle: it is the only component
// that creates, mutates, or deletes allocation rows. It reads the client and
// asset catalogs solely to validate foreign keys.
type AllocationService struct {
	Store store.Store
}

// Create validates the payload, checks referential integrity against the
// catalogs, and inserts the allocation. A duplicate (client, asset) pair
// fails with ErrDuplicateAllocation; the merge escape hatch is the
// reconciler, never this path.
//
// The existence checks and the insert are separate datastore round trips.
// A referenced row can disappear in between; the insert then fails on the
// foreign key and surfaces as a plain error. Accepted race, not retried.
func (s *AllocationService) Create(ctx context.Context, clientID, assetID, quantity int64) (domain.Allocation, error) {
	l := slogx.FromContext(ctx)

	if err := ValidateAllocationCreate(clientID, assetID, quantity); err != nil {
		return domain.Allocation{}, err
	}

	exists, err := s.Store.Clients().ClientExists(ctx, clientID)
	if err != nil {
		return domain.Allocation{}, err
	}
	if !exists {
		return domain.Allocation{}, ErrClientNotFound
	}

	exists, err = s.Store.Assets().AssetExists(ctx, assetID)
	if err != nil {
		return domain.Allocation{}, err
	}
	if !exists {
		return domain.Allocation{}, ErrAssetNotFound
	}

	alloc, err := s.Store.Allocations().CreateAllocation(ctx, domain.Allocation{
		ClientID: clientID,
		AssetID:  assetID,
		Quantity: quantity,
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Allocation{}, ErrDuplicateAllocation
		}
		l.Error("failed to create allocation", "error", err, "client_id", clientID, "asset_id", assetID)
		return domain.Allocation{}, err
	}

	l.Info("allocation created", "allocation_id", alloc.ID, "client_id", clientID, "asset_id", assetID, "quantity", quantity)
	return alloc, nil
}

// Get returns an allocation by id.
func (s *AllocationService) Get(ctx context.Context, id int64) (domain.Allocation, error) {
	alloc, err := s.Store.Allocations().GetAllocationByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Allocation{}, ErrAllocationNotFound
		}
		return domain.Allocation{}, err
	}
	return alloc, nil
}

// ListByClient returns the client's allocations with denormalized client and
// asset snapshots. An unknown client fails with ErrClientNotFound; a known
// client without allocations yields an empty slice.
func (s *AllocationService) ListByClient(ctx context.Context, clientID int64) ([]domain.AllocationDetail, error) {
	exists, err := s.Store.Clients().ClientExists(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrClientNotFound
	}

	return s.Store.Allocations().ListAllocationsByClient(ctx, clientID)
}

// Update applies the patch (currently just quantity) to an existing
// allocation.
func (s *AllocationService) Update(ctx context.Context, id int64, p domain.AllocationPatch) (domain.Allocation, error) {
	l := slogx.FromContext(ctx)

	if err := ValidateAllocationUpdate(p.Quantity); err != nil {
		return domain.Allocation{}, err
	}

	alloc, err := s.Store.Allocations().UpdateAllocation(ctx, id, p)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Allocation{}, ErrAllocationNotFound
		}
		l.Error("failed to update allocation", "error", err, "allocation_id", id)
		return domain.Allocation{}, err
	}

	l.Info("allocation updated", "allocation_id", id)
	return alloc, nil
}

// Delete hard-deletes an allocation. There is nothing to cascade: the join
// row is the only thing removed.
func (s *AllocationService) Delete(ctx context.Context, id int64) error {
	l := slogx.FromContext(ctx)

	err := s.Store.Allocations().DeleteAllocation(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAllocationNotFound
		}
		l.Error("failed to delete allocation", "error", err, "allocation_id", id)
		return err
	}

	l.Info("allocation deleted", "allocation_id", id)
	return nil
}
