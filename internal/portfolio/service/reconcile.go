package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
	"github.com/walletworks/portfolio/internal/portfolio/store"
	"github.com/walletworks/portfolio/pkg/slogx"

	"github.com/shopspring/decimal"
)

// DesiredAsset is a declarative asset entry keyed by name. The id is never
// part of the key; name is authoritative.
type DesiredAsset struct {
	Name  string
	Value decimal.Decimal
}

// DesiredClient is a declarative client entry keyed by email.
type DesiredClient struct {
	Name   string
	Email  string
	Status *bool // nil means active
}

// DesiredAllocation references its client and asset by natural key; ids are
// resolved during reconciliation, after the catalogs have been processed.
type DesiredAllocation struct {
	ClientEmail string
	AssetName   string
	Quantity    int64
}

// DesiredState is the dataset a reconciliation run converges the store to.
type DesiredState struct {
	Assets      []DesiredAsset
	Clients     []DesiredClient
	Allocations []DesiredAllocation
}

// Summary counts the outcome of a reconciliation run. Failures carries one
// message per entry that could not be applied.
type Summary struct {
	Created  int
	Updated  int
	Failed   int
	Failures []string
}

func (s *Summary) record(created bool) {
	if created {
		s.Created++
	} else {
		s.Updated++
	}
}

func (s *Summary) fail(msg string) {
	s.Failed++
	s.Failures = append(s.Failures, msg)
}

// ReconcileService applies a desired-state dataset idempotently: every entry
// is an upsert keyed by its natural key, so re-running the same dataset is a
// no-op apart from bumped timestamps. Used for initial seeding and for
// re-syncing a drifted store.
type ReconcileService struct {
	Store store.Store
}

// Reconcile processes assets and clients first so their ids exist before any
// allocation referencing them, then allocations, each in list order. A
// failing entry is logged and counted but does not abort or roll back the
// entries before or after it; there is deliberately no batch-wide
// transaction.
func (s *ReconcileService) Reconcile(ctx context.Context, desired DesiredState) (Summary, error) {
	l := slogx.FromContext(ctx)
	var summary Summary

	for _, da := range desired.Assets {
		if da.Name == "" || da.Value.IsNegative() {
			summary.fail(fmt.Sprintf("asset %q: name must be set and value non-negative", da.Name))
			continue
		}

		_, created, err := s.Store.Assets().UpsertAssetByName(ctx, domain.Asset{
			Name:  da.Name,
			Value: da.Value,
		})
		if err != nil {
			l.Warn("asset reconciliation failed", "asset", da.Name, "error", err)
			summary.fail(fmt.Sprintf("asset %q: %v", da.Name, err))
			continue
		}
		summary.record(created)
	}

	for _, dc := range desired.Clients {
		if err := ValidateClientCreate(dc.Name, dc.Email); err != nil {
			summary.fail(fmt.Sprintf("client %q: %v", dc.Email, err))
			continue
		}

		// An omitted status means active on first insert, but must never
		// overwrite what an existing row already says.
		status := true
		if dc.Status != nil {
			status = *dc.Status
		}

		_, created, err := s.Store.Clients().UpsertClientByEmail(ctx, domain.Client{
			Name:   dc.Name,
			Email:  dc.Email,
			Status: status,
		}, dc.Status != nil)
		if err != nil {
			l.Warn("client reconciliation failed", "client", dc.Email, "error", err)
			summary.fail(fmt.Sprintf("client %q: %v", dc.Email, err))
			continue
		}
		summary.record(created)
	}

	for _, dal := range desired.Allocations {
		created, err := s.reconcileAllocation(ctx, dal)
		if err != nil {
			l.Warn("allocation reconciliation failed",
				"client", dal.ClientEmail, "asset", dal.AssetName, "error", err)
			summary.fail(fmt.Sprintf("allocation %q/%q: %v", dal.ClientEmail, dal.AssetName, err))
			continue
		}
		summary.record(created)
	}

	l.Info("reconciliation finished",
		"created", summary.Created, "updated", summary.Updated, "failed", summary.Failed)
	return summary, nil
}

// reconcileAllocation resolves the natural keys to ids and upserts the
// allocation, all inside one transaction so the referenced rows cannot
// vanish between resolution and upsert.
func (s *ReconcileService) reconcileAllocation(ctx context.Context, dal DesiredAllocation) (bool, error) {
	if dal.Quantity <= 0 {
		return false, fmt.Errorf("quantity must be a positive integer, got %d", dal.Quantity)
	}

	var created bool
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		client, err := tx.Clients().GetClientByEmail(ctx, dal.ClientEmail)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("client %q not in catalog", dal.ClientEmail)
			}
			return err
		}

		asset, err := tx.Assets().GetAssetByName(ctx, dal.AssetName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("asset %q not in catalog", dal.AssetName)
			}
			return err
		}

		_, created, err = tx.Allocations().UpsertAllocation(ctx, domain.Allocation{
			ClientID: client.ID,
			AssetID:  asset.ID,
			Quantity: dal.Quantity,
		})
		return err
	})
	return created, err
}
