package sqlite_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
	"github.com/walletworks/portfolio/internal/portfolio/store"
	"github.com/walletworks/portfolio/internal/portfolio/store/drivers/sqlite"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func seedClient(t *testing.T, st store.Store, name, email string) domain.Client {
	t.Helper()

	c, err := st.Clients().CreateClient(context.Background(), domain.Client{
		Name:   name,
		Email:  email,
		Status: true,
	})
	require.NoError(t, err)
	return c
}

func seedAsset(t *testing.T, st store.Store, name, value string) domain.Asset {
	t.Helper()

	a, err := st.Assets().CreateAsset(context.Background(), domain.Asset{
		Name:  name,
		Value: decimal.RequireFromString(value),
	})
	require.NoError(t, err)
	return a
}

func TestClientsRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		st := newTestStore(t)

		c := seedClient(t, st, "Ana", "ana@x.com")
		require.Positive(t, c.ID)
		require.False(t, c.CreatedAt.IsZero())
		require.True(t, c.Status)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		st := newTestStore(t)
		seedClient(t, st, "Ana", "ana@x.com")

		_, err := st.Clients().CreateClient(ctx, domain.Client{
			Name: "Other", Email: "ana@x.com", Status: true,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("lookups miss with ErrNotFound", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Clients().GetClientByID(ctx, 99)
		require.ErrorIs(t, err, store.ErrNotFound)

		_, err = st.Clients().GetClientByEmail(ctx, "nobody@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)

		exists, err := st.Clients().ClientExists(ctx, 99)
		require.NoError(t, err)
		require.False(t, exists)
	})

	t.Run("patch update applies only supplied fields", func(t *testing.T) {
		st := newTestStore(t)
		c := seedClient(t, st, "Ana", "ana@x.com")

		name := "Ana Maria"
		updated, err := st.Clients().UpdateClient(ctx, c.ID, domain.ClientPatch{Name: &name})
		require.NoError(t, err)
		require.Equal(t, "Ana Maria", updated.Name)
		require.Equal(t, "ana@x.com", updated.Email)
		require.True(t, updated.Status)

		status := false
		updated, err = st.Clients().UpdateClient(ctx, c.ID, domain.ClientPatch{Status: &status})
		require.NoError(t, err)
		require.False(t, updated.Status)
		require.Equal(t, "Ana Maria", updated.Name)
	})

	t.Run("patch update of unknown id is ErrNotFound", func(t *testing.T) {
		st := newTestStore(t)

		name := "Nobody"
		_, err := st.Clients().UpdateClient(ctx, 42, domain.ClientPatch{Name: &name})
		require.ErrorIs(t, err, store.ErrNotFound)

		// Same for an empty patch.
		_, err = st.Clients().UpdateClient(ctx, 42, domain.ClientPatch{})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("upsert by email creates then overwrites", func(t *testing.T) {
		st := newTestStore(t)

		c1, created, err := st.Clients().UpsertClientByEmail(ctx, domain.Client{
			Name: "Ana", Email: "ana@x.com", Status: true,
		}, true)
		require.NoError(t, err)
		require.True(t, created)

		c2, created, err := st.Clients().UpsertClientByEmail(ctx, domain.Client{
			Name: "Ana Maria", Email: "ana@x.com", Status: true,
		}, true)
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, c1.ID, c2.ID, "email is the key, id is stable")
		require.Equal(t, "Ana Maria", c2.Name)

		clients, err := st.Clients().ListClients(ctx)
		require.NoError(t, err)
		require.Len(t, clients, 1)
	})

	t.Run("upsert without setStatus keeps the stored status", func(t *testing.T) {
		st := newTestStore(t)

		_, _, err := st.Clients().UpsertClientByEmail(ctx, domain.Client{
			Name: "Ana", Email: "ana@x.com", Status: false,
		}, true)
		require.NoError(t, err)

		c, _, err := st.Clients().UpsertClientByEmail(ctx, domain.Client{
			Name: "Ana Maria", Email: "ana@x.com", Status: true,
		}, false)
		require.NoError(t, err)
		require.Equal(t, "Ana Maria", c.Name)
		require.False(t, c.Status, "deactivated client must stay deactivated")

		c, _, err = st.Clients().UpsertClientByEmail(ctx, domain.Client{
			Name: "Ana Maria", Email: "ana@x.com", Status: true,
		}, true)
		require.NoError(t, err)
		require.True(t, c.Status, "an explicit status still overwrites")
	})
}

func TestAssetsRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create and round-trip decimal value", func(t *testing.T) {
		st := newTestStore(t)

		a := seedAsset(t, st, "Bond A", "100.00")
		require.Positive(t, a.ID)

		got, err := st.Assets().GetAssetByID(ctx, a.ID)
		require.NoError(t, err)
		require.True(t, got.Value.Equal(decimal.RequireFromString("100.00")))
	})

	t.Run("duplicate name is rejected", func(t *testing.T) {
		st := newTestStore(t)
		seedAsset(t, st, "Bond A", "100.00")

		_, err := st.Assets().CreateAsset(ctx, domain.Asset{
			Name: "Bond A", Value: decimal.New(1, 0),
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("upsert by name overwrites value only", func(t *testing.T) {
		st := newTestStore(t)
		a := seedAsset(t, st, "Bitcoin", "60000.00")

		stored, created, err := st.Assets().UpsertAssetByName(ctx, domain.Asset{
			Name: "Bitcoin", Value: decimal.RequireFromString("61500.50"),
		})
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, a.ID, stored.ID)
		require.True(t, stored.Value.Equal(decimal.RequireFromString("61500.50")))

		_, created, err = st.Assets().UpsertAssetByName(ctx, domain.Asset{
			Name: "Tesouro Selic", Value: decimal.RequireFromString("10.50"),
		})
		require.NoError(t, err)
		require.True(t, created)

		assets, err := st.Assets().ListAssets(ctx)
		require.NoError(t, err)
		require.Len(t, assets, 2)
	})
}

func TestAllocationsRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("create enforces pair uniqueness", func(t *testing.T) {
		st := newTestStore(t)
		c := seedClient(t, st, "Ana", "ana@x.com")
		a := seedAsset(t, st, "Bond A", "100.00")

		alloc, err := st.Allocations().CreateAllocation(ctx, domain.Allocation{
			ClientID: c.ID, AssetID: a.ID, Quantity: 10,
		})
		require.NoError(t, err)
		require.Positive(t, alloc.ID)
		require.EqualValues(t, 10, alloc.Quantity)

		_, err = st.Allocations().CreateAllocation(ctx, domain.Allocation{
			ClientID: c.ID, AssetID: a.ID, Quantity: 5,
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("racing duplicate creates: exactly one wins", func(t *testing.T) {
		st := newTestStore(t)
		c := seedClient(t, st, "Ana", "ana@x.com")
		a := seedAsset(t, st, "Bond A", "100.00")

		const writers = 8
		errs := make(chan error, writers)
		var wg sync.WaitGroup
		for range writers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := st.Allocations().CreateAllocation(ctx, domain.Allocation{
					ClientID: c.ID, AssetID: a.ID, Quantity: 1,
				})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		var wins, conflicts int
		for err := range errs {
			switch {
			case err == nil:
				wins++
			case errors.Is(err, store.ErrAlreadyExists):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		require.Equal(t, 1, wins, "the unique constraint arbitrates the race")
		require.Equal(t, writers-1, conflicts)

		count, err := st.Allocations().CountAllocations(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
	})

	t.Run("referential integrity is enforced by the schema", func(t *testing.T) {
		st := newTestStore(t)

		_, err := st.Allocations().CreateAllocation(ctx, domain.Allocation{
			ClientID: 1, AssetID: 1, Quantity: 10,
		})
		require.Error(t, err, "foreign keys are on; orphan rows must not insert")
	})

	t.Run("list by client joins snapshots in creation order", func(t *testing.T) {
		st := newTestStore(t)
		c := seedClient(t, st, "Ana", "ana@x.com")
		other := seedClient(t, st, "Bob", "bob@x.com")
		bond := seedAsset(t, st, "Bond A", "100.00")
		fund := seedAsset(t, st, "Fund B", "120.00")

		_, err := st.Allocations().CreateAllocation(ctx, domain.Allocation{ClientID: c.ID, AssetID: bond.ID, Quantity: 10})
		require.NoError(t, err)
		_, err = st.Allocations().CreateAllocation(ctx, domain.Allocation{ClientID: c.ID, AssetID: fund.ID, Quantity: 3})
		require.NoError(t, err)
		_, err = st.Allocations().CreateAllocation(ctx, domain.Allocation{ClientID: other.ID, AssetID: bond.ID, Quantity: 1})
		require.NoError(t, err)

		details, err := st.Allocations().ListAllocationsByClient(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, details, 2)

		require.Equal(t, "Bond A", details[0].Asset.Name)
		require.True(t, details[0].Asset.Value.Equal(decimal.RequireFromString("100.00")))
		require.Equal(t, "ana@x.com", details[0].Client.Email)
		require.Equal(t, "Fund B", details[1].Asset.Name)
	})

	t.Run("list for client without allocations is empty, not an error", func(t *testing.T) {
		st := newTestStore(t)
		c := seedClient(t, st, "Ana", "ana@x.com")

		details, err := st.Allocations().ListAllocationsByClient(ctx, c.ID)
		require.NoError(t, err)
		require.Empty(t, details)

		// Even for an id that does not exist at all.
		details, err = st.Allocations().ListAllocationsByClient(ctx, 999)
		require.NoError(t, err)
		require.Empty(t, details)
	})

	t.Run("update quantity and delete", func(t *testing.T) {
		st := newTestStore(t)
		c := seedClient(t, st, "Ana", "ana@x.com")
		a := seedAsset(t, st, "Bond A", "100.00")

		alloc, err := st.Allocations().CreateAllocation(ctx, domain.Allocation{ClientID: c.ID, AssetID: a.ID, Quantity: 10})
		require.NoError(t, err)

		qty := int64(15)
		updated, err := st.Allocations().UpdateAllocation(ctx, alloc.ID, domain.AllocationPatch{Quantity: &qty})
		require.NoError(t, err)
		require.EqualValues(t, 15, updated.Quantity)

		require.NoError(t, st.Allocations().DeleteAllocation(ctx, alloc.ID))

		_, err = st.Allocations().GetAllocationByID(ctx, alloc.ID)
		require.ErrorIs(t, err, store.ErrNotFound)

		require.ErrorIs(t, st.Allocations().DeleteAllocation(ctx, alloc.ID), store.ErrNotFound)
	})

	t.Run("update of unknown id is ErrNotFound", func(t *testing.T) {
		st := newTestStore(t)

		qty := int64(1)
		_, err := st.Allocations().UpdateAllocation(ctx, 123, domain.AllocationPatch{Quantity: &qty})
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("upsert merges on conflict", func(t *testing.T) {
		st := newTestStore(t)
		c := seedClient(t, st, "Ana", "ana@x.com")
		a := seedAsset(t, st, "Bond A", "100.00")

		first, created, err := st.Allocations().UpsertAllocation(ctx, domain.Allocation{ClientID: c.ID, AssetID: a.ID, Quantity: 10})
		require.NoError(t, err)
		require.True(t, created)

		second, created, err := st.Allocations().UpsertAllocation(ctx, domain.Allocation{ClientID: c.ID, AssetID: a.ID, Quantity: 25})
		require.NoError(t, err)
		require.False(t, created)
		require.Equal(t, first.ID, second.ID)
		require.EqualValues(t, 25, second.Quantity)

		count, err := st.Allocations().CountAllocations(ctx)
		require.NoError(t, err)
		require.EqualValues(t, 1, count)
	})
}

func TestWithTx(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		st := newTestStore(t)

		err := st.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Clients().CreateClient(ctx, domain.Client{
				Name: "Ana", Email: "ana@x.com", Status: true,
			})
			return err
		})
		require.NoError(t, err)

		_, err = st.Clients().GetClientByEmail(ctx, "ana@x.com")
		require.NoError(t, err)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		st := newTestStore(t)

		sentinel := errors.New("boom")
		err := st.WithTx(ctx, func(tx store.Tx) error {
			if _, err := tx.Clients().CreateClient(ctx, domain.Client{
				Name: "Ana", Email: "ana@x.com", Status: true,
			}); err != nil {
				return err
			}
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)

		_, err = st.Clients().GetClientByEmail(ctx, "ana@x.com")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}
