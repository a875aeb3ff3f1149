package store

import (
	"context"
	"errors"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Clients() Clients
	Assets() Assets
	Allocations() Allocations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Prefer this
	// over Tx for multi-step operations.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Clients is the client side of the catalog. The allocation subsystem only
// reads it; writes come from client management and reconciliation.
type Clients interface {
	// GetClientByID returns a client by id, or ErrNotFound.
	GetClientByID(ctx context.Context, id int64) (domain.Client, error)

	// GetClientByEmail looks a client up by its natural key.
	GetClientByEmail(ctx context.Context, email string) (domain.Client, error)

	// ClientExists reports whether a client row with the given id exists.
	ClientExists(ctx context.Context, id int64) (bool, error)

	// ListClients returns all clients ordered by creation (oldest first).
	ListClients(ctx context.Context) ([]domain.Client, error)

	// CreateClient inserts a new client and returns the stored row with its
	// generated id and timestamps. A duplicate email yields ErrAlreadyExists.
	CreateClient(ctx context.Context, c domain.Client) (domain.Client, error)

	// UpdateClient applies the non-nil patch fields and returns the updated
	// row. Returns ErrNotFound when no client has that id.
	UpdateClient(ctx context.Context, id int64, p domain.ClientPatch) (domain.Client, error)

	// UpsertClientByEmail creates the client or, when the email already
	// exists, overwrites its name. The stored status is overwritten only
	// when setStatus is true; otherwise it is left as is so a re-sync
	// never flips a deactivated client back to active. Reports whether a
	// row was created (as opposed to updated).
	UpsertClientByEmail(ctx context.Context, c domain.Client, setStatus bool) (domain.Client, bool, error)
}

// Assets is the asset side of the catalog.
type Assets interface {
	// GetAssetByID returns an asset by id, or ErrNotFound.
	GetAssetByID(ctx context.Context, id int64) (domain.Asset, error)

	// GetAssetByName looks an asset up by its natural key.
	GetAssetByName(ctx context.Context, name string) (domain.Asset, error)

	// AssetExists reports whether an asset row with the given id exists.
	AssetExists(ctx context.Context, id int64) (bool, error)

	// ListAssets returns all assets ordered by creation (oldest first).
	ListAssets(ctx context.Context) ([]domain.Asset, error)

	// CreateAsset inserts a new asset and returns the stored row. A
	// duplicate name yields ErrAlreadyExists.
	CreateAsset(ctx context.Context, a domain.Asset) (domain.Asset, error)

	// UpsertAssetByName creates the asset or, when the name already exists,
	// overwrites its value. Reports whether a row was created.
	UpsertAssetByName(ctx context.Context, a domain.Asset) (domain.Asset, bool, error)
}

// Allocations owns the client_assets join rows. No other component writes
// them.
type Allocations interface {
	// CreateAllocation inserts a new allocation and returns the stored row.
	// A (client_id, asset_id) uniqueness violation yields ErrAlreadyExists;
	// the constraint lives in the database so concurrent creates racing on
	// the same pair resolve there, not in application code.
	CreateAllocation(ctx context.Context, a domain.Allocation) (domain.Allocation, error)

	// GetAllocationByID returns an allocation by id, or ErrNotFound.
	GetAllocationByID(ctx context.Context, id int64) (domain.Allocation, error)

	// ListAllocationsByClient returns the client's allocations in creation
	// order, each joined with denormalized client and asset snapshots.
	// A client with no allocations yields an empty slice, not an error.
	ListAllocationsByClient(ctx context.Context, clientID int64) ([]domain.AllocationDetail, error)

	// UpdateAllocation applies the non-nil patch fields and returns the
	// updated row. Returns ErrNotFound when no allocation has that id.
	UpdateAllocation(ctx context.Context, id int64, p domain.AllocationPatch) (domain.Allocation, error)

	// DeleteAllocation hard-deletes the row, or returns ErrNotFound.
	DeleteAllocation(ctx context.Context, id int64) error

	// UpsertAllocation creates the allocation or, when the (client, asset)
	// pair already exists, overwrites its quantity. This is the reconciler's
	// merge-on-conflict path; interactive creates go through
	// CreateAllocation instead. Reports whether a row was created.
	UpsertAllocation(ctx context.Context, a domain.Allocation) (domain.Allocation, bool, error)

	// CountAllocations returns the total number of allocation rows.
	CountAllocations(ctx context.Context) (int64, error)
}
