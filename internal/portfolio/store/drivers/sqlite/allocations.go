package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
	"github.com/walletworks/portfolio/internal/portfolio/store"

	"github.com/shopspring/decimal"
)

type allocationsRepo struct {
	db dbtx
}

const allocationColumns = `id, client_id, asset_id, quantity, created_at, updated_at`

func scanAllocation(row interface{ Scan(...any) error }) (domain.Allocation, error) {
	var a domain.Allocation
	err := row.Scan(&a.ID, &a.ClientID, &a.AssetID, &a.Quantity, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *allocationsRepo) CreateAllocation(ctx context.Context, a domain.Allocation) (domain.Allocation, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO client_assets (client_id, asset_id, quantity, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING `+allocationColumns,
		a.ClientID, a.AssetID, a.Quantity, now, now)

	created, err := scanAllocation(row)
	if err != nil {
		return domain.Allocation{}, mapConstraint(err)
	}
	return created, nil
}

func (r *allocationsRepo) GetAllocationByID(ctx context.Context, id int64) (domain.Allocation, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+allocationColumns+` FROM client_assets WHERE id = ?`, id)

	a, err := scanAllocation(row)
	if err != nil {
		return domain.Allocation{}, mapNotFound(err)
	}
	return a, nil
}

func (r *allocationsRepo) ListAllocationsByClient(ctx context.Context, clientID int64) ([]domain.AllocationDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ca.id, ca.client_id, ca.asset_id, ca.quantity, ca.created_at, ca.updated_at,
		        c.id, c.name, c.email,
		        a.id, a.name, a.value
		 FROM client_assets ca
		 JOIN clients c ON c.id = ca.client_id
		 JOIN assets a ON a.id = ca.asset_id
		 WHERE ca.client_id = ?
		 ORDER BY ca.id`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	details := make([]domain.AllocationDetail, 0)
	for rows.Next() {
		var (
			d   domain.AllocationDetail
			val string
		)
		err := rows.Scan(
			&d.ID, &d.ClientID, &d.AssetID, &d.Quantity, &d.CreatedAt, &d.UpdatedAt,
			&d.Client.ID, &d.Client.Name, &d.Client.Email,
			&d.Asset.ID, &d.Asset.Name, &val,
		)
		if err != nil {
			return nil, err
		}

		d.Asset.Value, err = decimal.NewFromString(val)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, rows.Err()
}

func (r *allocationsRepo) UpdateAllocation(ctx context.Context, id int64, p domain.AllocationPatch) (domain.Allocation, error) {
	if p.IsEmpty() {
		return r.GetAllocationByID(ctx, id)
	}

	row := r.db.QueryRowContext(ctx,
		`UPDATE client_assets SET quantity = ?, updated_at = ? WHERE id = ?
		 RETURNING `+allocationColumns,
		*p.Quantity, time.Now().UTC(), id)

	updated, err := scanAllocation(row)
	if err != nil {
		return domain.Allocation{}, mapNotFound(err)
	}
	return updated, nil
}

func (r *allocationsRepo) DeleteAllocation(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM client_assets WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *allocationsRepo) UpsertAllocation(ctx context.Context, a domain.Allocation) (domain.Allocation, bool, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO client_assets (client_id, asset_id, quantity, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (client_id, asset_id) DO UPDATE SET
		     quantity = excluded.quantity,
		     updated_at = excluded.updated_at
		 RETURNING `+allocationColumns,
		a.ClientID, a.AssetID, a.Quantity, now, now)

	stored, err := scanAllocation(row)
	if err != nil {
		return domain.Allocation{}, false, err
	}
	return stored, stored.CreatedAt.Equal(stored.UpdatedAt), nil
}

func (r *allocationsRepo) CountAllocations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM client_assets`).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	return count, nil
}
