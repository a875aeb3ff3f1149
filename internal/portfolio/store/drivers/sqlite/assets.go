package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/walletworks/portfolio/internal/portfolio/domain"

	"github.com/shopspring/decimal"
)

type assetsRepo struct {
	db dbtx
}

const assetColumns = `id, name, value, created_at, updated_at`

func scanAsset(row interface{ Scan(...any) error }) (domain.Asset, error) {
	var (
		a   domain.Asset
		val string
	)
	if err := row.Scan(&a.ID, &a.Name, &val, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Asset{}, err
	}

	value, err := decimal.NewFromString(val)
	if err != nil {
		return domain.Asset{}, err
	}
	a.Value = value
	return a, nil
}

func (r *assetsRepo) GetAssetByID(ctx context.Context, id int64) (domain.Asset, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE id = ?`, id)

	a, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, mapNotFound(err)
	}
	return a, nil
}

func (r *assetsRepo) GetAssetByName(ctx context.Context, name string) (domain.Asset, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM assets WHERE name = ?`, name)

	a, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, mapNotFound(err)
	}
	return a, nil
}

func (r *assetsRepo) AssetExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM assets WHERE id = ?`, id).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *assetsRepo) ListAssets(ctx context.Context) ([]domain.Asset, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+assetColumns+` FROM assets ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := make([]domain.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (r *assetsRepo) CreateAsset(ctx context.Context, a domain.Asset) (domain.Asset, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO assets (name, value, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 RETURNING `+assetColumns,
		a.Name, a.Value.String(), now, now)

	created, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, mapConstraint(err)
	}
	return created, nil
}

func (r *assetsRepo) UpsertAssetByName(ctx context.Context, a domain.Asset) (domain.Asset, bool, error) {
	now := time.Now().UTC()
	row := r.db.QueryRowContext(ctx,
		`INSERT INTO assets (name, value, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (name) DO UPDATE SET
		     value = excluded.value,
		     updated_at = excluded.updated_at
		 RETURNING `+assetColumns,
		a.Name, a.Value.String(), now, now)

	stored, err := scanAsset(row)
	if err != nil {
		return domain.Asset{}, false, err
	}
	return stored, stored.CreatedAt.Equal(stored.UpdatedAt), nil
}
