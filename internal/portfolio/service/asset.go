package service

import (
	"context"
	"errors"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
	"github.com/walletworks/portfolio/internal/portfolio/store"
)

// AssetService exposes the asset catalog. Assets enter the system through
// reconciliation; normal operation only reads them.
type AssetService struct {
	Store store.Store
}

// Get returns an asset by id.
func (s *AssetService) Get(ctx context.Context, id int64) (domain.Asset, error) {
	a, err := s.Store.Assets().GetAssetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Asset{}, ErrAssetNotFound
		}
		return domain.Asset{}, err
	}
	return a, nil
}

// List returns all assets in creation order.
func (s *AssetService) List(ctx context.Context) ([]domain.Asset, error) {
	return s.Store.Assets().ListAssets(ctx)
}
