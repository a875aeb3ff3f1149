package http

import (
	"net/http"
	"time"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
	"github.com/walletworks/portfolio/internal/portfolio/service"
	"github.com/walletworks/portfolio/pkg/httpx"
	"github.com/walletworks/portfolio/pkg/portfoliosdk"
)

// AssetsHandler handles the read-only asset catalog endpoints. Assets enter
// the system through reconciliation, not through this surface.
type AssetsHandler struct {
	AssetService *service.AssetService
}

func toAssetInfo(a domain.Asset) portfoliosdk.AssetInfo {
	return portfoliosdk.AssetInfo{
		ID:        a.ID,
		Name:      a.Name,
		Value:     a.Value.String(),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

// HandleGet handles GET /v1/assets/{id}
//
//	@Summary		Get an asset
//	@Description	Returns a single asset by id.
//	@Tags			Assets
//	@Produce		json
//	@Param			id	path		int							true	"Asset id"
//	@Success		200	{object}	portfoliosdk.AssetInfo		"Asset"
//	@Failure		400	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/assets/{id} [get].
func (h *AssetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	asset, err := h.AssetService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAssetInfo(asset))
}

// HandleList handles GET /v1/assets
//
//	@Summary		List assets
//	@Description	Returns the full asset catalog.
//	@Tags			Assets
//	@Produce		json
//	@Success		200	{object}	portfoliosdk.ListAssetsResponse	"List of assets"
//	@Failure		500	{object}	portfoliosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/assets [get].
func (h *AssetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	assets, err := h.AssetService.List(ctx)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := portfoliosdk.ListAssetsResponse{
		Assets: make([]portfoliosdk.AssetInfo, len(assets)),
	}
	for i, asset := range assets {
		response.Assets[i] = toAssetInfo(asset)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}
