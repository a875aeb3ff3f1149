package http

import (
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/walletworks/portfolio/internal/portfolio/service"
	"github.com/walletworks/portfolio/pkg/httpx"
	"github.com/walletworks/portfolio/pkg/portfoliosdk"
)

// ReconcileHandler handles the desired-state reconciliation endpoint.
type ReconcileHandler struct {
	ReconcileService *service.ReconcileService
}

// ServeHTTP handles POST /v1/reconcile
//
//	@Summary		Reconcile a desired-state dataset
//	@Description	Applies a declarative dataset: assets and clients first, then allocations, each matched by natural key and upserted.
//	@Description	The run is best-effort; individual failures are counted and reported without aborting the remaining entries.
//	@Tags			Reconcile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portfoliosdk.ReconcileRequest	true	"Desired-state dataset"
//	@Success		200		{object}	portfoliosdk.ReconcileResponse	"created, updated, failed, failures"
//	@Failure		400		{object}	portfoliosdk.ErrorResponse		"error, error_description"
//	@Failure		500		{object}	portfoliosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/reconcile [post].
func (h *ReconcileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portfoliosdk.ReconcileRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	desired, err := toDesiredState(req)
	if err != nil {
		writeInvalidRequest(w, err.Error())
		return
	}

	summary, err := h.ReconcileService.Reconcile(ctx, desired)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portfoliosdk.ReconcileResponse{
		Created:  summary.Created,
		Updated:  summary.Updated,
		Failed:   summary.Failed,
		Failures: summary.Failures,
	})
}

// toDesiredState converts the wire dataset, rejecting asset values that do
// not parse as decimals before the run starts.
func toDesiredState(req portfoliosdk.ReconcileRequest) (service.DesiredState, error) {
	desired := service.DesiredState{
		Assets:      make([]service.DesiredAsset, len(req.Assets)),
		Clients:     make([]service.DesiredClient, len(req.Clients)),
		Allocations: make([]service.DesiredAllocation, len(req.Allocations)),
	}

	for i, a := range req.Assets {
		value, err := decimal.NewFromString(a.Value)
		if err != nil {
			return service.DesiredState{}, fmt.Errorf("asset %q: invalid value %q", a.Name, a.Value)
		}
		desired.Assets[i] = service.DesiredAsset{Name: a.Name, Value: value}
	}

	for i, c := range req.Clients {
		desired.Clients[i] = service.DesiredClient{
			Name:   c.Name,
			Email:  c.Email,
			Status: c.Status,
		}
	}

	for i, al := range req.Allocations {
		desired.Allocations[i] = service.DesiredAllocation{
			ClientEmail: al.ClientEmail,
			AssetName:   al.AssetName,
			Quantity:    al.Quantity,
		}
	}

	return desired, nil
}
