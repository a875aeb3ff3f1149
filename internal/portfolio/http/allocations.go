package http

import (
	"net/http"
	"time"

	"github.com/walletworks/portfolio/internal/portfolio/domain"
	"github.com/walletworks/portfolio/internal/portfolio/service"
	"github.com/walletworks/portfolio/pkg/httpx"
	"github.com/walletworks/portfolio/pkg/portfoliosdk"
)

// AllocationsHandler handles the allocation lifecycle endpoints.
type AllocationsHandler struct {
	AllocationService *service.AllocationService
}

func toAllocationInfo(a domain.Allocation) portfoliosdk.AllocationInfo {
	return portfoliosdk.AllocationInfo{
		ID:        a.ID,
		ClientID:  a.ClientID,
		AssetID:   a.AssetID,
		Quantity:  a.Quantity,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func toAllocationDetail(d domain.AllocationDetail) portfoliosdk.AllocationDetail {
	return portfoliosdk.AllocationDetail{
		AllocationInfo: toAllocationInfo(d.Allocation),
		Client: portfoliosdk.ClientSummary{
			ID:    d.Client.ID,
			Name:  d.Client.Name,
			Email: d.Client.Email,
		},
		Asset: portfoliosdk.AssetSummary{
			ID:    d.Asset.ID,
			Name:  d.Asset.Name,
			Value: d.Asset.Value.String(),
		},
	}
}

// HandleCreate handles POST /v1/allocations
//
//	@Summary		Create an allocation
//	@Description	Links a client to an asset with a positive quantity. Each (client, asset) pair may only be allocated once.
//	@Tags			Allocations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portfoliosdk.CreateAllocationRequest	true	"Allocation request"
//	@Success		201		{object}	portfoliosdk.AllocationInfo				"Created allocation"
//	@Failure		400		{object}	portfoliosdk.ValidationErrorResponse	"code, message, details"
//	@Failure		404		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Router			/v1/allocations [post].
func (h *AllocationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req portfoliosdk.CreateAllocationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	alloc, err := h.AllocationService.Create(ctx, req.ClientID, req.AssetID, req.Quantity)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toAllocationInfo(alloc))
}

// HandleGet handles GET /v1/allocations/{id}
//
//	@Summary		Get an allocation
//	@Description	Returns a single allocation by id.
//	@Tags			Allocations
//	@Produce		json
//	@Param			id	path		int							true	"Allocation id"
//	@Success		200	{object}	portfoliosdk.AllocationInfo	"Allocation"
//	@Failure		400	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/allocations/{id} [get].
func (h *AllocationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	alloc, err := h.AllocationService.Get(ctx, id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAllocationInfo(alloc))
}

// HandleListByClient handles GET /v1/clients/{id}/allocations
//
//	@Summary		List a client's allocations
//	@Description	Returns the client's allocations joined with client and asset snapshots. A client with no allocations gets an empty list.
//	@Tags			Allocations
//	@Produce		json
//	@Param			id	path		int									true	"Client id"
//	@Success		200	{object}	portfoliosdk.ListAllocationsResponse	"List of allocations"
//	@Failure		400	{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Failure		404	{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Failure		500	{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Router			/v1/clients/{id}/allocations [get].
func (h *AllocationsHandler) HandleListByClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clientID, ok := pathID(w, r)
	if !ok {
		return
	}

	details, err := h.AllocationService.ListByClient(ctx, clientID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	response := portfoliosdk.ListAllocationsResponse{
		Allocations: make([]portfoliosdk.AllocationDetail, len(details)),
	}
	for i, detail := range details {
		response.Allocations[i] = toAllocationDetail(detail)
	}

	httpx.WriteJSON(w, http.StatusOK, response)
}

// HandleUpdate handles PATCH /v1/allocations/{id}
//
//	@Summary		Update an allocation
//	@Description	Applies a partial update. An omitted quantity means no change.
//	@Tags			Allocations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int										true	"Allocation id"
//	@Param			request	body		portfoliosdk.UpdateAllocationRequest	true	"Fields to update"
//	@Success		200		{object}	portfoliosdk.AllocationInfo				"Updated allocation"
//	@Failure		400		{object}	portfoliosdk.ValidationErrorResponse	"code, message, details"
//	@Failure		404		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	portfoliosdk.ErrorResponse				"error, error_description"
//	@Router			/v1/allocations/{id} [patch].
func (h *AllocationsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req portfoliosdk.UpdateAllocationRequest
	if !decodeRequest(w, r, &req) {
		return
	}

	alloc, err := h.AllocationService.Update(ctx, id, domain.AllocationPatch{
		Quantity: req.Quantity,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAllocationInfo(alloc))
}

// HandleDelete handles DELETE /v1/allocations/{id}
//
//	@Summary		Delete an allocation
//	@Description	Removes an allocation. The client and asset rows are untouched.
//	@Tags			Allocations
//	@Param			id	path	int	true	"Allocation id"
//	@Success		204	"Deleted"
//	@Failure		400	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Failure		500	{object}	portfoliosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/allocations/{id} [delete].
func (h *AllocationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.AllocationService.Delete(ctx, id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
