package portfoliosdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateAllocation links a client to an asset with a quantity. Each
// (client, asset) pair may only be allocated once.
//
// POST /v1/allocations
func (c *Client) CreateAllocation(ctx context.Context, req CreateAllocationRequest) (*AllocationInfo, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/allocations", req)
	if err != nil {
		return nil, err
	}

	var info AllocationInfo
	if err := decodeJSON(resp, &info, http.StatusCreated); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetAllocation fetches a single allocation by id.
//
// GET /v1/allocations/{id}
func (c *Client) GetAllocation(ctx context.Context, id int64) (*AllocationInfo, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/allocations/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var info AllocationInfo
	if err := decodeJSON(resp, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListClientAllocations lists a client's allocations joined with client and
// asset snapshots.
//
// GET /v1/clients/{id}/allocations
func (c *Client) ListClientAllocations(ctx context.Context, clientID int64) (*ListAllocationsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/clients/%d/allocations", clientID), nil)
	if err != nil {
		return nil, err
	}

	var list ListAllocationsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateAllocation applies a partial update to an allocation.
//
// PATCH /v1/allocations/{id}
func (c *Client) UpdateAllocation(ctx context.Context, id int64, req UpdateAllocationRequest) (*AllocationInfo, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/v1/allocations/%d", id), req)
	if err != nil {
		return nil, err
	}

	var info AllocationInfo
	if err := decodeJSON(resp, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}

// DeleteAllocation removes an allocation.
//
// DELETE /v1/allocations/{id}
func (c *Client) DeleteAllocation(ctx context.Context, id int64) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/v1/allocations/%d", id), nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil, http.StatusNoContent)
}
