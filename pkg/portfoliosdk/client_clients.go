package portfoliosdk

import (
	"context"
	"fmt"
	"net/http"
)

// CreateClient registers a new client.
//
// POST /v1/clients
func (c *Client) CreateClient(ctx context.Context, req CreateClientRequest) (*ClientInfo, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/clients", req)
	if err != nil {
		return nil, err
	}

	var info ClientInfo
	if err := decodeJSON(resp, &info, http.StatusCreated); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetClient fetches a single client by id.
//
// GET /v1/clients/{id}
func (c *Client) GetClient(ctx context.Context, id int64) (*ClientInfo, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/clients/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var info ClientInfo
	if err := decodeJSON(resp, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListClients lists all registered clients.
//
// GET /v1/clients
func (c *Client) ListClients(ctx context.Context) (*ListClientsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/clients", nil)
	if err != nil {
		return nil, err
	}

	var list ListClientsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

// UpdateClient applies a partial update to a client. Omitted fields stay
// unchanged.
//
// PATCH /v1/clients/{id}
func (c *Client) UpdateClient(ctx context.Context, id int64, req UpdateClientRequest) (*ClientInfo, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/v1/clients/%d", id), req)
	if err != nil {
		return nil, err
	}

	var info ClientInfo
	if err := decodeJSON(resp, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}
