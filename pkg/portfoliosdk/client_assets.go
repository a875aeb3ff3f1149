package portfoliosdk

import (
	"context"
	"fmt"
	"net/http"
)

// GetAsset fetches a single asset by id.
//
// GET /v1/assets/{id}
func (c *Client) GetAsset(ctx context.Context, id int64) (*AssetInfo, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/assets/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var info AssetInfo
	if err := decodeJSON(resp, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}

// ListAssets lists the asset catalog.
//
// GET /v1/assets
func (c *Client) ListAssets(ctx context.Context) (*ListAssetsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/assets", nil)
	if err != nil {
		return nil, err
	}

	var list ListAssetsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}
