package portfoliosdk

import (
	"context"
	"net/http"
)

// Reconcile applies a declarative desired-state dataset. Existing records
// are matched by natural key (asset name, client email, allocation pair)
// and updated in place; missing ones are created. The run is best-effort:
// individual failures are reported in the response without aborting the
// remaining entries.
//
// POST /v1/reconcile
func (c *Client) Reconcile(ctx context.Context, req ReconcileRequest) (*ReconcileResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/reconcile", req)
	if err != nil {
		return nil, err
	}

	var summary ReconcileResponse
	if err := decodeJSON(resp, &summary, http.StatusOK); err != nil {
		return nil, err
	}
	return &summary, nil
}
