package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletworks/portfolio/internal/portfolio/service"
	"github.com/walletworks/portfolio/internal/portfolio/store/drivers/sqlite"
	"github.com/walletworks/portfolio/pkg/portfoliosdk"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	r := NewRouter("test", st, slog.Default())
	r.ClientService = &service.ClientService{Store: st}
	r.AssetService = &service.AssetService{Store: st}
	r.AllocationService = &service.AllocationService{Store: st}
	r.ReconcileService = &service.ReconcileService{Store: st}
	r.ApplyRoutes()
	return r
}

func doJSON(t *testing.T, r *Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func createTestClient(t *testing.T, r *Router, name, email string) portfoliosdk.ClientInfo {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/v1/clients", portfoliosdk.CreateClientRequest{
		Name:  name,
		Email: email,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[portfoliosdk.ClientInfo](t, rec)
}

func seedTestAsset(t *testing.T, r *Router, name, value string) portfoliosdk.AssetInfo {
	t.Helper()

	rec := doJSON(t, r, http.MethodPost, "/v1/reconcile", portfoliosdk.ReconcileRequest{
		Assets: []portfoliosdk.ReconcileAsset{{Name: name, Value: value}},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	list := decode[portfoliosdk.ListAssetsResponse](t, doJSON(t, r, http.MethodGet, "/v1/assets", nil))
	for _, a := range list.Assets {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("asset %q not found after reconcile", name)
	return portfoliosdk.AssetInfo{}
}

func TestCreateClient(t *testing.T) {
	r := newTestRouter(t)

	client := createTestClient(t, r, "Ada Lovelace", "ada@example.com")
	assert.NotZero(t, client.ID)
	assert.Equal(t, "Ada Lovelace", client.Name)
	assert.Equal(t, "ada@example.com", client.Email)
	assert.True(t, client.Status, "status should default to active")
	assert.NotEmpty(t, client.CreatedAt)
}

func TestCreateClientValidation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/clients", portfoliosdk.CreateClientRequest{
		Name:  "A",
		Email: "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[portfoliosdk.ValidationErrorResponse](t, rec)
	assert.Equal(t, portfoliosdk.ErrorCodeValidation, resp.Code)
	assert.Contains(t, resp.Details, "name")
	assert.Contains(t, resp.Details, "email")
}

func TestCreateClientDuplicateEmail(t *testing.T) {
	r := newTestRouter(t)

	createTestClient(t, r, "Ada Lovelace", "ada@example.com")

	rec := doJSON(t, r, http.MethodPost, "/v1/clients", portfoliosdk.CreateClientRequest{
		Name:  "Someone Else",
		Email: "ada@example.com",
	})
	require.Equal(t, http.StatusConflict, rec.Code)

	resp := decode[portfoliosdk.ErrorResponse](t, rec)
	assert.Equal(t, portfoliosdk.ErrorCodeEmailTaken, resp.Error)
}

func TestGetClientNotFound(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/v1/clients/999", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	resp := decode[portfoliosdk.ErrorResponse](t, rec)
	assert.Equal(t, portfoliosdk.ErrorCodeClientNotFound, resp.Error)
}

func TestGetClientBadID(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/v1/clients/abc", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[portfoliosdk.ErrorResponse](t, rec)
	assert.Equal(t, portfoliosdk.ErrorCodeInvalidRequest, resp.Error)
}

func TestUpdateClient(t *testing.T) {
	r := newTestRouter(t)

	client := createTestClient(t, r, "Ada Lovelace", "ada@example.com")

	newName := "Ada Byron"
	inactive := false
	rec := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/v1/clients/%d", client.ID), portfoliosdk.UpdateClientRequest{
		Name:   &newName,
		Status: &inactive,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	updated := decode[portfoliosdk.ClientInfo](t, rec)
	assert.Equal(t, "Ada Byron", updated.Name)
	assert.Equal(t, "ada@example.com", updated.Email, "email should be unchanged")
	assert.False(t, updated.Status)
}

func TestListAssets(t *testing.T) {
	r := newTestRouter(t)

	seedTestAsset(t, r, "Gold", "1850.75")
	seedTestAsset(t, r, "Silver", "23.50")

	rec := doJSON(t, r, http.MethodGet, "/v1/assets", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	list := decode[portfoliosdk.ListAssetsResponse](t, rec)
	require.Len(t, list.Assets, 2)
}

func TestAllocationLifecycle(t *testing.T) {
	r := newTestRouter(t)

	client := createTestClient(t, r, "Ada Lovelace", "ada@example.com")
	asset := seedTestAsset(t, r, "Gold", "1850.75")

	// Create
	rec := doJSON(t, r, http.MethodPost, "/v1/allocations", portfoliosdk.CreateAllocationRequest{
		ClientID: client.ID,
		AssetID:  asset.ID,
		Quantity: 10,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	alloc := decode[portfoliosdk.AllocationInfo](t, rec)
	assert.Equal(t, int64(10), alloc.Quantity)

	// Duplicate pair is rejected
	rec = doJSON(t, r, http.MethodPost, "/v1/allocations", portfoliosdk.CreateAllocationRequest{
		ClientID: client.ID,
		AssetID:  asset.ID,
		Quantity: 5,
	})
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, portfoliosdk.ErrorCodeDuplicateAllocation, decode[portfoliosdk.ErrorResponse](t, rec).Error)

	// Update
	newQty := int64(15)
	rec = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/v1/allocations/%d", alloc.ID), portfoliosdk.UpdateAllocationRequest{
		Quantity: &newQty,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(15), decode[portfoliosdk.AllocationInfo](t, rec).Quantity)

	// List by client carries the joined snapshots
	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/v1/clients/%d/allocations", client.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[portfoliosdk.ListAllocationsResponse](t, rec)
	require.Len(t, list.Allocations, 1)
	assert.Equal(t, "Ada Lovelace", list.Allocations[0].Client.Name)
	assert.Equal(t, "Gold", list.Allocations[0].Asset.Name)
	assert.Equal(t, "1850.75", list.Allocations[0].Asset.Value)

	// Delete
	rec = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/v1/allocations/%d", alloc.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/v1/allocations/%d", alloc.ID), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAllocationUnknownReferences(t *testing.T) {
	r := newTestRouter(t)

	client := createTestClient(t, r, "Ada Lovelace", "ada@example.com")

	rec := doJSON(t, r, http.MethodPost, "/v1/allocations", portfoliosdk.CreateAllocationRequest{
		ClientID: client.ID,
		AssetID:  999,
		Quantity: 10,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, portfoliosdk.ErrorCodeAssetNotFound, decode[portfoliosdk.ErrorResponse](t, rec).Error)

	rec = doJSON(t, r, http.MethodPost, "/v1/allocations", portfoliosdk.CreateAllocationRequest{
		ClientID: 999,
		AssetID:  1,
		Quantity: 10,
	})
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, portfoliosdk.ErrorCodeClientNotFound, decode[portfoliosdk.ErrorResponse](t, rec).Error)
}

func TestCreateAllocationValidation(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/allocations", portfoliosdk.CreateAllocationRequest{
		ClientID: 0,
		AssetID:  -1,
		Quantity: 0,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode[portfoliosdk.ValidationErrorResponse](t, rec)
	assert.Contains(t, resp.Details, "clientId")
	assert.Contains(t, resp.Details, "assetId")
	assert.Contains(t, resp.Details, "quantity")
}

func TestListAllocationsEmptyClient(t *testing.T) {
	r := newTestRouter(t)

	client := createTestClient(t, r, "Ada Lovelace", "ada@example.com")

	rec := doJSON(t, r, http.MethodGet, fmt.Sprintf("/v1/clients/%d/allocations", client.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode[portfoliosdk.ListAllocationsResponse](t, rec).Allocations)
}

func TestReconcileEndpoint(t *testing.T) {
	r := newTestRouter(t)

	req := portfoliosdk.ReconcileRequest{
		Assets: []portfoliosdk.ReconcileAsset{
			{Name: "Gold", Value: "1850.75"},
		},
		Clients: []portfoliosdk.ReconcileClient{
			{Name: "Ada Lovelace", Email: "ada@example.com"},
		},
		Allocations: []portfoliosdk.ReconcileAllocation{
			{ClientEmail: "ada@example.com", AssetName: "Gold", Quantity: 10},
		},
	}

	rec := doJSON(t, r, http.MethodPost, "/v1/reconcile", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	summary := decode[portfoliosdk.ReconcileResponse](t, rec)
	assert.Equal(t, 3, summary.Created)
	assert.Equal(t, 0, summary.Failed)

	// Second run converges without creating anything new
	rec = doJSON(t, r, http.MethodPost, "/v1/reconcile", req)
	require.Equal(t, http.StatusOK, rec.Code)
	summary = decode[portfoliosdk.ReconcileResponse](t, rec)
	assert.Equal(t, 0, summary.Created)
	assert.Equal(t, 3, summary.Updated)
}

func TestReconcileRejectsBadAssetValue(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/v1/reconcile", portfoliosdk.ReconcileRequest{
		Assets: []portfoliosdk.ReconcileAsset{{Name: "Gold", Value: "not-a-number"}},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, portfoliosdk.ErrorCodeInvalidRequest, decode[portfoliosdk.ErrorResponse](t, rec).Error)
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/livez", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[portfoliosdk.HealthResponse](t, rec).Status)

	rec = doJSON(t, r, http.MethodGet, "/readyz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[portfoliosdk.HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	assert.Equal(t, "ok", health.Checks.Database)
}

func TestNonIntegerQuantityIsAValidationError(t *testing.T) {
	r := newTestRouter(t)

	body := bytes.NewBufferString(`{"clientId":1,"assetId":2,"quantity":1.5}`)
	req := httptest.NewRequest(http.MethodPost, "/v1/allocations", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[portfoliosdk.ValidationErrorResponse](t, rec)
	assert.Equal(t, portfoliosdk.ErrorCodeValidation, resp.Code)
	assert.Contains(t, resp.Details, "quantity")
	assert.Equal(t, "Must be an integer", resp.Details["quantity"])
}

func TestInvalidJSONBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/clients", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, portfoliosdk.ErrorCodeInvalidRequest, decode[portfoliosdk.ErrorResponse](t, rec).Error)
}
