package portfolio_test

import (
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	httpapi "github.com/walletworks/portfolio/internal/portfolio/http"
	"github.com/walletworks/portfolio/internal/portfolio/service"
	"github.com/walletworks/portfolio/internal/portfolio/store/drivers/sqlite"
	"github.com/walletworks/portfolio/pkg/portfoliosdk"
)

/*
 * Helpers for portfolio service end-to-end tests. Each test gets a full
 * service stack (in-memory datastore, services, router) behind a real
 * HTTP listener, exercised through the typed SDK client.
 */

// setupService starts the full service stack on an ephemeral port and
// returns an SDK client pointed at it.
func setupService(t *testing.T) *portfoliosdk.Client {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	router := httpapi.NewRouter("test", st, slog.Default())
	router.ClientService = &service.ClientService{Store: st}
	router.AssetService = &service.AssetService{Store: st}
	router.AllocationService = &service.AllocationService{Store: st}
	router.ReconcileService = &service.ReconcileService{Store: st}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return portfoliosdk.NewClient(server.URL)
}

// seedDataset is the reference desired-state dataset used across tests.
func seedDataset() portfoliosdk.ReconcileRequest {
	inactive := false
	return portfoliosdk.ReconcileRequest{
		Assets: []portfoliosdk.ReconcileAsset{
			{Name: "Gold", Value: "1850.75"},
			{Name: "Treasury Bond", Value: "100"},
			{Name: "Tech Fund", Value: "452.30"},
		},
		Clients: []portfoliosdk.ReconcileClient{
			{Name: "Ada Lovelace", Email: "ada@example.com"},
			{Name: "Grace Hopper", Email: "grace@example.com"},
			{Name: "Retired Account", Email: "retired@example.com", Status: &inactive},
		},
		Allocations: []portfoliosdk.ReconcileAllocation{
			{ClientEmail: "ada@example.com", AssetName: "Gold", Quantity: 10},
			{ClientEmail: "ada@example.com", AssetName: "Tech Fund", Quantity: 3},
		},
	}
}

// findAsset looks an asset up by name in a list response.
func findAsset(t *testing.T, list *portfoliosdk.ListAssetsResponse, name string) portfoliosdk.AssetInfo {
	t.Helper()

	for _, a := range list.Assets {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("asset %q not found", name)
	return portfoliosdk.AssetInfo{}
}

// findClient looks a client up by email in a list response.
func findClient(t *testing.T, list *portfoliosdk.ListClientsResponse, email string) portfoliosdk.ClientInfo {
	t.Helper()

	for _, c := range list.Clients {
		if c.Email == email {
			return c
		}
	}
	t.Fatalf("client %q not found", email)
	return portfoliosdk.ClientInfo{}
}
