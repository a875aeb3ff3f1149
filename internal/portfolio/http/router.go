package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/walletworks/portfolio/internal/portfolio/service"
	"github.com/walletworks/portfolio/internal/portfolio/store"
	"github.com/walletworks/portfolio/pkg/httpx"
	"github.com/walletworks/portfolio/pkg/slogx"

	_ "github.com/walletworks/portfolio/api/portfolio" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	ClientService     *service.ClientService
	AssetService      *service.AssetService
	AllocationService *service.AllocationService
	ReconcileService  *service.ReconcileService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerClients()
	r.registerAssets()
	r.registerAllocations()
	r.registerReconcile()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Portfolio Allocation Service API
//	@version		0.1.0
//	@description	Ledger of which client holds how much of which asset. Maintains the client and asset
//	@description	catalogs, the allocation join rows between them, and a declarative reconciliation
//	@description	endpoint that converges the datastore to a desired-state dataset.
//
//	@contact.name	WalletWorks Team
//	@contact.url	https://github.com/walletworks/portfolio
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{ClientService: r.ClientService}

	// POST /v1/clients - moderate rate limit (write path)
	r.Mux.Handle("POST /v1/clients",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// Read paths - lenient rate limit
	r.Mux.Handle("GET /v1/clients",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/clients/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("PATCH /v1/clients/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAssets() {
	h := &AssetsHandler{AssetService: r.AssetService}

	// Read-only catalog - lenient rate limit
	r.Mux.Handle("GET /v1/assets",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/assets/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerAllocations() {
	h := &AllocationsHandler{AllocationService: r.AllocationService}

	// Write paths - moderate rate limit
	r.Mux.Handle("POST /v1/allocations",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PATCH /v1/allocations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleUpdate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/allocations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleDelete),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// Read paths - lenient rate limit
	r.Mux.Handle("GET /v1/allocations/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/clients/{id}/allocations",
		httpx.Chain(http.HandlerFunc(h.HandleListByClient),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerReconcile() {
	h := &ReconcileHandler{ReconcileService: r.ReconcileService}

	// Bulk write endpoint - moderate rate limit
	r.Mux.Handle("POST /v1/reconcile",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /metrics", httpx.MetricsHandler())
}

// pathID parses the {id} path parameter, writing a 400 when it is not a
// positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		writeInvalidRequest(w, "Path parameter 'id' must be a positive integer")
		return 0, false
	}
	return id, true
}
