package http

import (
	"net/http"
	"time"

	"github.com/walletworks/portfolio/internal/portfolio/store"
	"github.com/walletworks/portfolio/pkg/httpx"
	"github.com/walletworks/portfolio/pkg/portfoliosdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and a check on datastore connectivity
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	portfoliosdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	portfoliosdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &portfoliosdk.HealthChecks{
			Database: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := portfoliosdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
