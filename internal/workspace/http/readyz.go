package http

import (
	"net/http"
	"time"

	"github.com/rexahq/workspace-service/internal/workspace/store"
	"github.com/rexahq/workspace-service/pkg/httpx"
	"github.com/rexahq/workspace-service/pkg/wssdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe returning service health and the status of critical dependencies
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	wssdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	wssdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &wssdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := wssdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
