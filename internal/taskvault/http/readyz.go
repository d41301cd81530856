package http

import (
	"net/http"
	"time"

	"github.com/quollsoft/taskvault/internal/taskvault/store"
	"github.com/quollsoft/taskvault/pkg/httpx"
	"github.com/quollsoft/taskvault/pkg/slogx"
	"github.com/quollsoft/taskvault/pkg/tasksdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe verifying the state store is usable.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	tasksdk.HealthResponse	"status, uptime, version"
//	@Failure		503	{object}	tasksdk.HealthResponse	"status, uptime, version"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := tasksdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}

		if err := st.Ping(r.Context()); err != nil {
			slogx.FromContext(r.Context()).Error("store ping failed", "err", err)
			resp.Status = "unavailable"
			httpx.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, resp)
	}
}
