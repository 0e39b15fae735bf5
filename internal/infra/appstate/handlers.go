package appstate

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type componentStatus struct {
	Name                string    `json:"name"`
	Healthy             bool      `json:"healthy"`
	Ready               bool      `json:"ready"`
	LastRun             time.Time `json:"lastRun"`
	LastError           string    `json:"lastError,omitempty"`
	LastErrorKind       string    `json:"lastErrorKind,omitempty"`
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	SuccessCount        int       `json:"successCount"`
	ErrorCount          int       `json:"errorCount"`
	AvgLatency          string    `json:"avgLatency"`
}

type statusResponse struct {
	State      string            `json:"state"`
	Uptime     string            `json:"uptime"`
	StartTime  time.Time         `json:"startTime"`
	UptimeSec  float64           `json:"uptimeSeconds"`
	Session    *Session          `json:"session,omitempty"`
	Components []componentStatus `json:"components"`
}

// HandleHealthz returns an http.HandlerFunc for the /-/healthz endpoint
func HandleHealthz(
	logger *slog.Logger,
	appState healthChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsHealthy() {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "health check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		log.DebugContext(ctx, "health check passed")
	}
}

// HandleReadyz returns an http.HandlerFunc for the /-/readyz endpoint
func HandleReadyz(
	logger *slog.Logger,
	appState readyChecker,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		if !appState.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
			log.DebugContext(ctx, "readiness check failed")

			return
		}

		w.WriteHeader(http.StatusOK)
		log.DebugContext(ctx, "readiness check passed")
	}
}

// HandleStatus returns an http.HandlerFunc for the /-/status endpoint.
// The body carries the Tiller session and the last probe of every component.
func HandleStatus(
	logger *slog.Logger,
	appState statusGetter,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.With("traceID", middleware.GetReqID(ctx))

		state := appState.GetState()
		uptime := appState.GetUptime()

		response := statusResponse{
			State:      string(state),
			Uptime:     uptime.String(),
			StartTime:  appState.GetStartTime(),
			UptimeSec:  uptime.Seconds(),
			Session:    appState.GetSession(),
			Components: componentStatuses(appState),
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)

		if err := json.NewEncoder(w).Encode(response); err != nil {
			log.ErrorContext(ctx, "failed to encode status response", "reason", err)

			return
		}

		log.DebugContext(ctx, "status response sent",
			"state", string(state),
			"uptime", uptime.String(),
		)
	}
}

func componentStatuses(appState pingerStatsGetter) []componentStatus {
	all := appState.GetAllStats()
	components := make([]componentStatus, 0, len(all))

	for name, stats := range all {
		component := componentStatus{
			Name:                name,
			Healthy:             stats.IsHealthy,
			Ready:               stats.IsReady,
			LastRun:             stats.LastRun,
			LastErrorKind:       stats.LastErrorKind,
			ConsecutiveFailures: stats.ConsecutiveFailures,
			SuccessCount:        stats.SuccessCount,
			ErrorCount:          stats.ErrorCount,
			AvgLatency:          stats.AvgLatency.String(),
		}

		if stats.LastError != nil {
			component.LastError = stats.LastError.Error()
		}

		components = append(components, component)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].Name < components[j].Name
	})

	return components
}
