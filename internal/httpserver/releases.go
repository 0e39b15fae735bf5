package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/tillerguard/internal/logic/auditor"
	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

// handleReleases serves the last audit snapshot. An optional status query
// parameter narrows the release list to one status code.
func (s *Server) handleReleases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := s.logger.With("traceID", middleware.GetReqID(ctx))

	snapshot := s.snapshots.Snapshot()
	if snapshot == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		logger.DebugContext(ctx, "no audit snapshot yet")

		return
	}

	if status := r.URL.Query().Get("status"); status != "" {
		snapshot = filterByStatus(snapshot, tiller.StatusCode(strings.ToUpper(status)))
	}

	w.Header().Set("Content-Type", "application/json")

	code := http.StatusOK
	if snapshot.Failed() {
		code = http.StatusBadGateway
	}

	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(snapshot); err != nil {
		logger.ErrorContext(ctx, "failed to encode releases response", "reason", err)
	}
}

func filterByStatus(snapshot *auditor.Snapshot, status tiller.StatusCode) *auditor.Snapshot {
	filtered := *snapshot
	filtered.Releases = make([]tiller.ReleaseSummary, 0, snapshot.ByStatus[status])

	for i := range snapshot.Releases {
		if snapshot.Releases[i].Status == status {
			filtered.Releases = append(filtered.Releases, snapshot.Releases[i])
		}
	}

	return &filtered
}
