package appstate

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/tillerguard/internal/infra/pinger"
)

type fakeState struct {
	healthy   bool
	ready     bool
	state     State
	uptime    time.Duration
	startTime time.Time
	session   *Session
	stats     map[string]*pinger.Statistics
}

func (f *fakeState) IsHealthy() bool                            { return f.healthy }
func (f *fakeState) IsReady() bool                              { return f.ready }
func (f *fakeState) GetState() State                            { return f.state }
func (f *fakeState) GetUptime() time.Duration                   { return f.uptime }
func (f *fakeState) GetStartTime() time.Time                    { return f.startTime }
func (f *fakeState) GetSession() *Session                       { return f.session }
func (f *fakeState) GetAllStats() map[string]*pinger.Statistics { return f.stats }

func serve(t *testing.T, handler http.HandlerFunc, path string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)

	handler.ServeHTTP(rec, req)

	return rec
}

func TestHandleProbes(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tests := []struct {
		name        string
		giveHealthy bool
		giveReady   bool
		wantHealthz int
		wantReadyz  int
	}{
		{
			name:        "running session",
			giveHealthy: true,
			giveReady:   true,
			wantHealthz: http.StatusOK,
			wantReadyz:  http.StatusOK,
		},
		{
			name:        "channel failing readiness check",
			giveHealthy: true,
			giveReady:   false,
			wantHealthz: http.StatusOK,
			wantReadyz:  http.StatusServiceUnavailable,
		},
		{
			name:        "terminating",
			wantHealthz: http.StatusServiceUnavailable,
			wantReadyz:  http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := &fakeState{healthy: tt.giveHealthy, ready: tt.giveReady}

			require.Equal(t, tt.wantHealthz, serve(t, HandleHealthz(logger, state), "/-/healthz").Code)
			require.Equal(t, tt.wantReadyz, serve(t, HandleReadyz(logger, state), "/-/readyz").Code)
		})
	}
}

func TestHandleStatus(t *testing.T) {
	t.Parallel()

	giveStartTime := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	state := &fakeState{
		state:     StateRunning,
		uptime:    5 * time.Second,
		startTime: giveStartTime,
		session: &Session{
			Endpoint:      "10.0.0.7:44134",
			Pod:           "kube-system/tiller-deploy-1",
			ServerVersion: "v2.16.12",
		},
		stats: map[string]*pinger.Statistics{
			"tiller-channel": {
				IsHealthy:           true,
				IsReady:             false,
				LastError:           errors.New("connection is in transient failure"),
				LastErrorKind:       "ServicesUnavailable",
				ConsecutiveFailures: 2,
			},
			"release-auditor": {IsHealthy: true, IsReady: true, SuccessCount: 3},
		},
	}

	rec := serve(t, HandleStatus(slog.Default(), state), "/-/status")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body statusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	require.Equal(t, string(StateRunning), body.State)
	require.InDelta(t, 5.0, body.UptimeSec, 0.001)
	require.True(t, giveStartTime.Equal(body.StartTime))
	require.NotNil(t, body.Session)
	require.Equal(t, "10.0.0.7:44134", body.Session.Endpoint)
	require.Len(t, body.Components, 2)
	require.Equal(t, "release-auditor", body.Components[0].Name)
	require.Equal(t, "tiller-channel", body.Components[1].Name)
	require.Equal(t, "connection is in transient failure", body.Components[1].LastError)
	require.Equal(t, "ServicesUnavailable", body.Components[1].LastErrorKind)
	require.Equal(t, 2, body.Components[1].ConsecutiveFailures)
	require.False(t, body.Components[1].Ready)
}
