package pinger_test

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/tillerguard/internal/infra/pinger"
	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

type fakeComponent struct {
	name           string
	fail           atomic.Bool
	err            error
	calls          atomic.Int32
	readyCritical  *bool
	healthCritical *bool
	timeout        time.Duration
	delay          time.Duration
}

func (f *fakeComponent) Name() string { return f.name }

func (f *fakeComponent) Ping(ctx context.Context) error {
	f.calls.Add(1)

	if f.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(f.delay):
		}
	}

	if f.fail.Load() {
		return f.err
	}

	return nil
}

type criticalComponent struct {
	*fakeComponent
}

func (c criticalComponent) PingerReadyCritical() bool { return *c.readyCritical }

func (c criticalComponent) PingerCritical() bool { return *c.healthCritical }

func (c criticalComponent) PingerTimeout() time.Duration { return c.timeout }

func ptr(v bool) *bool { return &v }

func startService(t *testing.T, svc *pinger.Service) {
	t.Helper()

	require.NoError(t, svc.Start(t.Context()))

	select {
	case <-svc.Ready():
	case <-time.After(time.Second):
		t.Fatal("pinger did not complete the first round")
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		_ = svc.Shutdown(ctx)
	})
}

func TestService_Register(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		givePrev []string
		giveNew  pinger.Pinger
		wantErr  error
	}{
		{
			name:    "valid component",
			giveNew: &fakeComponent{name: "tiller-channel"},
		},
		{
			name:    "nil component",
			giveNew: nil,
			wantErr: pinger.ErrNilPinger,
		},
		{
			name:     "duplicate name",
			givePrev: []string{"tiller-channel"},
			giveNew:  &fakeComponent{name: "tiller-channel"},
			wantErr:  pinger.ErrPingerAlreadyRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := pinger.New(slog.Default(), time.Second)
			for _, name := range tt.givePrev {
				require.NoError(t, svc.Register(&fakeComponent{name: name}))
			}

			err := svc.Register(tt.giveNew)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestService_GetStats_Unknown(t *testing.T) {
	t.Parallel()

	svc := pinger.New(slog.Default(), time.Second)

	_, err := svc.GetStats("release-auditor")
	require.ErrorIs(t, err, pinger.ErrPingerNotFound)
}

func TestService_FirstRound(t *testing.T) {
	t.Parallel()

	svc := pinger.New(slog.Default(), time.Hour)
	component := &fakeComponent{name: "tiller-channel"}
	require.NoError(t, svc.Register(component))

	startService(t, svc)

	stats, err := svc.GetStats("tiller-channel")
	require.NoError(t, err)
	require.Equal(t, int32(1), component.calls.Load())
	require.Equal(t, 1, stats.SuccessCount)
	require.Zero(t, stats.ErrorCount)
	require.True(t, stats.IsReady)
	require.True(t, stats.IsHealthy)
	require.False(t, stats.LastRun.IsZero())
}

func TestService_Criticality(t *testing.T) {
	t.Parallel()

	unavailable := taxonomy.New(taxonomy.KindServicesUnavailable, nil)

	tests := []struct {
		name               string
		giveReadyCritical  bool
		giveHealthCritical bool
		giveThreshold      int
		wantReady          bool
		wantHealthy        bool
	}{
		{
			name:               "single failure turns critical component unready",
			giveReadyCritical:  true,
			giveHealthCritical: true,
			giveThreshold:      3,
			wantReady:          false,
			wantHealthy:        true,
		},
		{
			name:               "threshold reached turns component unhealthy",
			giveReadyCritical:  true,
			giveHealthCritical: true,
			giveThreshold:      1,
			wantReady:          false,
			wantHealthy:        false,
		},
		{
			name:               "non critical component never gates",
			giveReadyCritical:  false,
			giveHealthCritical: false,
			giveThreshold:      1,
			wantReady:          true,
			wantHealthy:        true,
		},
		{
			name:               "ready critical only",
			giveReadyCritical:  true,
			giveHealthCritical: false,
			giveThreshold:      1,
			wantReady:          false,
			wantHealthy:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			component := &fakeComponent{
				name:           "tiller-channel",
				err:            unavailable,
				readyCritical:  ptr(tt.giveReadyCritical),
				healthCritical: ptr(tt.giveHealthCritical),
			}
			component.fail.Store(true)

			svc := pinger.New(slog.Default(), time.Hour, pinger.WithFailureThreshold(tt.giveThreshold))
			require.NoError(t, svc.Register(criticalComponent{component}))

			startService(t, svc)

			stats, err := svc.GetStats("tiller-channel")
			require.NoError(t, err)
			require.Equal(t, 1, stats.ConsecutiveFailures)
			require.Equal(t, tt.wantReady, stats.IsReady)
			require.Equal(t, tt.wantHealthy, stats.IsHealthy)
			require.Equal(t, string(taxonomy.KindServicesUnavailable), stats.LastErrorKind)
			require.ErrorIs(t, stats.LastError, unavailable)
		})
	}
}

func TestService_Recovery(t *testing.T) {
	t.Parallel()

	component := &fakeComponent{name: "tiller-channel", err: errors.New("connection refused")}
	component.fail.Store(true)

	svc := pinger.New(slog.Default(), 10*time.Millisecond, pinger.WithFailureThreshold(1))
	require.NoError(t, svc.Register(component))

	startService(t, svc)

	stats, err := svc.GetStats("tiller-channel")
	require.NoError(t, err)
	require.False(t, stats.IsHealthy)
	require.Empty(t, stats.LastErrorKind)

	component.fail.Store(false)

	require.Eventually(t, func() bool {
		stats, err := svc.GetStats("tiller-channel")

		return err == nil && stats.IsHealthy && stats.IsReady
	}, time.Second, 5*time.Millisecond)

	stats, err = svc.GetStats("tiller-channel")
	require.NoError(t, err)
	require.NoError(t, stats.LastError)
	require.Zero(t, stats.ConsecutiveFailures)
	require.False(t, stats.LastErrorAt.IsZero())
	require.Positive(t, stats.ErrorCount)
}

func TestService_PingerTimeout(t *testing.T) {
	t.Parallel()

	component := &fakeComponent{
		name:           "release-auditor",
		delay:          time.Second,
		timeout:        20 * time.Millisecond,
		readyCritical:  ptr(true),
		healthCritical: ptr(true),
	}

	svc := pinger.New(slog.Default(), time.Hour)
	require.NoError(t, svc.Register(criticalComponent{component}))

	startService(t, svc)

	stats, err := svc.GetStats("release-auditor")
	require.NoError(t, err)
	require.ErrorIs(t, stats.LastError, context.DeadlineExceeded)
	require.False(t, stats.IsReady)
	require.Less(t, stats.LastLatency, time.Second)
}

func TestService_Shutdown(t *testing.T) {
	t.Parallel()

	t.Run("never started", func(t *testing.T) {
		t.Parallel()

		svc := pinger.New(slog.Default(), time.Hour)

		require.NoError(t, svc.Shutdown(t.Context()))
	})

	t.Run("stops the loop without waiting for the next tick", func(t *testing.T) {
		t.Parallel()

		component := &fakeComponent{name: "tiller-channel"}
		svc := pinger.New(slog.Default(), time.Hour)
		require.NoError(t, svc.Register(component))
		require.NoError(t, svc.Start(t.Context()))
		<-svc.Ready()

		ctx, cancel := context.WithTimeout(t.Context(), time.Second)
		defer cancel()

		require.NoError(t, svc.Shutdown(ctx))
		require.NoError(t, svc.Shutdown(ctx))
		require.Equal(t, int32(1), component.calls.Load())
	})
}
