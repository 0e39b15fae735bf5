package app

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
	metricsfake "k8s.io/metrics/pkg/client/clientset/versioned/fake"

	"github.com/skillcoder/tillerguard/internal/adapters/outbound/k8s"
	"github.com/skillcoder/tillerguard/internal/config"
	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

type allChannelsCloseCase struct {
	name                         string
	giveNumChannels              int
	giveContextCancelBeforeClose bool
	wantClosed                   bool
}

func TestAllChannelsClose(t *testing.T) {
	logger := slog.Default()

	tests := []allChannelsCloseCase{
		{
			name:            "zero channels closes immediately",
			giveNumChannels: 0,
			wantClosed:      true,
		},
		{
			name:            "one channel closes when it closes",
			giveNumChannels: 1,
			wantClosed:      true,
		},
		{
			name:            "two channels close when both close",
			giveNumChannels: 2,
			wantClosed:      true,
		},
		{
			name:                         "context cancelled then channels close",
			giveNumChannels:              2,
			giveContextCancelBeforeClose: true,
			wantClosed:                   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()

			if tt.giveContextCancelBeforeClose {
				var cancel context.CancelFunc

				ctx, cancel = context.WithCancel(ctx)
				cancel()
			}

			chans := make([]<-chan struct{}, 0, tt.giveNumChannels)
			readyChans := make([]chan struct{}, 0, tt.giveNumChannels)

			for range tt.giveNumChannels {
				ch := make(chan struct{})

				readyChans = append(readyChans, ch)
				chans = append(chans, ch)
			}

			out := allChannelsClose(ctx, logger, chans...)

			if tt.giveNumChannels == 0 {
				select {
				case <-out:
				case <-time.After(100 * time.Millisecond):
					t.Fatal("expected out channel to close immediately")
				}

				return
			}

			for _, ch := range readyChans {
				close(ch)
			}

			select {
			case <-out:
			case <-time.After(500 * time.Millisecond):
				t.Fatal("expected out channel to close after all input channels closed")
			}
		})
	}
}

func TestResolveEndpoint(t *testing.T) {
	t.Parallel()

	logger := slog.Default()

	tillerPod := &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "tiller-deploy-7d9c",
			Namespace: "kube-system",
			UID:       "uid-1",
			Labels:    map[string]string{"app": "helm", "name": "tiller"},
		},
		Status: corev1.PodStatus{Phase: corev1.PodRunning, PodIP: "10.0.0.7"},
	}

	tests := []struct {
		name         string
		giveHost     string
		givePods     []*corev1.Pod
		wantEndpoint string
		wantPod      string
		wantKind     taxonomy.Kind
	}{
		{
			name:         "configured host skips discovery",
			giveHost:     "tiller-deploy.kube-system:44134",
			wantEndpoint: "tiller-deploy.kube-system:44134",
		},
		{
			name:         "discovered pod is dialed by ip",
			givePods:     []*corev1.Pod{tillerPod},
			wantEndpoint: "10.0.0.7:44134",
			wantPod:      "kube-system/tiller-deploy-7d9c",
		},
		{
			name:     "no tiller pod",
			wantKind: taxonomy.KindPodNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			clientset := fake.NewSimpleClientset()
			for _, pod := range tt.givePods {
				_, err := clientset.CoreV1().Pods(pod.Namespace).Create(t.Context(), pod, metav1.CreateOptions{})
				require.NoError(t, err)
			}

			a := &App{
				logger: logger,
				cfg: &config.Config{
					TillerHost:          tt.giveHost,
					TillerPort:          44134,
					TillerNamespace:     "kube-system",
					TillerPodLabels:     "app=helm,name=tiller",
					PodDiscoveryTimeout: 50 * time.Millisecond,
					PodPollInterval:     10 * time.Millisecond,
				},
				kube: k8s.New(logger, clientset, metricsfake.NewSimpleClientset()),
			}

			endpoint, pod, err := a.resolveEndpoint(t.Context())
			if tt.wantKind != "" {
				require.True(t, taxonomy.IsKind(err, tt.wantKind))

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.wantEndpoint, endpoint)
			require.Equal(t, tt.wantPod, pod)
		})
	}
}

// recordingState records whether the session context was already cancelled
// when Shutdown ran. Methods Run does not reach are left to the nil embed.
type recordingState struct {
	appstater

	shutdownErr error

	mu             sync.Mutex
	shutdownCalls  int
	shutdownCtxErr error
}

func (s *recordingState) Quit() <-chan os.Signal { return nil }

func (s *recordingState) SetStarting(context.Context) error { return nil }

func (s *recordingState) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shutdownCalls++
	s.shutdownCtxErr = ctx.Err()

	return s.shutdownErr
}

func TestRun_FailedBringUpCancelsSessionBeforeShutdown(t *testing.T) {
	t.Parallel()

	logger := slog.Default()
	state := &recordingState{}

	a := &App{
		logger:   logger,
		appState: state,
		cfg: &config.Config{
			TillerPort:          44134,
			TillerNamespace:     "kube-system",
			TillerPodLabels:     "app=helm,name=tiller",
			PodDiscoveryTimeout: 50 * time.Millisecond,
			PodPollInterval:     10 * time.Millisecond,
		},
		kube: k8s.New(logger, fake.NewSimpleClientset(), metricsfake.NewSimpleClientset()),
	}

	err := a.Run(t.Context())
	require.True(t, taxonomy.IsKind(err, taxonomy.KindPodNotFound))

	state.mu.Lock()
	defer state.mu.Unlock()

	require.Equal(t, 1, state.shutdownCalls)
	require.ErrorIs(t, state.shutdownCtxErr, context.Canceled)
}

func TestApp_Abort(t *testing.T) {
	t.Parallel()

	errRefused := errors.New("state transition refused")
	errStuck := errors.New("release-auditor did not stop")

	tests := []struct {
		name            string
		giveShutdownErr error
		wantErrs        []error
	}{
		{
			name:     "cause returned after clean shutdown",
			wantErrs: []error{errRefused},
		},
		{
			name:            "shutdown failure joined to cause",
			giveShutdownErr: errStuck,
			wantErrs:        []error{errRefused, errStuck},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			state := &recordingState{shutdownErr: tt.giveShutdownErr}
			a := &App{logger: slog.Default(), appState: state}

			ctx, cancel := context.WithCancel(t.Context())
			defer cancel()

			err := a.abort(ctx, cancel, errRefused)
			for _, want := range tt.wantErrs {
				require.ErrorIs(t, err, want)
			}

			require.ErrorIs(t, ctx.Err(), context.Canceled)
			require.ErrorIs(t, state.shutdownCtxErr, context.Canceled)
			require.Equal(t, 1, state.shutdownCalls)
		})
	}
}
