package tiller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/skillcoder/tillerguard/internal/infra/metrics"
	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

// Discovery locates the pod hosting the release service.
type Discovery struct {
	logger    *slog.Logger
	pods      PodRepository
	namespace string
}

// NewDiscovery creates a pod discovery bound to one namespace.
func NewDiscovery(
	logger *slog.Logger,
	pods PodRepository,
	namespace string,
) *Discovery {
	return &Discovery{
		logger:    logger,
		pods:      pods,
		namespace: namespace,
	}
}

// discoveryState lives for a single Find call.
type discoveryState struct {
	labelSelector string
	candidates    []PodIdentifier
	order         map[string]int
	attempts      int
	deadline      time.Time
}

func newDiscoveryState(labelSelector string, deadline time.Time) *discoveryState {
	return &discoveryState{
		labelSelector: labelSelector,
		order:         make(map[string]int),
		deadline:      deadline,
	}
}

// observe appends pods not seen before, preserving first-discovery order.
func (s *discoveryState) observe(pods []Pod) {
	for i := range pods {
		key := pods[i].key()
		if _, ok := s.order[key]; ok {
			continue
		}

		s.order[key] = len(s.candidates)
		s.candidates = append(s.candidates, pods[i].identifier())
	}
}

// firstRunning picks the running pod discovered earliest.
func (s *discoveryState) firstRunning(pods []Pod) (PodIdentifier, bool) {
	best := -1

	var found PodIdentifier

	for i := range pods {
		if !pods[i].Running() {
			continue
		}

		idx := s.order[pods[i].key()]
		if best < 0 || idx < best {
			best = idx
			found = pods[i].identifier()
		}
	}

	return found, best >= 0
}

// Find polls for a running pod matching labelSelector until timeout.
// It returns PodNotFound when no pod ever matched and PodNotRunning when
// pods matched but none reached the running phase in time.
func (d *Discovery) Find(
	ctx context.Context,
	labelSelector string,
	timeout,
	pollInterval time.Duration,
) (PodIdentifier, error) {
	logger := d.logger.With(
		"component", "Discovery.Find",
		"namespace", d.namespace,
		"labelSelector", labelSelector,
	)

	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	start := time.Now()
	state := newDiscoveryState(labelSelector, start.Add(timeout))

	var (
		found   PodIdentifier
		listErr error
	)

	err := wait.PollUntilContextTimeout(ctx, pollInterval, timeout, true, func(ctx context.Context) (bool, error) {
		state.attempts++

		pods, err := d.pods.ListPodsQuery(ctx, d.namespace, labelSelector)
		if err != nil {
			listErr = err

			logger.WarnContext(ctx, "list tiller pods failed, will poll again",
				"attempt", state.attempts,
				"reason", err,
			)

			return false, nil
		}

		state.observe(pods)

		pod, ok := state.firstRunning(pods)
		if !ok {
			logger.DebugContext(ctx, "no running tiller pod yet",
				"attempt", state.attempts,
				"candidates", len(state.candidates),
			)

			return false, nil
		}

		found = pod

		return true, nil
	})
	if err == nil {
		metrics.ObservePodDiscovery(time.Since(start), "running")
		logger.InfoContext(ctx, "tiller pod found", "pod", found.String(), "attempts", state.attempts)

		return found, nil
	}

	cause := errors.Join(err, listErr)
	fields := taxonomy.Context{taxonomy.FieldLabelSelector: labelSelector}

	if len(state.candidates) == 0 {
		metrics.ObservePodDiscovery(time.Since(start), "not_found")

		return PodIdentifier{}, raise(ctx, logger, taxonomy.New(taxonomy.KindPodNotFound, fields).WithCause(cause))
	}

	metrics.ObservePodDiscovery(time.Since(start), "not_running")

	return PodIdentifier{}, raise(ctx, logger, taxonomy.New(taxonomy.KindPodNotRunning, fields).WithCause(cause))
}
