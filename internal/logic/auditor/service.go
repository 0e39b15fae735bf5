package auditor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/skillcoder/tillerguard/internal/infra/metrics"
	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

// Service periodically lists every release and publishes the result.
type Service struct {
	logger     *slog.Logger
	lister     ReleaseLister
	pods       tiller.PodRepository
	usage      PodUsageRepository
	cron       scheduler
	opts       Options
	period     time.Duration
	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool

	mu          sync.RWMutex
	last        *Snapshot
	lastSuccess time.Time
}

// New creates an auditor. The schedule is validated up front.
func New(
	logger *slog.Logger,
	lister ReleaseLister,
	pods tiller.PodRepository,
	usage PodUsageRepository,
	cron scheduler,
	opts Options,
) (*Service, error) {
	period, err := cron.Period(opts.Schedule, opts.TZ, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchedule, err)
	}

	return &Service{
		logger: logger,
		lister: lister,
		pods:   pods,
		usage:  usage,
		cron:   cron,
		opts:   opts,
		period: period,
		ready:  make(chan struct{}),
		doneCh: make(chan struct{}),
	}, nil
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "auditor is shutting down, skipping start")

		return nil
	}

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the component
func (s *Service) Name() string {
	return "release-auditor"
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Ping fails when no audit succeeded within two schedule periods or the
// last run ended with a fatal error.
func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
	default:
		return ErrNotReady
	}

	s.mu.RLock()
	last, lastSuccess := s.last, s.lastSuccess
	s.mu.RUnlock()

	if last != nil && last.Failed() && last.Fatal {
		return fmt.Errorf("%w: %s", ErrAuditFatal, last.Error)
	}

	if lastSuccess.IsZero() {
		return ErrNoAudit
	}

	age := time.Since(lastSuccess)
	if age > 2*s.period {
		return fmt.Errorf("%w: %s", ErrAuditStale, age.Round(time.Second).String())
	}

	return nil
}

// PingerCritical keeps a stale audit from failing liveness; it only gates readiness.
func (s *Service) PingerCritical() bool {
	return false
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "auditor is already shutting down, skipping shutdown")

		return nil
	}

	s.logger.InfoContext(ctx, "shutting down auditor")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before audit loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "audit loop exited")
	}

	return nil
}

// Snapshot returns the last audit outcome, or nil before the first run.
func (s *Service) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}

// AuditCommand runs one audit and stores its snapshot.
func (s *Service) AuditCommand(ctx context.Context) *Snapshot {
	snapshot := &Snapshot{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
	}

	logger := s.logger.With("component", "Auditor.AuditCommand", "runId", snapshot.RunID)

	releases, err := s.lister.ListAllWithRetry(ctx, s.opts.PageSize)

	snapshot.CompletedAt = time.Now()

	if err != nil {
		snapshot.Error = err.Error()
		snapshot.Fatal = taxonomy.IsFatal(err)

		if kind, ok := taxonomy.KindOf(err); ok {
			snapshot.ErrorKind = kind.String()
		}

		logger.ErrorContext(ctx, "release audit failed", "reason", err)
	} else {
		snapshot.Releases = releases
		snapshot.ByStatus = countByStatus(releases)

		metrics.SetReleasesByStatus(statusGauges(snapshot.ByStatus))
		metrics.RecordAuditSuccess(snapshot.CompletedAt)

		logger.InfoContext(ctx, "release audit completed",
			"releases", len(releases),
			"duration", snapshot.CompletedAt.Sub(snapshot.StartedAt).String(),
		)
	}

	s.store(snapshot)
	s.sampleTillerMemory(ctx, logger)

	return snapshot
}

func (s *Service) store(snapshot *Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = snapshot
	if !snapshot.Failed() {
		s.lastSuccess = snapshot.CompletedAt
	}
}

func statusGauges(byStatus map[tiller.StatusCode]int) map[string]int {
	out := make(map[string]int, len(byStatus))
	for code, n := range byStatus {
		out[string(code)] = n
	}

	return out
}

func (s *Service) sampleTillerMemory(ctx context.Context, logger *slog.Logger) {
	if s.pods == nil || s.usage == nil {
		return
	}

	pods, err := s.pods.ListPodsQuery(ctx, s.opts.TillerNamespace, s.opts.TillerPodLabels)
	if err != nil {
		logger.WarnContext(ctx, "list tiller pods for memory sample failed", "reason", err)

		return
	}

	for i := range pods {
		if !pods[i].Running() {
			continue
		}

		bytes, err := s.usage.GetPodMemoryQuery(ctx, pods[i].Namespace, pods[i].Name)
		if err != nil {
			var nf notFound

			var tmr tooManyRequests

			switch {
			case errors.As(err, &nf):
				logger.DebugContext(ctx, "tiller pod metrics not found, skipping", "pod", pods[i].Name)
			case errors.As(err, &tmr):
				logger.DebugContext(ctx, "tiller pod metrics throttled, skipping", "pod", pods[i].Name)
			default:
				logger.WarnContext(ctx, "get tiller pod memory failed", "pod", pods[i].Name, "reason", err)
			}

			continue
		}

		metrics.SetTillerPodMemory(pods[i].Namespace, pods[i].Name, bytes)
		logger.DebugContext(ctx, "tiller pod memory", "pod", pods[i].Name, "bytes", bytes)
	}
}

// RunCommand audits immediately, then at every schedule occurrence until ctx ends.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("component", "Auditor.RunCommand")

	close(s.ready)

	for {
		s.AuditCommand(ctx)

		now := time.Now()

		next, err := s.cron.NextAfter(s.opts.Schedule, s.opts.TZ, now)
		if err != nil {
			logger.ErrorContext(ctx, "compute next audit failed, falling back to period", "reason", err)

			next = now.Add(s.period)
		}

		logger.DebugContext(ctx, "next audit scheduled", "at", next)

		timer := time.NewTimer(next.Sub(now))

		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating audit loop")

			return
		}
	}
}
