package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/tillerguard/internal/infra/metrics"
	"github.com/skillcoder/tillerguard/internal/infra/shutdown"
)

const (
	defaultPingTimeout      = 1 * time.Second
	defaultFailureThreshold = 3
)

type readyCriticalPinger interface {
	PingerReadyCritical() bool
}

type healthCriticalPinger interface {
	PingerCritical() bool
}

type timeoutPinger interface {
	PingerTimeout() time.Duration
}

type pingerInfo struct {
	name           string
	ping           func(ctx context.Context) error
	readyCritical  bool
	healthCritical bool
	timeout        time.Duration
}

// Option tunes a Service.
type Option func(*Service)

// WithFailureThreshold sets how many consecutive failed probes turn a
// health-critical component unhealthy. Values below one are ignored.
func WithFailureThreshold(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.failureThreshold = n
		}
	}
}

// Service probes the session components (tiller channel, auditor, servers)
// on a fixed interval. Components opt out of readiness or liveness gating
// through PingerReadyCritical and PingerCritical.
type Service struct {
	logger           *slog.Logger
	interval         time.Duration
	failureThreshold int

	mu        sync.RWMutex
	pingers   map[string]*pingerInfo
	histories map[string]*history

	ready      chan struct{}
	stop       chan struct{}
	doneCh     chan struct{}
	started    atomic.Bool
	inShutdown atomic.Bool
	inflight   sync.WaitGroup
}

func New(logger *slog.Logger, interval time.Duration, opts ...Option) *Service {
	s := &Service{
		logger:           logger.With("component", "pinger"),
		interval:         interval,
		failureThreshold: defaultFailureThreshold,
		pingers:          make(map[string]*pingerInfo),
		histories:        make(map[string]*history),
		ready:            make(chan struct{}),
		stop:             make(chan struct{}),
		doneCh:           make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

var _ shutdown.Shutdowner = (*Service)(nil)

func (s *Service) Name() string {
	return "pinger-service"
}

// Register adds a component to the probe set. Names must be unique.
func (s *Service) Register(pinger Pinger) error {
	if pinger == nil {
		return fmt.Errorf("register pinger: %w", ErrNilPinger)
	}

	info := &pingerInfo{
		name:           pinger.Name(),
		ping:           pinger.Ping,
		readyCritical:  true,
		healthCritical: true,
		timeout:        defaultPingTimeout,
	}

	if rc, ok := pinger.(readyCriticalPinger); ok {
		info.readyCritical = rc.PingerReadyCritical()
	}

	if hc, ok := pinger.(healthCriticalPinger); ok {
		info.healthCritical = hc.PingerCritical()
	}

	if tp, ok := pinger.(timeoutPinger); ok && tp.PingerTimeout() > 0 {
		info.timeout = tp.PingerTimeout()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.pingers[info.name]; exists {
		return fmt.Errorf("register pinger %s: %w", info.name, ErrPingerAlreadyRegistered)
	}

	s.pingers[info.name] = info
	s.histories[info.name] = newHistory()

	s.logger.Info("pinger registered",
		"name", info.name,
		"readyCritical", info.readyCritical,
		"healthCritical", info.healthCritical,
		"timeout", info.timeout,
	)

	return nil
}

// Start launches the probe loop. Ready closes after the first round.
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	if !s.started.CompareAndSwap(false, true) {
		return nil
	}

	go s.run(ctx)

	return nil
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown stops the loop and waits for in-flight probes.
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		return nil
	}

	s.logger.InfoContext(ctx, "shutting down pinger service")

	close(s.stop)

	if !s.started.Load() {
		return nil
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("wait for pinger loop: %w", ctx.Err())
	case <-s.doneCh:
	}

	s.inflight.Wait()

	s.logger.InfoContext(ctx, "pinger service stopped")

	return nil
}

// GetStats returns the statistics of one registered component.
func (s *Service) GetStats(name string) (*Statistics, error) {
	s.mu.RLock()
	info, ok := s.pingers[name]
	h := s.histories[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("get stats %s: %w", name, ErrPingerNotFound)
	}

	return h.snapshot(info, s.failureThreshold), nil
}

// GetAllStats returns statistics for every registered component.
func (s *Service) GetAllStats() map[string]*Statistics {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make(map[string]*Statistics, len(s.pingers))
	for name, info := range s.pingers {
		result[name] = s.histories[name].snapshot(info, s.failureThreshold)
	}

	return result
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.probeAll(ctx)
	close(s.ready)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-ticker.C:
			s.probeAll(ctx)
		}
	}
}

// probeAll runs one round, each component in its own goroutine, and returns
// when the round completes or ctx ends.
func (s *Service) probeAll(ctx context.Context) {
	s.mu.RLock()
	pingers := maps.Clone(s.pingers)
	s.mu.RUnlock()

	var round sync.WaitGroup

	for _, info := range pingers {
		if ctx.Err() != nil {
			break
		}

		round.Add(1)
		s.inflight.Add(1)

		go func() {
			defer round.Done()
			defer s.inflight.Done()

			s.probe(ctx, info)
		}()
	}

	done := make(chan struct{})

	go func() {
		round.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
	case <-done:
	}
}

func (s *Service) probe(ctx context.Context, info *pingerInfo) {
	pingCtx, cancel := context.WithTimeout(ctx, info.timeout)
	defer cancel()

	start := time.Now()
	err := info.ping(pingCtx)
	latency := time.Since(start)

	s.mu.RLock()
	h := s.histories[info.name]
	s.mu.RUnlock()

	h.record(probe{at: start, latency: latency, err: err})
	metrics.ObservePing(info.name, latency, err == nil)

	if err != nil {
		s.logger.DebugContext(ctx, "probe failed",
			"name", info.name,
			"latency", latency,
			"reason", err,
		)
	}
}
