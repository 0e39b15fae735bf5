package appstate

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/skillcoder/tillerguard/internal/infra/pinger"
	"github.com/skillcoder/tillerguard/internal/infra/shutdown"
)

// State represents the application state
type State string

const (
	// StateInit is the initial state when the application is created
	StateInit State = "init"

	// StateStarting is the state while the Tiller session is being brought up
	StateStarting State = "starting"

	// StateRunning is the state when the session is established
	StateRunning State = "running"

	// StateTerminating is the state when the application is shutting down
	StateTerminating State = "terminating"

	// StateTerminated is the final state when the application has terminated
	StateTerminated State = "terminated"
)

const defaultShutdownersCount = 10

// Session describes the Tiller endpoint the application is bound to.
type Session struct {
	Endpoint      string    `json:"endpoint"`
	Pod           string    `json:"pod,omitempty"`
	ServerVersion string    `json:"serverVersion,omitempty"`
	EstablishedAt time.Time `json:"establishedAt"`
}

// AppState manages the application state with thread-safe operations
type AppState struct {
	mu                  sync.RWMutex
	logger              *slog.Logger
	startedAt           time.Time
	readyAt             *time.Time
	terminatingAt       *time.Time
	state               State
	session             *Session
	quit                <-chan os.Signal
	terminationFilePath string
	pinger              pingerServer
	shutdowners         []shutdown.Shutdowner
}

// New creates a new AppState with the given start time
func New(
	logger *slog.Logger,
	appStart time.Time,
	terminationFilePath string,
	quit <-chan os.Signal,
	pinger pingerServer,
) *AppState {
	return &AppState{
		logger:              logger.With("component", "appstate"),
		startedAt:           appStart,
		state:               StateInit,
		quit:                quit,
		terminationFilePath: terminationFilePath,
		pinger:              pinger,
		shutdowners:         make([]shutdown.Shutdowner, 0, defaultShutdownersCount),
	}
}

func (s *AppState) RegisterPinger(pinger pinger.Pinger) error {
	return s.pinger.Register(pinger)
}

// RegisterShutdowner appends a component to the teardown list.
// Components are shut down in reverse registration order.
func (s *AppState) RegisterShutdowner(shutdowner shutdown.Shutdowner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminating || s.state == StateTerminated {
		return fmt.Errorf("register shutdowner %s: %w", shutdowner.Name(), ErrAlreadyTerminated)
	}

	s.shutdowners = append(s.shutdowners, shutdowner)

	return nil
}

// StartPinger starts probing the registered components and schedules the
// pinger for shutdown. The returned channel closes after the first round.
func (s *AppState) StartPinger(ctx context.Context) (<-chan struct{}, error) {
	if err := s.pinger.Start(ctx); err != nil {
		return nil, fmt.Errorf("start pinger: %w", err)
	}

	if err := s.RegisterShutdowner(s.pinger); err != nil {
		return nil, err
	}

	return s.pinger.Ready(), nil
}

func (s *AppState) GetAllStats() map[string]*pinger.Statistics {
	return s.pinger.GetAllStats()
}

// SetSession records the Tiller endpoint the session is bound to.
func (s *AppState) SetSession(ctx context.Context, session Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &session

	s.logger.InfoContext(ctx, "tiller session established",
		"endpoint", session.Endpoint,
		"pod", session.Pod,
		"serverVersion", session.ServerVersion,
	)
}

// GetSession returns a copy of the current session, or nil before bring-up.
func (s *AppState) GetSession() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil
	}

	session := *s.session

	return &session
}

// SetStarting transitions the state from Init to Starting
func (s *AppState) SetStarting(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateInit {
		return fmt.Errorf("set starting from %s: %w", s.state, ErrInvalidStateTransition)
	}

	return s.setState(StateStarting)
}

// SetRunning transitions the state from Starting to Running
func (s *AppState) SetRunning(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateStarting {
		return fmt.Errorf("set running from %s: %w", s.state, ErrInvalidStateTransition)
	}

	now := time.Now()
	s.readyAt = &now

	if err := s.setState(StateRunning); err != nil {
		return err
	}

	// the pod may have been marked for termination during bring-up
	if shutdown.CheckTerminationFile(ctx, s.logger, s.terminationFilePath) {
		pid := os.Getpid()
		s.logger.InfoContext(ctx, "termination file found after initialization, sending SIGTERM",
			"pid", pid,
		)

		if err := syscall.Kill(pid, syscall.SIGTERM); err != nil {
			s.logger.ErrorContext(ctx, "failed to send SIGTERM",
				"reason", err,
				"pid", pid,
			)
		}
	}

	return nil
}

// SetTerminating transitions the state to Terminating
func (s *AppState) SetTerminating(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateTerminated {
		return fmt.Errorf("set terminating: %w", ErrAlreadyTerminated)
	}

	if s.terminatingAt == nil {
		now := time.Now()
		s.terminatingAt = &now
	}

	return s.setState(StateTerminating)
}

// setState is an internal method to set the state
func (s *AppState) setState(newState State) error {
	if s.state == StateTerminated {
		return fmt.Errorf("set state %s: %w", newState, ErrAlreadyTerminated)
	}

	s.state = newState

	return nil
}

// GetState returns the current application state
func (s *AppState) GetState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

// GetStartTime returns the time when the application started
func (s *AppState) GetStartTime() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.startedAt
}

// GetUptime returns the duration since the application started
func (s *AppState) GetUptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return time.Since(s.startedAt)
}

// IsHealthy reports whether the application is running and no
// health-critical component is failing its probe.
func (s *AppState) IsHealthy() bool {
	if s.GetState() != StateRunning {
		return false
	}

	for _, stats := range s.pinger.GetAllStats() {
		if !stats.IsHealthy {
			return false
		}
	}

	return true
}

// IsReady reports whether the session is established and no
// ready-critical component is failing its probe.
func (s *AppState) IsReady() bool {
	s.mu.RLock()
	ready := s.state == StateRunning && s.readyAt != nil
	s.mu.RUnlock()

	if !ready {
		return false
	}

	for _, stats := range s.pinger.GetAllStats() {
		if !stats.IsReady {
			return false
		}
	}

	return true
}

// Quit returns the channel that will receive the signal when shutdown is requested
func (s *AppState) Quit() <-chan os.Signal {
	return s.quit
}

// Shutdown tears down the registered components and marks the application terminated.
// Calling it again after termination is a no-op.
func (s *AppState) Shutdown(ctx context.Context) error {
	if s.GetState() == StateTerminated {
		return nil
	}

	if err := s.SetTerminating(ctx); err != nil {
		return fmt.Errorf("set terminating application state: %w", err)
	}

	s.mu.RLock()
	shutdowners := make([]shutdown.Shutdowner, len(s.shutdowners))
	copy(shutdowners, s.shutdowners)
	s.mu.RUnlock()

	shutdownErr := shutdown.GracefulShutdown(ctx, s.logger, shutdowners)

	s.mu.Lock()
	s.state = StateTerminated
	s.mu.Unlock()

	if shutdownErr != nil {
		return fmt.Errorf("shutdown: %w", shutdownErr)
	}

	return nil
}
