package app

import (
	"context"
	"os"
	"time"

	"github.com/skillcoder/tillerguard/internal/infra/appstate"
	"github.com/skillcoder/tillerguard/internal/infra/pinger"
	"github.com/skillcoder/tillerguard/internal/infra/shutdown"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(pinger pinger.Pinger) error
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	StartPinger(ctx context.Context) (<-chan struct{}, error)
	SetSession(ctx context.Context, session appstate.Session)
	GetSession() *appstate.Session
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	Shutdown(ctx context.Context) error

	// read side served by the http server
	GetState() appstate.State
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetAllStats() map[string]*pinger.Statistics
	IsHealthy() bool
	IsReady() bool
}

// sessionComponent is anything bound to the session lifecycle: probed by
// the pinger and stopped on shutdown.
type sessionComponent interface {
	pinger.Pinger
	shutdown.Shutdowner
}

type appServer interface {
	sessionComponent
	Start(ctx context.Context) error
	Ready() <-chan struct{}
}
