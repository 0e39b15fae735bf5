package httpserver

import (
	"time"

	"github.com/skillcoder/tillerguard/internal/infra/appstate"
	"github.com/skillcoder/tillerguard/internal/infra/pinger"
	"github.com/skillcoder/tillerguard/internal/logic/auditor"
)

// appstater is an internal interface for application state management
type appstater interface {
	GetState() appstate.State
	IsHealthy() bool
	IsReady() bool
	GetUptime() time.Duration
	GetStartTime() time.Time
	GetSession() *appstate.Session
	GetAllStats() map[string]*pinger.Statistics
}

// snapshotter exposes the outcome of the last release audit.
type snapshotter interface {
	Snapshot() *auditor.Snapshot
}
