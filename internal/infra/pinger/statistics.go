package pinger

import (
	"sync"
	"time"

	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

// historySize bounds the per-component probe window used for latency averages.
const historySize = 64

type probe struct {
	at      time.Time
	latency time.Duration
	err     error
}

// history keeps the recent probes of one component plus lifetime counters.
type history struct {
	mu          sync.RWMutex
	window      []probe
	next        int
	successes   int
	failures    int
	consecutive int
	lastFailure *probe
}

func newHistory() *history {
	return &history{window: make([]probe, 0, historySize)}
}

func (h *history) record(p probe) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.window) < historySize {
		h.window = append(h.window, p)
	} else {
		h.window[h.next] = p
		h.next = (h.next + 1) % historySize
	}

	if p.err == nil {
		h.successes++
		h.consecutive = 0

		return
	}

	h.failures++
	h.consecutive++

	failed := p
	h.lastFailure = &failed
}

// latest returns the most recent probe; the caller holds h.mu.
func (h *history) latest() (probe, bool) {
	switch {
	case len(h.window) == 0:
		return probe{}, false
	case len(h.window) < historySize:
		return h.window[len(h.window)-1], true
	default:
		return h.window[(h.next+historySize-1)%historySize], true
	}
}

// avgSuccessLatency averages successful probes in the window; the caller holds h.mu.
func (h *history) avgSuccessLatency() time.Duration {
	var (
		sum time.Duration
		n   int
	)

	for _, p := range h.window {
		if p.err != nil {
			continue
		}

		sum += p.latency
		n++
	}

	if n == 0 {
		return 0
	}

	return sum / time.Duration(n)
}

// Statistics is a point-in-time view of one component's probes.
type Statistics struct {
	IsReady             bool
	IsHealthy           bool
	LastRun             time.Time
	LastLatency         time.Duration
	AvgLatency          time.Duration
	LastError           error
	LastErrorKind       string
	LastErrorAt         time.Time
	ConsecutiveFailures int
	SuccessCount        int
	ErrorCount          int
}

// snapshot computes Statistics. A ready-critical component turns unready on
// its first failed probe; a health-critical one turns unhealthy only after
// failureThreshold consecutive failures.
func (h *history) snapshot(info *pingerInfo, failureThreshold int) *Statistics {
	h.mu.RLock()
	defer h.mu.RUnlock()

	stats := &Statistics{
		ConsecutiveFailures: h.consecutive,
		SuccessCount:        h.successes,
		ErrorCount:          h.failures,
		AvgLatency:          h.avgSuccessLatency(),
		IsReady:             !info.readyCritical || h.consecutive == 0,
		IsHealthy:           !info.healthCritical || h.consecutive < failureThreshold,
	}

	if last, ok := h.latest(); ok {
		stats.LastRun = last.at
		stats.LastLatency = last.latency
		stats.LastError = last.err
	}

	if h.lastFailure != nil {
		stats.LastErrorAt = h.lastFailure.at

		if kind, ok := taxonomy.KindOf(h.lastFailure.err); ok {
			stats.LastErrorKind = kind.String()
		}
	}

	return stats
}
