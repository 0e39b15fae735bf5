package auditor

import (
	"time"

	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

// Options configures the audit loop.
type Options struct {
	Schedule        string
	TZ              string
	PageSize        int
	TillerNamespace string
	TillerPodLabels string
}

// Snapshot is the immutable outcome of one audit run.
type Snapshot struct {
	RunID       string                    `json:"runId"`
	StartedAt   time.Time                 `json:"startedAt"`
	CompletedAt time.Time                 `json:"completedAt"`
	Releases    []tiller.ReleaseSummary   `json:"releases"`
	ByStatus    map[tiller.StatusCode]int `json:"byStatus"`
	Error       string                    `json:"error,omitempty"`
	ErrorKind   string                    `json:"errorKind,omitempty"`
	Fatal       bool                      `json:"fatal,omitempty"`
}

// Failed reports whether the run ended without a listing.
func (s *Snapshot) Failed() bool {
	return s.Error != ""
}

func countByStatus(releases []tiller.ReleaseSummary) map[tiller.StatusCode]int {
	out := make(map[tiller.StatusCode]int)
	for i := range releases {
		out[releases[i].Status]++
	}

	return out
}
