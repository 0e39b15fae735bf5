package tiller

import (
	"log/slog"
	"time"
)

// Options tunes the policies of Service.
type Options struct {
	// ListRetryBudget is how many times a drifting listing restarts from page one.
	ListRetryBudget int
	// ListRetryDelay is the pause before each restart.
	ListRetryDelay time.Duration
	// ListPageSize is used when a caller passes a non-positive page size.
	ListPageSize int
}

// Service guards release actions, listings and auxiliary jobs. Every failure
// it returns is a *taxonomy.Error. It holds no per-call state and is safe for
// concurrent use when its ports are.
type Service struct {
	logger          *slog.Logger
	releases        ReleaseService
	jobs            JobRepository
	listRetryBudget int
	listRetryDelay  time.Duration
	listPageSize    int
}

// New creates a new Tiller service guard.
func New(
	logger *slog.Logger,
	releases ReleaseService,
	jobs JobRepository,
	opts Options,
) *Service {
	if opts.ListRetryBudget < 0 {
		opts.ListRetryBudget = 0
	}

	if opts.ListRetryDelay <= 0 {
		opts.ListRetryDelay = DefaultListRetryDelay
	}

	if opts.ListPageSize <= 0 {
		opts.ListPageSize = DefaultListPageSize
	}

	return &Service{
		logger:          logger,
		releases:        releases,
		jobs:            jobs,
		listRetryBudget: opts.ListRetryBudget,
		listRetryDelay:  opts.ListRetryDelay,
		listPageSize:    opts.ListPageSize,
	}
}
