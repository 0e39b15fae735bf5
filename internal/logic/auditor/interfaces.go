package auditor

import (
	"context"
	"time"

	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

// ReleaseLister produces a consistent release listing.
type ReleaseLister interface {
	ListAllWithRetry(ctx context.Context, pageSize int) ([]tiller.ReleaseSummary, error)
}

// PodUsageRepository is the port for pod resource usage queries.
type PodUsageRepository interface {
	GetPodMemoryQuery(
		ctx context.Context,
		namespace,
		name string,
	) (int64, error)
}

type scheduler interface {
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
	Period(spec, tz string, after time.Time) (time.Duration, error)
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// tooManyRequests is a private interface for checking "too many requests" errors
// without importing the adapter package.
type tooManyRequests interface {
	IsTooManyRequests()
}
