package tiller

import (
	"context"
	"errors"
	"log/slog"

	"github.com/skillcoder/tillerguard/internal/infra/metrics"
	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

var (
	ErrUnknownAction   = errors.New("unknown release action")
	ErrUnknownJobOp    = errors.New("unknown job operation")
	ErrEmptyResponse   = errors.New("empty response from release service")
	ErrReleaseFailed   = errors.New("release reported failed status")
	ErrTestsNotPassed  = errors.New("release tests did not pass")
	ErrTotalChanged    = errors.New("release total changed between pages")
	ErrShortListing    = errors.New("listing ended before expected total")
	ErrListingOverflow = errors.New("listing returned more releases than expected total")
	ErrDuplicate       = errors.New("release listed twice")
	ErrCursorLost      = errors.New("listing resume point no longer exists")

	ErrIncompatibleVersion = errors.New("incompatible release service version")
)

// raise records and logs a taxonomy error before it is returned to the caller.
func raise(ctx context.Context, logger *slog.Logger, e *taxonomy.Error) error {
	metrics.RecordFault(e.Kind().String(), e.Fatal())

	if e.Fatal() {
		logger.ErrorContext(ctx, "tiller operation failed", "reason", e)
	} else {
		logger.WarnContext(ctx, "tiller operation failed", "reason", e)
	}

	return e
}

func isNotFound(err error) bool {
	var target notFound

	return errors.As(err, &target)
}

func remoteDescription(err error) string {
	var target remoteDescriber
	if errors.As(err, &target) {
		return target.RemoteDescription()
	}

	return ""
}
