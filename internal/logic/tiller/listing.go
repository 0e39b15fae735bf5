package tiller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sethvargo/go-retry"

	"github.com/skillcoder/tillerguard/internal/infra/metrics"
	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

// ListAll pages through every release as one snapshot attempt.
//
// The release service has no snapshot isolation and its resume token is just
// the name of the next release, so the total it reports on the first page is
// the only reference point. Any later page reporting another total, a resume
// point that vanished, or any page shape that cannot add up to that total
// raises ListingDriftDetected and no partial result.
func (s *Service) ListAll(ctx context.Context, pageSize int) ([]ReleaseSummary, error) {
	logger := s.logger.With("component", "Service.ListAll")

	return s.listSnapshot(ctx, logger, s.pageSize(pageSize))
}

// ListAllWithRetry restarts a drifting listing from page one, at most
// ListRetryBudget times. Exhausting the budget raises ListingFailed with
// the last drift as cause.
func (s *Service) ListAllWithRetry(ctx context.Context, pageSize int) ([]ReleaseSummary, error) {
	logger := s.logger.With("component", "Service.ListAllWithRetry")
	pageSize = s.pageSize(pageSize)

	backoff := retry.WithMaxRetries(uint64(s.listRetryBudget), retry.NewConstant(s.listRetryDelay))

	var (
		items   []ReleaseSummary
		attempt int
	)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++

		got, err := s.listSnapshot(ctx, logger, pageSize)
		if err != nil {
			if taxonomy.IsKind(err, taxonomy.KindListingDriftDetected) {
				if attempt <= s.listRetryBudget {
					metrics.RecordListingRestart()
					logger.InfoContext(ctx, "restarting release listing from first page",
						"attempt", attempt,
						"budget", s.listRetryBudget,
					)
				}

				return retry.RetryableError(err)
			}

			return err
		}

		items = got

		return nil
	})
	if err == nil {
		return items, nil
	}

	if taxonomy.IsKind(err, taxonomy.KindListingDriftDetected) {
		return nil, raise(ctx, logger, taxonomy.New(taxonomy.KindListingFailed, nil).
			WithCause(fmt.Errorf("drift persisted after %d attempts: %w", attempt, err)))
	}

	if _, ok := taxonomy.As(err); ok {
		return nil, err
	}

	return nil, raise(ctx, logger, taxonomy.New(taxonomy.KindListingFailed, nil).WithCause(err))
}

func (s *Service) pageSize(pageSize int) int {
	if pageSize <= 0 {
		return s.listPageSize
	}

	return pageSize
}

func (s *Service) listSnapshot(
	ctx context.Context,
	logger *slog.Logger,
	pageSize int,
) ([]ReleaseSummary, error) {
	var cursor ListingCursor

	seen := make(map[string]struct{})

	var items []ReleaseSummary

	for first := true; ; first = false {
		page, err := s.releases.ListReleases(ctx, cursor.Next, pageSize)
		if err == nil && page == nil {
			err = ErrEmptyResponse
		}

		if errors.Is(err, ErrCursorLost) {
			return nil, s.drift(ctx, logger, cursor, err)
		}

		if err != nil {
			return nil, raise(ctx, logger, taxonomy.New(taxonomy.KindListingFailed, nil).
				WithCause(fmt.Errorf("list releases at offset %d: %w", cursor.PageOffset, err)))
		}

		if first {
			cursor.ExpectedTotalAtStart = page.Total
			items = make([]ReleaseSummary, 0, max(page.Total, 0))
		} else if page.Total != cursor.ExpectedTotalAtStart {
			return nil, s.drift(ctx, logger, cursor, fmt.Errorf("%w: %d -> %d",
				ErrTotalChanged, cursor.ExpectedTotalAtStart, page.Total))
		}

		if len(page.Items) == 0 {
			if cursor.AccumulatedCount < cursor.ExpectedTotalAtStart {
				return nil, s.drift(ctx, logger, cursor, fmt.Errorf("%w: got %d of %d",
					ErrShortListing, cursor.AccumulatedCount, cursor.ExpectedTotalAtStart))
			}

			break
		}

		for i := range page.Items {
			key := page.Items[i].Key()
			if _, dup := seen[key]; dup {
				return nil, s.drift(ctx, logger, cursor, fmt.Errorf("%w: %s", ErrDuplicate, key))
			}

			seen[key] = struct{}{}
			items = append(items, page.Items[i])
		}

		cursor.AccumulatedCount += len(page.Items)
		cursor.PageOffset += len(page.Items)
		cursor.Next = page.Next

		if cursor.AccumulatedCount > cursor.ExpectedTotalAtStart {
			return nil, s.drift(ctx, logger, cursor, fmt.Errorf("%w: got %d of %d",
				ErrListingOverflow, cursor.AccumulatedCount, cursor.ExpectedTotalAtStart))
		}

		if cursor.AccumulatedCount == cursor.ExpectedTotalAtStart {
			break
		}

		if cursor.Next == "" {
			return nil, s.drift(ctx, logger, cursor, fmt.Errorf("%w: no next page after %d of %d",
				ErrShortListing, cursor.AccumulatedCount, cursor.ExpectedTotalAtStart))
		}
	}

	logger.DebugContext(ctx, "releases listed", "count", len(items))

	return items, nil
}

func (s *Service) drift(
	ctx context.Context,
	logger *slog.Logger,
	cursor ListingCursor,
	cause error,
) error {
	logger = logger.With(
		"pageOffset", cursor.PageOffset,
		"next", cursor.Next,
		"accumulated", cursor.AccumulatedCount,
		"expectedTotal", cursor.ExpectedTotalAtStart,
	)

	return raise(ctx, logger, taxonomy.New(taxonomy.KindListingDriftDetected, nil).WithCause(cause))
}
