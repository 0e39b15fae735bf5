package tiller

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

// Perform runs one release action exactly once. Release actions are never
// retried here: a failed attempt may have been partially applied remotely.
func (s *Service) Perform(ctx context.Context, req ActionRequest) (*ActionResult, error) {
	logger := s.logger.With(
		"component", "Service.Perform",
		"action", string(req.Action),
		"release", req.ReleaseName,
	)

	switch req.Action {
	case ActionInstall:
		status, err := s.releases.InstallRelease(ctx, req.chartRequest())

		return s.actionResult(ctx, logger, req, status, err)
	case ActionUpgrade:
		status, err := s.releases.UpdateRelease(ctx, req.chartRequest())

		return s.actionResult(ctx, logger, req, status, err)
	case ActionDelete:
		status, err := s.releases.UninstallRelease(ctx, UninstallRequest{
			ReleaseName: req.ReleaseName,
			Purge:       req.Purge,
			Timeout:     req.Timeout,
		})

		return s.actionResult(ctx, logger, req, status, err)
	case ActionRollback:
		status, err := s.Rollback(ctx, RollbackRequest{
			ReleaseName: req.ReleaseName,
			Version:     req.Version,
			Timeout:     req.Timeout,
			Wait:        req.Wait,
		})
		if err != nil {
			return nil, err
		}

		return &ActionResult{Status: status}, nil
	case ActionTest:
		result, err := s.Test(ctx, TestRequest{
			ReleaseName: req.ReleaseName,
			Timeout:     req.Timeout,
			Cleanup:     req.Cleanup,
		})
		if err != nil {
			return nil, err
		}

		return &ActionResult{Test: result}, nil
	default:
		return nil, fmt.Errorf("perform %q: %w", req.Action, ErrUnknownAction)
	}
}

func (r ActionRequest) chartRequest() ChartRequest {
	return ChartRequest{
		ReleaseName: r.ReleaseName,
		Namespace:   r.Namespace,
		Chart:       r.Chart,
		Values:      r.Values,
		Timeout:     r.Timeout,
		Wait:        r.Wait,
	}
}

func (s *Service) actionResult(
	ctx context.Context,
	logger *slog.Logger,
	req ActionRequest,
	status *ReleaseStatus,
	err error,
) (*ActionResult, error) {
	if err == nil && status != nil && status.Code == StatusFailed {
		err = ErrReleaseFailed
	}

	if err != nil {
		description := s.describeFailure(ctx, logger, req.ReleaseName, status, err)

		return nil, raise(ctx, logger, taxonomy.New(taxonomy.KindReleaseActionFailed, taxonomy.Context{
			taxonomy.FieldAction:      string(req.Action),
			taxonomy.FieldReleaseName: req.ReleaseName,
			taxonomy.FieldDescription: description,
		}).WithCause(err))
	}

	logger.InfoContext(ctx, "release action succeeded")

	return &ActionResult{Status: status}, nil
}

// describeFailure never fails: a missing or malformed remote status falls
// back to a fixed placeholder.
func (s *Service) describeFailure(
	ctx context.Context,
	logger *slog.Logger,
	releaseName string,
	status *ReleaseStatus,
	err error,
) string {
	if status != nil && strings.TrimSpace(status.Description) != "" {
		return status.Description
	}

	if description := remoteDescription(err); strings.TrimSpace(description) != "" {
		return description
	}

	current, lookupErr := s.releases.GetReleaseStatus(ctx, releaseName, latestVersion)
	if lookupErr != nil {
		logger.DebugContext(ctx, "status lookup for failure description failed", "reason", lookupErr)

		return noDescriptionPlaceholder
	}

	if current == nil || strings.TrimSpace(current.Description) == "" {
		return noDescriptionPlaceholder
	}

	return current.Description
}

// Test runs the release's test hooks. Any failing hook raises TestFailed.
func (s *Service) Test(ctx context.Context, req TestRequest) (*TestResult, error) {
	logger := s.logger.With("component", "Service.Test", "release", req.ReleaseName)

	result, err := s.releases.RunReleaseTest(ctx, req)
	if err == nil {
		switch {
		case result == nil:
			err = ErrEmptyResponse
		case !result.Passed():
			err = fmt.Errorf("%w: %s", ErrTestsNotPassed, strings.Join(result.Failed(), ", "))
		}
	}

	if err != nil {
		return nil, raise(ctx, logger, taxonomy.New(taxonomy.KindTestFailed, taxonomy.Context{
			taxonomy.FieldReleaseName: req.ReleaseName,
		}).WithCause(err))
	}

	logger.InfoContext(ctx, "release tests passed", "runs", len(result.Runs))

	return result, nil
}

// Rollback rolls a release back to req.Version.
func (s *Service) Rollback(ctx context.Context, req RollbackRequest) (*ReleaseStatus, error) {
	logger := s.logger.With(
		"component", "Service.Rollback",
		"release", req.ReleaseName,
		"version", req.Version,
	)

	status, err := s.releases.RollbackRelease(ctx, req)
	if err == nil && status != nil && status.Code == StatusFailed {
		err = ErrReleaseFailed
	}

	if err != nil {
		return nil, raise(ctx, logger, taxonomy.New(taxonomy.KindRollbackFailed, versionContext(req.ReleaseName, req.Version)).
			WithCause(err))
	}

	logger.InfoContext(ctx, "release rolled back")

	return status, nil
}

// Status queries the status of a release revision; version 0 means latest.
func (s *Service) Status(ctx context.Context, name string, version int32) (*ReleaseStatus, error) {
	logger := s.logger.With("component", "Service.Status", "release", name, "version", version)

	status, err := s.releases.GetReleaseStatus(ctx, name, version)
	if err == nil && status == nil {
		err = ErrEmptyResponse
	}

	if err != nil {
		return nil, raise(ctx, logger, taxonomy.New(taxonomy.KindStatusQueryFailed, versionContext(name, version)).
			WithCause(err))
	}

	return status, nil
}

// Content fetches the full content of a release revision; version 0 means latest.
// A remote description, when present, is attached as diagnostic detail.
func (s *Service) Content(ctx context.Context, name string, version int32) (*Release, error) {
	logger := s.logger.With("component", "Service.Content", "release", name, "version", version)

	release, err := s.releases.GetReleaseContent(ctx, name, version)
	if err == nil && release == nil {
		err = ErrEmptyResponse
	}

	if err != nil {
		fields := versionContext(name, version)
		if detail := remoteDescription(err); detail != "" {
			fields[taxonomy.FieldDetail] = detail
		}

		return nil, raise(ctx, logger, taxonomy.New(taxonomy.KindContentQueryFailed, fields).WithCause(err))
	}

	return release, nil
}

// Version returns the release service version.
func (s *Service) Version(ctx context.Context) (string, error) {
	logger := s.logger.With("component", "Service.Version")

	version, err := s.releases.GetVersion(ctx)
	if err == nil && version == "" {
		err = ErrEmptyResponse
	}

	if err != nil {
		return "", raise(ctx, logger, taxonomy.New(taxonomy.KindVersionQueryFailed, nil).WithCause(err))
	}

	return version, nil
}

func versionContext(name string, version int32) taxonomy.Context {
	return taxonomy.Context{
		taxonomy.FieldReleaseName:    name,
		taxonomy.FieldReleaseVersion: strconv.FormatInt(int64(version), 10),
	}
}
