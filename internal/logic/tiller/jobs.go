package tiller

import (
	"context"
	"fmt"

	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

// EnsureJob creates or deletes an auxiliary pre/post-update job.
// mode only affects deletes.
func (s *Service) EnsureJob(ctx context.Context, op JobOp, spec JobSpec, mode CleanupMode) error {
	switch op {
	case JobOpCreate:
		return s.CreateJob(ctx, spec)
	case JobOpDelete:
		return s.DeleteJob(ctx, spec.Namespace, spec.Name, mode)
	default:
		return fmt.Errorf("ensure job %q: %w", op, ErrUnknownJobOp)
	}
}

// CreateJob creates a hook job. Failure is fatal for the enclosing upgrade.
func (s *Service) CreateJob(ctx context.Context, spec JobSpec) error {
	logger := s.logger.With("component", "Service.CreateJob", "job", spec.Name, "namespace", spec.Namespace)

	err := s.jobs.CreateJobCommand(ctx, spec)
	if err != nil {
		return raise(ctx, logger, taxonomy.New(taxonomy.KindJobCreateFailed, jobContext(spec.Namespace, spec.Name)).
			WithCause(err))
	}

	logger.InfoContext(ctx, "job created")

	return nil
}

// DeleteJob deletes a hook job. A job that no longer exists counts as deleted.
// In CleanupBestEffort mode the returned JobDeleteFailed is not fatal; in
// CleanupMandatory mode it is escalated.
func (s *Service) DeleteJob(ctx context.Context, namespace, name string, mode CleanupMode) error {
	logger := s.logger.With(
		"component", "Service.DeleteJob",
		"job", name,
		"namespace", namespace,
		"mode", mode.String(),
	)

	err := s.jobs.DeleteJobCommand(ctx, namespace, name)
	if err != nil {
		if isNotFound(err) {
			logger.DebugContext(ctx, "job already gone")

			return nil
		}

		e := taxonomy.New(taxonomy.KindJobDeleteFailed, jobContext(namespace, name)).WithCause(err)
		if mode == CleanupMandatory {
			e = e.Escalate()
		}

		return raise(ctx, logger, e)
	}

	logger.InfoContext(ctx, "job deleted")

	return nil
}

// DeleteJobsBySelector tears down every job matching labelSelector, e.g.
// before an upgrade. Mandatory mode stops at the first failure; best-effort
// mode attempts every job and returns the first failure.
func (s *Service) DeleteJobsBySelector(
	ctx context.Context,
	namespace,
	labelSelector string,
	mode CleanupMode,
) error {
	logger := s.logger.With(
		"component", "Service.DeleteJobsBySelector",
		"namespace", namespace,
		"labelSelector", labelSelector,
		"mode", mode.String(),
	)

	jobs, err := s.jobs.ListJobsQuery(ctx, namespace, labelSelector)
	if err != nil {
		// no job name is known yet; the message template still needs one
		e := taxonomy.New(taxonomy.KindJobDeleteFailed, taxonomy.Context{
			taxonomy.FieldJobName:       selectorJobName(labelSelector),
			taxonomy.FieldNamespace:     namespace,
			taxonomy.FieldLabelSelector: labelSelector,
		}).WithCause(fmt.Errorf("list jobs: %w", err))
		if mode == CleanupMandatory {
			e = e.Escalate()
		}

		return raise(ctx, logger, e)
	}

	logger.DebugContext(ctx, "deleting jobs", "count", len(jobs))

	var first error

	for i := range jobs {
		err := s.DeleteJob(ctx, jobs[i].Namespace, jobs[i].Name, mode)
		if err == nil {
			continue
		}

		if mode == CleanupMandatory {
			return err
		}

		if first == nil {
			first = err
		}
	}

	return first
}

// selectorJobName stands in for the job name when jobs are addressed by selector.
func selectorJobName(labelSelector string) string {
	return "selector:" + labelSelector
}

// CleanupChart purges the release installed from chartName. Failures are
// reported as ChartCleanupFailed; a release that is already gone is success.
func (s *Service) CleanupChart(ctx context.Context, chartName, releaseName string) error {
	logger := s.logger.With("component", "Service.CleanupChart", "chart", chartName, "release", releaseName)

	_, err := s.releases.UninstallRelease(ctx, UninstallRequest{
		ReleaseName: releaseName,
		Purge:       true,
	})
	if err != nil {
		if isNotFound(err) {
			logger.DebugContext(ctx, "release already removed")

			return nil
		}

		return raise(ctx, logger, taxonomy.New(taxonomy.KindChartCleanupFailed, taxonomy.Context{
			taxonomy.FieldChartName:   chartName,
			taxonomy.FieldReleaseName: releaseName,
		}).WithCause(err))
	}

	logger.InfoContext(ctx, "chart cleaned up")

	return nil
}

func jobContext(namespace, name string) taxonomy.Context {
	return taxonomy.Context{
		taxonomy.FieldJobName:   name,
		taxonomy.FieldNamespace: namespace,
	}
}
