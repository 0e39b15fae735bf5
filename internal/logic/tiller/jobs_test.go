package tiller_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

func TestService_CreateJob(t *testing.T) {
	t.Parallel()

	spec := tiller.JobSpec{Name: "pre-hook", Namespace: "ns1", Image: "busybox"}

	t.Run("failure is fatal", func(t *testing.T) {
		t.Parallel()

		svc, _, jobs := newTestService(t)

		jobs.EXPECT().CreateJobCommand(mock.Anything, spec).Return(errRemote).Once()

		err := svc.CreateJob(t.Context(), spec)

		e := requireKind(t, err, taxonomy.KindJobCreateFailed)
		require.Equal(t, "Failed to create k8s job pre-hook in ns1", e.Message())
		requireField(t, e, taxonomy.FieldJobName, "pre-hook")
		requireField(t, e, taxonomy.FieldNamespace, "ns1")
		require.True(t, taxonomy.IsFatal(err))
	})

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc, _, jobs := newTestService(t)

		jobs.EXPECT().CreateJobCommand(mock.Anything, spec).Return(nil).Once()

		require.NoError(t, svc.EnsureJob(t.Context(), tiller.JobOpCreate, spec, tiller.CleanupBestEffort))
	})
}

func TestService_DeleteJob(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		giveErr   error
		giveMode  tiller.CleanupMode
		wantErr   bool
		wantFatal bool
	}{
		{
			name:     "deleted",
			giveMode: tiller.CleanupBestEffort,
		},
		{
			name:     "already gone",
			giveErr:  testNotFoundError{},
			giveMode: tiller.CleanupMandatory,
		},
		{
			name:     "best effort failure is not fatal",
			giveErr:  errRemote,
			giveMode: tiller.CleanupBestEffort,
			wantErr:  true,
		},
		{
			name:      "mandatory failure is fatal",
			giveErr:   errRemote,
			giveMode:  tiller.CleanupMandatory,
			wantErr:   true,
			wantFatal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, _, jobs := newTestService(t)

			jobs.EXPECT().DeleteJobCommand(mock.Anything, "ns1", "post-hook").Return(tt.giveErr).Once()

			err := svc.EnsureJob(t.Context(), tiller.JobOpDelete,
				tiller.JobSpec{Name: "post-hook", Namespace: "ns1"}, tt.giveMode)
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			e := requireKind(t, err, taxonomy.KindJobDeleteFailed)
			require.Equal(t, "Failed to delete k8s job post-hook in ns1", e.Message())
			require.Equal(t, tt.wantFatal, taxonomy.IsFatal(err))
		})
	}

	t.Run("unknown op", func(t *testing.T) {
		t.Parallel()

		svc, _, _ := newTestService(t)

		err := svc.EnsureJob(t.Context(), "restart", tiller.JobSpec{}, tiller.CleanupBestEffort)
		require.ErrorIs(t, err, tiller.ErrUnknownJobOp)
	})
}

func TestService_DeleteJobsBySelector(t *testing.T) {
	t.Parallel()

	const selector = "release=web,hook=pre-upgrade"

	listed := []tiller.Job{
		{Name: "hook-a", Namespace: "ns1"},
		{Name: "hook-b", Namespace: "ns1"},
		{Name: "hook-c", Namespace: "ns1"},
	}

	t.Run("best effort attempts every job", func(t *testing.T) {
		t.Parallel()

		svc, _, jobs := newTestService(t)

		jobs.EXPECT().ListJobsQuery(mock.Anything, "ns1", selector).Return(listed, nil).Once()
		jobs.EXPECT().DeleteJobCommand(mock.Anything, "ns1", "hook-a").Return(errRemote).Once()
		jobs.EXPECT().DeleteJobCommand(mock.Anything, "ns1", "hook-b").Return(nil).Once()
		jobs.EXPECT().DeleteJobCommand(mock.Anything, "ns1", "hook-c").Return(testNotFoundError{}).Once()

		err := svc.DeleteJobsBySelector(t.Context(), "ns1", selector, tiller.CleanupBestEffort)

		e := requireKind(t, err, taxonomy.KindJobDeleteFailed)
		requireField(t, e, taxonomy.FieldJobName, "hook-a")
		require.False(t, taxonomy.IsFatal(err))
	})

	t.Run("mandatory stops at first failure", func(t *testing.T) {
		t.Parallel()

		svc, _, jobs := newTestService(t)

		jobs.EXPECT().ListJobsQuery(mock.Anything, "ns1", selector).Return(listed, nil).Once()
		jobs.EXPECT().DeleteJobCommand(mock.Anything, "ns1", "hook-a").Return(nil).Once()
		jobs.EXPECT().DeleteJobCommand(mock.Anything, "ns1", "hook-b").Return(errRemote).Once()

		err := svc.DeleteJobsBySelector(t.Context(), "ns1", selector, tiller.CleanupMandatory)

		e := requireKind(t, err, taxonomy.KindJobDeleteFailed)
		requireField(t, e, taxonomy.FieldJobName, "hook-b")
		require.True(t, taxonomy.IsFatal(err))
	})

	t.Run("list failure", func(t *testing.T) {
		t.Parallel()

		svc, _, jobs := newTestService(t)

		listErr := errors.New("forbidden")
		jobs.EXPECT().ListJobsQuery(mock.Anything, "ns1", selector).Return(nil, listErr).Once()

		err := svc.DeleteJobsBySelector(t.Context(), "ns1", selector, tiller.CleanupBestEffort)

		e := requireKind(t, err, taxonomy.KindJobDeleteFailed)
		requireField(t, e, taxonomy.FieldLabelSelector, selector)
		requireField(t, e, taxonomy.FieldJobName, "selector:"+selector)
		require.Equal(t, "Failed to delete k8s job selector:"+selector+" in ns1", e.Message())
		require.ErrorIs(t, err, listErr)
	})
}

func TestService_CleanupChart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		giveErr error
		wantErr bool
	}{
		{name: "purged"},
		{name: "already gone", giveErr: testNotFoundError{}},
		{name: "failure", giveErr: errRemote, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, releases, _ := newTestService(t)

			releases.EXPECT().
				UninstallRelease(mock.Anything, tiller.UninstallRequest{ReleaseName: "web-canary", Purge: true}).
				Return(nil, tt.giveErr).
				Once()

			err := svc.CleanupChart(t.Context(), "stable/web", "web-canary")
			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			e := requireKind(t, err, taxonomy.KindChartCleanupFailed)
			require.Equal(t, "An error occurred during cleanup while removing stable/web", e.Message())
			requireField(t, e, taxonomy.FieldReleaseName, "web-canary")
			require.False(t, taxonomy.IsFatal(err))
		})
	}
}
