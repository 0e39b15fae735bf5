package tiller

import "context"

// ReleaseService is the port to the remote release service.
// Implementations must be safe for concurrent use.
type ReleaseService interface {
	InstallRelease(ctx context.Context, req ChartRequest) (*ReleaseStatus, error)
	UpdateRelease(ctx context.Context, req ChartRequest) (*ReleaseStatus, error)
	UninstallRelease(ctx context.Context, req UninstallRequest) (*ReleaseStatus, error)
	RollbackRelease(ctx context.Context, req RollbackRequest) (*ReleaseStatus, error)
	RunReleaseTest(ctx context.Context, req TestRequest) (*TestResult, error)
	GetReleaseStatus(ctx context.Context, name string, version int32) (*ReleaseStatus, error)
	GetReleaseContent(ctx context.Context, name string, version int32) (*Release, error)
	ListReleases(ctx context.Context, offset string, limit int) (*ReleasePage, error)
	GetVersion(ctx context.Context) (string, error)
}

// PodRepository is the port for pod queries on the cluster control plane.
type PodRepository interface {
	ListPodsQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) ([]Pod, error)
}

// JobRepository is the port for job commands on the cluster control plane.
type JobRepository interface {
	CreateJobCommand(
		ctx context.Context,
		spec JobSpec,
	) error

	DeleteJobCommand(
		ctx context.Context,
		namespace,
		name string,
	) error

	ListJobsQuery(
		ctx context.Context,
		namespace,
		labelSelector string,
	) ([]Job, error)
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter packages.
type notFound interface {
	IsNotFound()
}

// remoteDescriber is implemented by adapter errors that carry the
// release service's own description of a failure.
type remoteDescriber interface {
	RemoteDescription() string
}
