package tiller_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
	"github.com/skillcoder/tillerguard/internal/logic/tiller"
	"github.com/skillcoder/tillerguard/internal/logic/tiller/mocks"
)

// testNotFoundError implements the service's private notFound interface.
type testNotFoundError struct{}

func (testNotFoundError) Error() string { return "not found" }
func (testNotFoundError) IsNotFound()   {}

// testRemoteError carries a release service description like the gRPC adapter does.
type testRemoteError struct {
	description string
}

func (e testRemoteError) Error() string             { return "rpc error: " + e.description }
func (e testRemoteError) RemoteDescription() string { return e.description }

var errRemote = errors.New("remote failure")

func testLogger() *slog.Logger {
	return slog.Default()
}

func newTestService(t *testing.T) (*tiller.Service, *mocks.MockReleaseService, *mocks.MockJobRepository) {
	t.Helper()

	releases := mocks.NewMockReleaseService(t)
	jobs := mocks.NewMockJobRepository(t)
	svc := tiller.New(testLogger(), releases, jobs, tiller.Options{
		ListRetryBudget: 3,
		ListRetryDelay:  time.Millisecond,
		ListPageSize:    2,
	})

	return svc, releases, jobs
}

func requireKind(t *testing.T, err error, kind taxonomy.Kind) *taxonomy.Error {
	t.Helper()

	require.Error(t, err)

	got, ok := taxonomy.As(err)
	require.True(t, ok, "error %v is not a taxonomy error", err)
	require.Equal(t, kind, got.Kind())

	return got
}

func requireField(t *testing.T, e *taxonomy.Error, field taxonomy.Field, want string) {
	t.Helper()

	got, ok := e.Field(field)
	require.True(t, ok, "field %s missing", field)
	require.Equal(t, want, got)
}
