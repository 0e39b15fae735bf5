package tillergrpc_test

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"k8s.io/helm/pkg/proto/hapi/chart"
	"k8s.io/helm/pkg/proto/hapi/release"
	"k8s.io/helm/pkg/proto/hapi/services"
	"k8s.io/helm/pkg/proto/hapi/version"

	"github.com/skillcoder/tillerguard/internal/adapters/outbound/tillergrpc"
)

type recordedCall struct {
	method     string
	request    any
	apiVersion []string
}

// fakeTiller is an in-process release service. ListReleases pages the way
// Tiller does: offset names the first release, Next names the one after the
// page, and a page is streamed in chunks of chunkSize releases.
type fakeTiller struct {
	release   *release.Release
	status    *services.GetReleaseStatusResponse
	releases  []*release.Release
	chunkSize int
	tests     []*services.TestReleaseResponse
	version   string
	err       error

	mu    sync.Mutex
	calls []recordedCall
}

var _ services.ReleaseServiceServer = (*fakeTiller)(nil)

func (f *fakeTiller) record(ctx context.Context, method string, req any) {
	md, _ := metadata.FromIncomingContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, recordedCall{
		method:     method,
		request:    req,
		apiVersion: md.Get("x-helm-api-client"),
	})
}

func (f *fakeTiller) lastCall(t *testing.T) recordedCall {
	t.Helper()

	f.mu.Lock()
	defer f.mu.Unlock()

	require.NotEmpty(t, f.calls)

	return f.calls[len(f.calls)-1]
}

func (f *fakeTiller) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.calls)
}

func (f *fakeTiller) ListReleases(
	req *services.ListReleasesRequest,
	stream services.ReleaseService_ListReleasesServer,
) error {
	f.record(stream.Context(), "ListReleases", req)

	if f.err != nil {
		return f.err
	}

	rels := f.releases
	if req.GetOffset() != "" {
		i := slices.IndexFunc(rels, func(r *release.Release) bool { return r.GetName() == req.GetOffset() })
		if i < 0 {
			return fmt.Errorf("offset %q not found", req.GetOffset())
		}

		rels = rels[i:]
	}

	var next string
	if limit := int(req.GetLimit()); limit > 0 && len(rels) > limit {
		next = rels[limit].GetName()
		rels = rels[:limit]
	}

	chunkSize := f.chunkSize
	if chunkSize <= 0 {
		chunkSize = max(len(rels), 1)
	}

	chunks := slices.Collect(slices.Chunk(rels, chunkSize))
	if len(chunks) == 0 {
		chunks = [][]*release.Release{nil}
	}

	for _, chunk := range chunks {
		err := stream.Send(&services.ListReleasesResponse{
			Count:    int64(len(rels)),
			Next:     next,
			Total:    int64(len(f.releases)),
			Releases: chunk,
		})
		if err != nil {
			return err
		}
	}

	return nil
}

func (f *fakeTiller) GetReleaseStatus(
	ctx context.Context,
	req *services.GetReleaseStatusRequest,
) (*services.GetReleaseStatusResponse, error) {
	f.record(ctx, "GetReleaseStatus", req)

	return f.status, f.err
}

func (f *fakeTiller) GetReleaseContent(
	ctx context.Context,
	req *services.GetReleaseContentRequest,
) (*services.GetReleaseContentResponse, error) {
	f.record(ctx, "GetReleaseContent", req)

	if f.err != nil {
		return nil, f.err
	}

	return &services.GetReleaseContentResponse{Release: f.release}, nil
}

func (f *fakeTiller) UpdateRelease(
	ctx context.Context,
	req *services.UpdateReleaseRequest,
) (*services.UpdateReleaseResponse, error) {
	f.record(ctx, "UpdateRelease", req)

	if f.err != nil {
		return nil, f.err
	}

	return &services.UpdateReleaseResponse{Release: f.release}, nil
}

func (f *fakeTiller) InstallRelease(
	ctx context.Context,
	req *services.InstallReleaseRequest,
) (*services.InstallReleaseResponse, error) {
	f.record(ctx, "InstallRelease", req)

	if f.err != nil {
		return nil, f.err
	}

	return &services.InstallReleaseResponse{Release: f.release}, nil
}

func (f *fakeTiller) UninstallRelease(
	ctx context.Context,
	req *services.UninstallReleaseRequest,
) (*services.UninstallReleaseResponse, error) {
	f.record(ctx, "UninstallRelease", req)

	if f.err != nil {
		return nil, f.err
	}

	return &services.UninstallReleaseResponse{Release: f.release}, nil
}

func (f *fakeTiller) GetVersion(
	ctx context.Context,
	req *services.GetVersionRequest,
) (*services.GetVersionResponse, error) {
	f.record(ctx, "GetVersion", req)

	if f.err != nil {
		return nil, f.err
	}

	return &services.GetVersionResponse{Version: &version.Version{SemVer: f.version}}, nil
}

func (f *fakeTiller) RollbackRelease(
	ctx context.Context,
	req *services.RollbackReleaseRequest,
) (*services.RollbackReleaseResponse, error) {
	f.record(ctx, "RollbackRelease", req)

	if f.err != nil {
		return nil, f.err
	}

	return &services.RollbackReleaseResponse{Release: f.release}, nil
}

func (f *fakeTiller) GetHistory(
	ctx context.Context,
	req *services.GetHistoryRequest,
) (*services.GetHistoryResponse, error) {
	f.record(ctx, "GetHistory", req)

	return nil, status.Error(codes.Unimplemented, "GetHistory")
}

func (f *fakeTiller) RunReleaseTest(
	req *services.TestReleaseRequest,
	stream services.ReleaseService_RunReleaseTestServer,
) error {
	f.record(stream.Context(), "RunReleaseTest", req)

	for _, msg := range f.tests {
		if err := stream.Send(msg); err != nil {
			return err
		}
	}

	return f.err
}

func startFakeTiller(t *testing.T, fake *fakeTiller) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := grpc.NewServer()
	services.RegisterReleaseServiceServer(s, fake)

	go func() { _ = s.Serve(lis) }()

	t.Cleanup(s.Stop)

	return lis.Addr().String()
}

func openTestChannel(t *testing.T, fake *fakeTiller) *tillergrpc.Channel {
	t.Helper()

	ch, err := tillergrpc.Open(t.Context(), slog.Default(), tillergrpc.ChannelOptions{
		Endpoint:       startFakeTiller(t, fake),
		ConnectTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = ch.Close() })

	return ch
}

func newTestClient(t *testing.T, fake *fakeTiller) *tillergrpc.Client {
	t.Helper()

	return tillergrpc.NewClient(slog.Default(), openTestChannel(t, fake).Conn(), "")
}

func hapiRelease(name string, code release.Status_Code, description string) *release.Release {
	return &release.Release{
		Name:      name,
		Namespace: "apps",
		Version:   3,
		Info: &release.Info{
			Status:      &release.Status{Code: code},
			Description: description,
		},
		Chart:  &chart.Chart{Metadata: &chart.Metadata{Name: "web", Version: "1.2.0"}},
		Config: &chart.Config{Raw: "replicas: 2\nimage:\n  tag: v1\n"},
	}
}

// writeChart lays out a minimal chart directory and returns its path.
func writeChart(t *testing.T) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "web")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "templates"), 0o750))

	files := map[string]string{
		"Chart.yaml":               "apiVersion: v1\nname: web\nversion: 1.2.0\n",
		"values.yaml":              "replicas: 1\n",
		"templates/configmap.yaml": "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: {{ .Release.Name }}\n",
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
	}

	return dir
}
