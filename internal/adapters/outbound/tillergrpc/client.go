package tillergrpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"k8s.io/helm/pkg/proto/hapi/release"
	"k8s.io/helm/pkg/proto/hapi/services"

	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

const (
	apiVersionHeader = "x-helm-api-client"

	// DefaultAPIVersion is the client version Tiller checks for compatibility.
	DefaultAPIVersion = "v2.16.12"
)

const (
	methodInstallRelease    = "InstallRelease"
	methodUpdateRelease     = "UpdateRelease"
	methodUninstallRelease  = "UninstallRelease"
	methodRollbackRelease   = "RollbackRelease"
	methodRunReleaseTest    = "RunReleaseTest"
	methodGetReleaseStatus  = "GetReleaseStatus"
	methodGetReleaseContent = "GetReleaseContent"
	methodListReleases      = "ListReleases"
	methodGetVersion        = "GetVersion"
)

// listedStatuses is every status but SUPERSEDED, so each release is listed
// once at its latest revision. Tiller lists only DEPLOYED when none are sent.
var listedStatuses = []release.Status_Code{
	release.Status_UNKNOWN,
	release.Status_DEPLOYED,
	release.Status_DELETED,
	release.Status_DELETING,
	release.Status_FAILED,
	release.Status_PENDING_INSTALL,
	release.Status_PENDING_UPGRADE,
	release.Status_PENDING_ROLLBACK,
}

// Client implements the release service port over a shared connection.
type Client struct {
	logger     *slog.Logger
	rpc        services.ReleaseServiceClient
	apiVersion string
}

// NewClient creates a release service client.
func NewClient(
	logger *slog.Logger,
	conn *grpc.ClientConn,
	apiVersion string,
) *Client {
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	return &Client{
		logger:     logger,
		rpc:        services.NewReleaseServiceClient(conn),
		apiVersion: apiVersion,
	}
}

var _ tiller.ReleaseService = (*Client)(nil)

func (c *Client) outgoing(ctx context.Context) context.Context {
	return metadata.AppendToOutgoingContext(ctx, apiVersionHeader, c.apiVersion)
}

func (c *Client) failed(ctx context.Context, method string, err error) error {
	c.logger.DebugContext(ctx, "tiller call failed", "method", method, "reason", err)

	return toRemoteError(method, err)
}

func releaseStatus(method string, rel *release.Release) (*tiller.ReleaseStatus, error) {
	if rel == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptyRelease)
	}

	return toDomainStatus(rel), nil
}

func (c *Client) InstallRelease(ctx context.Context, req tiller.ChartRequest) (*tiller.ReleaseStatus, error) {
	ch, values, err := loadChart(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodInstallRelease, err)
	}

	resp, err := c.rpc.InstallRelease(c.outgoing(ctx), &services.InstallReleaseRequest{
		Name:      req.ReleaseName,
		Namespace: req.Namespace,
		Chart:     ch,
		Values:    values,
		Timeout:   toSeconds(req.Timeout),
		Wait:      req.Wait,
	})
	if err != nil {
		return nil, c.failed(ctx, methodInstallRelease, err)
	}

	return releaseStatus(methodInstallRelease, resp.GetRelease())
}

func (c *Client) UpdateRelease(ctx context.Context, req tiller.ChartRequest) (*tiller.ReleaseStatus, error) {
	ch, values, err := loadChart(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUpdateRelease, err)
	}

	resp, err := c.rpc.UpdateRelease(c.outgoing(ctx), &services.UpdateReleaseRequest{
		Name:    req.ReleaseName,
		Chart:   ch,
		Values:  values,
		Timeout: toSeconds(req.Timeout),
		Wait:    req.Wait,
	})
	if err != nil {
		return nil, c.failed(ctx, methodUpdateRelease, err)
	}

	return releaseStatus(methodUpdateRelease, resp.GetRelease())
}

func (c *Client) UninstallRelease(ctx context.Context, req tiller.UninstallRequest) (*tiller.ReleaseStatus, error) {
	resp, err := c.rpc.UninstallRelease(c.outgoing(ctx), &services.UninstallReleaseRequest{
		Name:    req.ReleaseName,
		Purge:   req.Purge,
		Timeout: toSeconds(req.Timeout),
	})
	if err != nil {
		return nil, c.failed(ctx, methodUninstallRelease, err)
	}

	return releaseStatus(methodUninstallRelease, resp.GetRelease())
}

func (c *Client) RollbackRelease(ctx context.Context, req tiller.RollbackRequest) (*tiller.ReleaseStatus, error) {
	resp, err := c.rpc.RollbackRelease(c.outgoing(ctx), &services.RollbackReleaseRequest{
		Name:    req.ReleaseName,
		Version: req.Version,
		Timeout: toSeconds(req.Timeout),
		Wait:    req.Wait,
	})
	if err != nil {
		return nil, c.failed(ctx, methodRollbackRelease, err)
	}

	return releaseStatus(methodRollbackRelease, resp.GetRelease())
}

// RunReleaseTest consumes the server stream of test messages until it ends.
func (c *Client) RunReleaseTest(ctx context.Context, req tiller.TestRequest) (*tiller.TestResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.rpc.RunReleaseTest(c.outgoing(ctx), &services.TestReleaseRequest{
		Name:    req.ReleaseName,
		Timeout: toSeconds(req.Timeout),
		Cleanup: req.Cleanup,
	})
	if err != nil {
		return nil, c.failed(ctx, methodRunReleaseTest, err)
	}

	result := &tiller.TestResult{ReleaseName: req.ReleaseName}

	for {
		msg, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return result, nil
		}

		if err != nil {
			return nil, c.failed(ctx, methodRunReleaseTest, err)
		}

		c.logger.DebugContext(ctx, "release test message",
			"release", req.ReleaseName,
			"status", msg.GetStatus().String(),
			"msg", msg.GetMsg(),
		)

		if run, ok := toTestRun(msg); ok {
			result.Runs = append(result.Runs, run)
		}
	}
}

func (c *Client) GetReleaseStatus(ctx context.Context, name string, version int32) (*tiller.ReleaseStatus, error) {
	resp, err := c.rpc.GetReleaseStatus(c.outgoing(ctx), &services.GetReleaseStatusRequest{
		Name:    name,
		Version: version,
	})
	if err != nil {
		return nil, c.failed(ctx, methodGetReleaseStatus, err)
	}

	return &tiller.ReleaseStatus{
		ReleaseName: resp.GetName(),
		Version:     version,
		Code:        toStatusCode(resp.GetInfo().GetStatus().GetCode()),
		Description: resp.GetInfo().GetDescription(),
	}, nil
}

func (c *Client) GetReleaseContent(ctx context.Context, name string, version int32) (*tiller.Release, error) {
	resp, err := c.rpc.GetReleaseContent(c.outgoing(ctx), &services.GetReleaseContentRequest{
		Name:    name,
		Version: version,
	})
	if err != nil {
		return nil, c.failed(ctx, methodGetReleaseContent, err)
	}

	if resp.GetRelease() == nil {
		return nil, fmt.Errorf("%s: %w", methodGetReleaseContent, ErrEmptyRelease)
	}

	rel, err := toDomainRelease(resp.GetRelease())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGetReleaseContent, err)
	}

	return rel, nil
}

// ListReleases fetches one page starting at the release named offset. Tiller
// streams a page as several size-bounded chunks; all of them are read and
// merged, each carries the same Total and Next.
func (c *Client) ListReleases(ctx context.Context, offset string, limit int) (*tiller.ReleasePage, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stream, err := c.rpc.ListReleases(c.outgoing(ctx), &services.ListReleasesRequest{
		Offset:      offset,
		Limit:       int64(limit),
		SortBy:      services.ListSort_NAME,
		SortOrder:   services.ListSort_ASC,
		StatusCodes: listedStatuses,
	})
	if err != nil {
		return nil, c.listFailed(ctx, err)
	}

	page := &tiller.ReleasePage{}

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return page, nil
		}

		if err != nil {
			return nil, c.listFailed(ctx, err)
		}

		page.Total = int(resp.GetTotal())
		page.Next = resp.GetNext()
		page.Items = appendSummaries(page.Items, resp.GetReleases())
	}
}

func (c *Client) listFailed(ctx context.Context, err error) error {
	err = c.failed(ctx, methodListReleases, err)
	if isCursorLost(err) {
		return fmt.Errorf("%w: %w", tiller.ErrCursorLost, err)
	}

	return err
}

func (c *Client) GetVersion(ctx context.Context) (string, error) {
	resp, err := c.rpc.GetVersion(c.outgoing(ctx), &services.GetVersionRequest{})
	if err != nil {
		return "", c.failed(ctx, methodGetVersion, err)
	}

	return resp.GetVersion().GetSemVer(), nil
}
