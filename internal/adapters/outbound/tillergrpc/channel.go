package tillergrpc

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/skillcoder/tillerguard/internal/infra/metrics"
	"github.com/skillcoder/tillerguard/internal/logic/taxonomy"
)

const (
	channelName           = "tiller-channel"
	defaultConnectTimeout = 5 * time.Second

	// maxMsgSize matches the chunk bound Tiller applies to release payloads.
	maxMsgSize = 20 << 20
)

// ChannelOptions configures Open.
type ChannelOptions struct {
	Endpoint       string
	TLS            bool
	ConnectTimeout time.Duration
}

// Channel is one connection to the release service, shared by all callers.
type Channel struct {
	logger   *slog.Logger
	endpoint string
	conn     *grpc.ClientConn
}

// Open builds a channel and blocks until it is ready or ConnectTimeout passes.
// Any failure raises ChannelSetupFailed; Open never retries on its own.
func Open(ctx context.Context, logger *slog.Logger, opts ChannelOptions) (*Channel, error) {
	logger = logger.With("component", "tillergrpc.Open", "endpoint", opts.Endpoint)

	if opts.Endpoint == "" {
		return nil, setupFailed(ctx, logger, opts.Endpoint, ErrEmptyEndpoint)
	}

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}

	creds := insecure.NewCredentials()
	if opts.TLS {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	conn, err := grpc.NewClient(
		opts.Endpoint,
		grpc.WithTransportCredentials(creds),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(maxMsgSize),
			grpc.MaxCallSendMsgSize(maxMsgSize),
		),
	)
	if err != nil {
		return nil, setupFailed(ctx, logger, opts.Endpoint, fmt.Errorf("new client: %w", err))
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn.Connect()

	err = waitReady(connectCtx, conn)
	if err != nil {
		_ = conn.Close()

		return nil, setupFailed(ctx, logger, opts.Endpoint, err)
	}

	logger.InfoContext(ctx, "tiller channel ready")

	return &Channel{
		logger:   logger,
		endpoint: opts.Endpoint,
		conn:     conn,
	}, nil
}

func waitReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()

		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.TransientFailure:
			return ErrTransientFailure
		case connectivity.Shutdown:
			return ErrConnShutdown
		case connectivity.Idle, connectivity.Connecting:
		}

		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("wait for ready in state %s: %w", state, ctx.Err())
		}
	}
}

func setupFailed(ctx context.Context, logger *slog.Logger, endpoint string, cause error) error {
	e := taxonomy.New(taxonomy.KindChannelSetupFailed, taxonomy.Context{
		taxonomy.FieldEndpoint: endpoint,
	}).WithCause(cause)

	metrics.RecordFault(e.Kind().String(), e.Fatal())
	logger.ErrorContext(ctx, "open tiller channel failed", "reason", e)

	return e
}

// Conn returns the underlying connection for building clients.
func (c *Channel) Conn() *grpc.ClientConn {
	return c.conn
}

// Endpoint returns the dialed target.
func (c *Channel) Endpoint() string {
	return c.endpoint
}

func (c *Channel) Name() string {
	return channelName
}

// Ping reports ServicesUnavailable when the connection is failing or closed.
// An idle connection is kicked to reconnect.
func (c *Channel) Ping(_ context.Context) error {
	state := c.conn.GetState()

	switch state {
	case connectivity.TransientFailure, connectivity.Shutdown:
		return taxonomy.New(taxonomy.KindServicesUnavailable, taxonomy.Context{
			taxonomy.FieldEndpoint: c.endpoint,
		}).WithCause(fmt.Errorf("connection state %s", state))
	case connectivity.Idle:
		c.conn.Connect()
	case connectivity.Connecting, connectivity.Ready:
	}

	return nil
}

// Close closes the underlying connection.
func (c *Channel) Close() error {
	err := c.conn.Close()
	if err != nil {
		return fmt.Errorf("close tiller channel: %w", err)
	}

	return nil
}

// Shutdown closes the channel once every dependent component has stopped.
func (c *Channel) Shutdown(ctx context.Context) error {
	c.logger.InfoContext(ctx, "closing tiller channel")

	return c.Close()
}
