package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"
)

const (
	readTimeout       = 3 * time.Second
	readHeaderTimeout = 3 * time.Second
	writeTimeout      = 5 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 1 << 12
)

// ErrNotReady is returned by Ping before the listener is bound.
var ErrNotReady = errors.New("server is not ready")

// listener is the bind, serve and shutdown lifecycle shared by the status
// and metrics servers.
type listener struct {
	logger     *slog.Logger
	port       string
	server     *http.Server
	addr       atomic.Value
	ready      chan struct{}
	inShutdown atomic.Bool
}

func newListener(logger *slog.Logger, port string) *listener {
	return &listener{
		logger: logger,
		port:   port,
		ready:  make(chan struct{}),
	}
}

// serve binds the port synchronously and serves handler in the background.
func (l *listener) serve(ctx context.Context, handler http.Handler) error {
	if l.inShutdown.Load() {
		l.logger.InfoContext(ctx, "shutting down, skipping start")

		return nil
	}

	lc := &net.ListenConfig{
		KeepAliveConfig: net.KeepAliveConfig{Enable: true},
	}

	ln, err := lc.Listen(ctx, "tcp", ":"+l.port)
	if err != nil {
		return fmt.Errorf("listen tcp :%s: %w", l.port, err)
	}

	l.server = &http.Server{
		Handler:           handler,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		MaxHeaderBytes:    maxHeaderBytes,
	}

	l.addr.Store(ln.Addr().String())
	l.logger.InfoContext(ctx, "listening", "addr", ln.Addr().String())

	close(l.ready)

	go func() {
		if err := l.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.logger.ErrorContext(ctx, "serve failed", "reason", err)
		}
	}()

	return nil
}

// Ready is closed once the port is bound.
func (l *listener) Ready() <-chan struct{} {
	return l.ready
}

// Addr returns the bound address, or "" before Start.
func (l *listener) Addr() string {
	addr, _ := l.addr.Load().(string)

	return addr
}

// Ping returns nil once the port is bound.
func (l *listener) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-l.ready:
		return nil
	default:
		return ErrNotReady
	}
}

// PingerReadyCritical keeps readiness tied to the Tiller session only.
func (l *listener) PingerReadyCritical() bool {
	return false
}

// Shutdown drains in-flight requests. Repeated calls are no-ops.
func (l *listener) Shutdown(ctx context.Context) error {
	if !l.inShutdown.CompareAndSwap(false, true) || l.server == nil {
		return nil
	}

	if err := l.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	l.logger.InfoContext(ctx, "server closed")

	return nil
}
