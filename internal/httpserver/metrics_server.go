package httpserver

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skillcoder/tillerguard/internal/infra/shutdown"
)

const defaultMetricsPort = "9090"

// MetricsServer exposes GET /metrics on a dedicated port.
type MetricsServer struct {
	*listener
}

func NewMetricsServer(logger *slog.Logger, port string) *MetricsServer {
	if port == "" {
		port = defaultMetricsPort
	}

	return &MetricsServer{
		listener: newListener(logger.With("component", "metrics-server"), port),
	}
}

var _ shutdown.Shutdowner = (*MetricsServer)(nil)

func (s *MetricsServer) Name() string {
	return "metrics-server"
}

func (s *MetricsServer) Start(ctx context.Context) error {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Handle("/metrics", promhttp.Handler())

	return s.serve(ctx, router)
}
