package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skillcoder/tillerguard/internal/infra/appstate"
	"github.com/skillcoder/tillerguard/internal/infra/shutdown"
)

const defaultPort = "8080"

// Server exposes the probe, status and release audit endpoints.
type Server struct {
	*listener
	appState  appstater
	snapshots snapshotter
}

func New(logger *slog.Logger, appState appstater, snapshots snapshotter, port string) *Server {
	if port == "" {
		port = defaultPort
	}

	logger = logger.With("component", "http-server")

	return &Server{
		listener:  newListener(logger, port),
		appState:  appState,
		snapshots: snapshots,
	}
}

var _ shutdown.Shutdowner = (*Server)(nil)

func (s *Server) Name() string {
	return "http-server"
}

func (s *Server) routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/-/healthz", appstate.HandleHealthz(s.logger, s.appState))
	router.Get("/-/readyz", appstate.HandleReadyz(s.logger, s.appState))
	router.Get("/-/status", appstate.HandleStatus(s.logger, s.appState))
	router.Get("/-/releases", s.handleReleases)

	return router
}

// Start binds the port and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	return s.serve(ctx, s.routes())
}
