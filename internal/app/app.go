package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
	metricsv "k8s.io/metrics/pkg/client/clientset/versioned"

	"github.com/skillcoder/tillerguard/internal/adapters/outbound/k8s"
	"github.com/skillcoder/tillerguard/internal/adapters/outbound/tillergrpc"
	"github.com/skillcoder/tillerguard/internal/config"
	"github.com/skillcoder/tillerguard/internal/httpserver"
	"github.com/skillcoder/tillerguard/internal/infra/appstate"
	"github.com/skillcoder/tillerguard/internal/infra/cronparser"
	"github.com/skillcoder/tillerguard/internal/infra/shutdown"
	"github.com/skillcoder/tillerguard/internal/logic/auditor"
	"github.com/skillcoder/tillerguard/internal/logic/tiller"
)

// ErrStartupAborted is returned when the session context ends during bring-up.
var ErrStartupAborted = errors.New("startup aborted")

// App owns one Tiller session: the discovered endpoint, the shared channel
// and the components that use it.
type App struct {
	logger   *slog.Logger
	cfg      *config.Config
	appState appstater
	kube     *k8s.Adapter
}

// New builds the cluster clients. Nothing is dialed until Run.
func New(logger *slog.Logger, cfg *config.Config, appState appstater) (*App, error) {
	kubeConfig, err := clientcmd.BuildConfigFromFlags(cfg.KubeMaster, cfg.KubeConfig)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	metricsClientset, err := metricsv.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create metrics clientset: %w", err)
	}

	return &App{
		logger:   logger,
		cfg:      cfg,
		appState: appState,
		kube:     k8s.New(logger, clientset, metricsClientset),
	}, nil
}

// Run brings the session up, serves until a termination signal arrives and
// then tears every component down in reverse order.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go shutdown.WaitForQuit(ctx, a.logger, a.appState, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting application state: %w", err)
	}

	startErr := a.start(ctx)
	if startErr != nil {
		a.logger.ErrorContext(ctx, "session bring-up failed", "reason", startErr)

		return a.abort(ctx, cancel, startErr)
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return a.abort(ctx, cancel, fmt.Errorf("set running application state: %w", err))
	}

	a.logger.InfoContext(ctx, "tillerguard is running")

	<-ctx.Done()

	a.logger.InfoContext(ctx, "shutting down")

	return a.appState.Shutdown(ctx)
}

// abort ends the session context, so started components such as a running
// audit stop before their shutdown, then tears the session down.
func (a *App) abort(ctx context.Context, cancel context.CancelFunc, cause error) error {
	cancel()

	if err := a.appState.Shutdown(ctx); err != nil {
		return errors.Join(cause, err)
	}

	return cause
}

func (a *App) start(ctx context.Context) error {
	endpoint, pod, err := a.resolveEndpoint(ctx)
	if err != nil {
		return fmt.Errorf("resolve tiller endpoint: %w", err)
	}

	channel, err := tillergrpc.Open(ctx, a.logger, tillergrpc.ChannelOptions{
		Endpoint:       endpoint,
		TLS:            a.cfg.TillerTLS,
		ConnectTimeout: a.cfg.ChannelTimeout,
	})
	if err != nil {
		return fmt.Errorf("open tiller channel: %w", err)
	}

	if err := a.register(channel); err != nil {
		_ = channel.Close()

		return err
	}

	client := tillergrpc.NewClient(a.logger, channel.Conn(), a.cfg.TillerAPIVersion)
	guard := tiller.New(a.logger, client, a.kube, tiller.Options{
		ListRetryBudget: a.cfg.ListRetryBudget,
		ListRetryDelay:  a.cfg.ListRetryDelay,
		ListPageSize:    a.cfg.ListPageSize,
	})

	serverVersion, err := guard.Version(ctx)
	if err != nil {
		return fmt.Errorf("query tiller version: %w", err)
	}

	if err := tiller.CheckCompatible(a.cfg.TillerAPIVersion, serverVersion); err != nil {
		a.logger.WarnContext(ctx, "tiller version check failed, continuing",
			"clientVersion", a.cfg.TillerAPIVersion,
			"serverVersion", serverVersion,
			"reason", err,
		)
	}

	a.appState.SetSession(ctx, appstate.Session{
		Endpoint:      endpoint,
		Pod:           pod,
		ServerVersion: serverVersion,
		EstablishedAt: time.Now(),
	})

	audit, err := auditor.New(a.logger, guard, a.kube, a.kube, cronparser.New(), auditor.Options{
		Schedule:        a.cfg.AuditSchedule,
		TZ:              a.cfg.AuditTZ,
		PageSize:        a.cfg.ListPageSize,
		TillerNamespace: a.cfg.TillerNamespace,
		TillerPodLabels: a.cfg.TillerPodLabels,
	})
	if err != nil {
		return fmt.Errorf("create auditor: %w", err)
	}

	servers := []appServer{
		audit,
		httpserver.New(a.logger, a.appState, audit, a.cfg.HTTPPort),
		httpserver.NewMetricsServer(a.logger, a.cfg.MetricsPort),
	}

	readyChans := make([]<-chan struct{}, 0, len(servers)+1)

	for _, srv := range servers {
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", srv.Name(), err)
		}

		if err := a.register(srv); err != nil {
			return err
		}

		readyChans = append(readyChans, srv.Ready())
	}

	pingerReady, err := a.appState.StartPinger(ctx)
	if err != nil {
		return fmt.Errorf("start pinger: %w", err)
	}

	readyChans = append(readyChans, pingerReady)

	select {
	case <-ctx.Done():
		return fmt.Errorf("wait for components: %w: %w", ErrStartupAborted, ctx.Err())
	case <-allChannelsClose(ctx, a.logger, readyChans...):
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("wait for components: %w: %w", ErrStartupAborted, err)
	}

	return nil
}

// resolveEndpoint returns the configured Tiller host, or discovers the
// running Tiller pod and dials it by IP.
func (a *App) resolveEndpoint(ctx context.Context) (endpoint, pod string, err error) {
	if a.cfg.TillerHost != "" {
		return a.cfg.TillerHost, "", nil
	}

	discovery := tiller.NewDiscovery(a.logger, a.kube, a.cfg.TillerNamespace)

	found, err := discovery.Find(ctx, a.cfg.TillerPodLabels, a.cfg.PodDiscoveryTimeout, a.cfg.PodPollInterval)
	if err != nil {
		return "", "", err
	}

	return found.Endpoint(a.cfg.TillerPort), found.String(), nil
}

func (a *App) register(component sessionComponent) error {
	if err := a.appState.RegisterShutdowner(component); err != nil {
		return fmt.Errorf("register shutdowner %s: %w", component.Name(), err)
	}

	if err := a.appState.RegisterPinger(component); err != nil {
		return fmt.Errorf("register pinger %s: %w", component.Name(), err)
	}

	return nil
}

// allChannelsClose returns a channel closed once every input channel has
// closed, or once ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	var wg sync.WaitGroup

	for _, ch := range chans {
		wg.Add(1)

		go func(ch <-chan struct{}) {
			defer wg.Done()

			select {
			case <-ch:
			case <-ctx.Done():
			}
		}(ch)
	}

	go func() {
		wg.Wait()
		logger.DebugContext(ctx, "all components ready", "count", len(chans))
		close(out)
	}()

	return out
}
