package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/skillcoder/tillerguard/internal/infra/logging"
)

type Config struct {
	// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
	KubeConfig string `env:"KUBECONFIG"`
	// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
	KubeMaster string `env:"KUBE_MASTER"`

	// Log level: debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// Log format: json, text or console.
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Port for health/readiness/status HTTP server.
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	// Port for Prometheus metrics (GET /metrics).
	MetricsPort    string        `env:"METRICS_PORT" envDefault:"9090"`
	PingerInterval time.Duration `env:"PINGER_INTERVAL" envDefault:"10s"`

	// Consecutive failed probes before a critical component fails liveness.
	PingerFailureThreshold int `env:"PINGER_FAILURE_THRESHOLD" envDefault:"3"`
	// Presence of this file after bring-up triggers a self SIGTERM.
	TerminationFile string `env:"TERMINATION_FILE" envDefault:"/mnt/signal/terminating"`

	// Tiller address (host:port). When empty the Tiller pod is discovered
	// by label selector and dialed by pod IP on TillerPort.
	TillerHost      string `env:"TILLER_HOST"`
	TillerPort      int    `env:"TILLER_PORT" envDefault:"44134"`
	TillerNamespace string `env:"TILLER_NAMESPACE" envDefault:"kube-system"`
	TillerPodLabels string `env:"TILLER_POD_LABELS" envDefault:"app=helm,name=tiller"`
	TillerTLS       bool   `env:"TILLER_TLS" envDefault:"false"`
	// Version sent in the x-helm-api-client header.
	TillerAPIVersion string `env:"TILLER_API_VERSION" envDefault:"v2.16.12"`

	ChannelTimeout      time.Duration `env:"CHANNEL_TIMEOUT" envDefault:"5s"`
	PodDiscoveryTimeout time.Duration `env:"POD_DISCOVERY_TIMEOUT" envDefault:"30s"`
	PodPollInterval     time.Duration `env:"POD_POLL_INTERVAL" envDefault:"1s"`

	ListPageSize    int           `env:"LIST_PAGE_SIZE" envDefault:"32"`
	ListRetryBudget int           `env:"LIST_RETRY_BUDGET" envDefault:"3"`
	ListRetryDelay  time.Duration `env:"LIST_RETRY_DELAY" envDefault:"1s"`

	// Cron expression for release audits; first audit runs at startup.
	AuditSchedule string `env:"AUDIT_SCHEDULE" envDefault:"*/5 * * * *"`
	// IANA timezone for AuditSchedule; UTC when empty.
	AuditTZ string `env:"AUDIT_TZ"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: envPrefix,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParseEnv, err)
	}

	if cfg.KubeConfig == "" {
		cfg.KubeConfig = os.Getenv(envKeyKubeConfigFallback)
	}

	if cfg.KubeMaster == "" {
		cfg.KubeMaster = os.Getenv(envKeyKubeMasterFallback)
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case logging.FormatJSON, logging.FormatText, logging.FormatConsole:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.LogFormat)
	}

	durations := []struct {
		key   string
		value time.Duration
		min   time.Duration
	}{
		{"PINGER_INTERVAL", c.PingerInterval, envMinPingerInterval},
		{"CHANNEL_TIMEOUT", c.ChannelTimeout, envMinChannelTimeout},
		{"POD_DISCOVERY_TIMEOUT", c.PodDiscoveryTimeout, envMinPodDiscoveryTimeout},
		{"POD_POLL_INTERVAL", c.PodPollInterval, envMinPodPollInterval},
		{"LIST_RETRY_DELAY", c.ListRetryDelay, 0},
	}

	for _, d := range durations {
		if d.value < d.min {
			return fmt.Errorf("%w: %s%s=%s, min %s", ErrBelowMinimum, envPrefix, d.key, d.value, d.min)
		}
	}

	if c.ListPageSize < envMinListPageSize {
		return fmt.Errorf("%w: %sLIST_PAGE_SIZE=%d, min %d",
			ErrBelowMinimum, envPrefix, c.ListPageSize, envMinListPageSize)
	}

	if c.PingerFailureThreshold < envMinPingerFailureThreshold {
		return fmt.Errorf("%w: %sPINGER_FAILURE_THRESHOLD=%d, min %d",
			ErrBelowMinimum, envPrefix, c.PingerFailureThreshold, envMinPingerFailureThreshold)
	}

	if c.ListRetryBudget < 0 {
		return fmt.Errorf("%w: %sLIST_RETRY_BUDGET=%d", ErrNegativeBudget, envPrefix, c.ListRetryBudget)
	}

	if c.TillerPort < envMinTillerPort || c.TillerPort > envMaxTillerPort {
		return fmt.Errorf("%w: %sTILLER_PORT=%s", ErrOutOfRange, envPrefix, strconv.Itoa(c.TillerPort))
	}

	return nil
}
