package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var faultsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "tillerguard_faults_total",
		Help: "Total number of classified Tiller client failures by kind and fatality.",
	},
	[]string{"kind", "fatal"},
)

var listingRestartsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounter(
	prometheus.CounterOpts{
		Name: "tillerguard_listing_restarts_total",
		Help: "Total number of release listings restarted from page one after drift " +
			"(releases created or deleted while paging).",
	},
)

var podDiscoveryDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "tillerguard_pod_discovery_duration_seconds",
		Help:    "Time spent locating a running Tiller pod.",
		Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
	},
	[]string{"outcome"},
)

var releasesByStatus = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "tillerguard_releases",
		Help: "Number of releases per status observed by the last successful audit.",
	},
	[]string{"status"},
)

var lastAuditSuccess = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "tillerguard_last_audit_success_timestamp_seconds",
		Help: "Unix time of the last successful release audit.",
	},
)

var tillerPodMemoryBytes = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "tillerguard_tiller_pod_memory_bytes",
		Help: "Memory working set of the Tiller pod as reported by the metrics API.",
	},
	[]string{"namespace", "pod"},
)

var pingDuration = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "tillerguard_ping_duration_seconds",
		Help:    "Latency of session component health probes.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	},
	[]string{"component", "result"},
)

// RecordFault increments the fault counter for a taxonomy kind.
func RecordFault(kind string, fatal bool) {
	fatalLabel := "false"
	if fatal {
		fatalLabel = "true"
	}

	faultsTotal.WithLabelValues(kind, fatalLabel).Inc()
}

// RecordListingRestart increments the counter when a listing restarts after drift.
func RecordListingRestart() {
	listingRestartsTotal.Inc()
}

// ObservePodDiscovery records how long discovery took and how it ended.
func ObservePodDiscovery(elapsed time.Duration, outcome string) {
	podDiscoveryDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// SetReleasesByStatus replaces the per-status release gauges.
func SetReleasesByStatus(counts map[string]int) {
	releasesByStatus.Reset()

	for status, count := range counts {
		releasesByStatus.WithLabelValues(status).Set(float64(count))
	}
}

// RecordAuditSuccess stores the completion time of a successful audit.
func RecordAuditSuccess(at time.Time) {
	lastAuditSuccess.Set(float64(at.Unix()))
}

// SetTillerPodMemory records the Tiller pod memory usage in bytes.
func SetTillerPodMemory(namespace, pod string, bytes int64) {
	tillerPodMemoryBytes.WithLabelValues(namespace, pod).Set(float64(bytes))
}

// ObservePing records the latency and result of one component probe.
func ObservePing(component string, elapsed time.Duration, ok bool) {
	result := "error"
	if ok {
		result = "ok"
	}

	pingDuration.WithLabelValues(component, result).Observe(elapsed.Seconds())
}
