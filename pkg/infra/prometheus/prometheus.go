package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(prometheus.Labels{"service": "trustpost"}, registry)

var (
	// Latency buckets in milliseconds.
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000,
	}

	ModerationDecisions = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustpost_moderation_decisions_total",
			Help: "Text moderation decisions by source and decision",
		},
		[]string{"content_type", "source", "decision"},
	)

	ModerationLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustpost_moderation_latency_ms",
			Help:    "Text moderation latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"provider", "source"},
	)

	ModerationTokens = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustpost_moderation_tokens_total",
			Help: "Tokens consumed by the text classifier",
		},
		[]string{"provider", "model", "kind"},
	)

	ModerationCost = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustpost_moderation_cost_usd_total",
			Help: "Estimated text classifier spend in USD",
		},
		[]string{"provider", "model"},
	)

	ProviderFallbacks = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustpost_provider_fallbacks_total",
			Help: "Text classifier failures that fell back to rules",
		},
		[]string{"provider", "reason"},
	)

	MediaScans = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustpost_media_scans_total",
			Help: "Media safety scans by kind and outcome",
		},
		[]string{"kind", "outcome"},
	)

	ClassifierLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustpost_image_classifier_latency_ms",
			Help:    "Image classifier call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"model", "status"},
	)

	ClassifierState = promauto.With(registerer).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trustpost_image_classifier_ready",
			Help: "1 when the image classifier model is loaded",
		},
		[]string{"model"},
	)

	Compressions = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustpost_video_compressions_total",
			Help: "Video compression attempts by result",
		},
		[]string{"result"},
	)

	RateLimited = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustpost_rate_limited_total",
			Help: "Submissions refused by the rate limiter",
		},
		[]string{"action"},
	)

	Submissions = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustpost_submissions_total",
			Help: "Submission outcomes by kind and terminal state",
		},
		[]string{"kind", "state"},
	)

	SubmissionLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustpost_submission_latency_ms",
			Help:    "End-to-end submission latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"kind"},
	)

	HTTPRequests = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustpost_http_requests_total",
			Help: "HTTP requests by method, route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustpost_http_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"method", "route"},
	)

	WebsocketConnections = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "trustpost_websocket_connections",
			Help: "Open submission progress websocket connections",
		},
	)

	AuditExportErrors = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "trustpost_audit_export_errors_total",
			Help: "Audit entries that failed to export to Kafka",
		},
	)
)

var initOnce sync.Once

// Initialize registers process metrics and makes the package registry the
// default gatherer for the metrics endpoint.
func Initialize() {
	initOnce.Do(func() {
		registry.MustRegister(
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewGoCollector(),
		)
		prometheus.DefaultRegisterer = registry
		prometheus.DefaultGatherer = registry
	})
}

func Gatherer() prometheus.Gatherer {
	return registry
}
