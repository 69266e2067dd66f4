package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups all Prometheus instruments used by the service.
type Metrics struct {
	Requests       *prometheus.CounterVec
	Blocked        prometheus.Counter
	Matches        *prometheus.CounterVec
	RiskScore      prometheus.Histogram
	ExternalErrors prometheus.Counter
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Requests: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Pipeline requests by flow and outcome.",
		}, []string{"flow", "outcome"}),
		Blocked: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocked_total",
			Help:      "Guard requests refused by the block policy.",
		}),
		Matches: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Reconciled matches by category and source.",
		}, []string{"category", "source"}),
		RiskScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "risk_score",
			Help:      "Risk score distribution for guard requests.",
			Buckets:   []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100},
		}),
		ExternalErrors: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "external_detector_errors_total",
			Help:      "Failed calls to the external semantic detector.",
		}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
