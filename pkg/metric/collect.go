package metric

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Collector holds the service metrics on its own registry so that several
// servers (and tests) can coexist in one process.
type Collector struct {
	registry   *prometheus.Registry
	sweeps     *prometheus.CounterVec
	samples    *prometheus.HistogramVec
	rejections *prometheus.CounterVec
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		sweeps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "analyzer_sweeps_total",
			Help: "Number of completed timing sweeps.",
		}, []string{"algorithm", "outcome"}),
		samples: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "analyzer_sample_seconds",
			Help:    "Wall-clock time of a single algorithm run.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"algorithm"}),
		rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "analyzer_rejections_total",
			Help: "Number of rejected analysis requests.",
		}, []string{"reason"}),
	}
}

func (c *Collector) ObserveSample(algorithm string, _ int, elapsed time.Duration) {
	c.samples.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

func (c *Collector) ObserveSweep(algorithm, outcome string) {
	c.sweeps.WithLabelValues(algorithm, outcome).Inc()
}

func (c *Collector) ObserveRejection(reason string) {
	c.rejections.WithLabelValues(reason).Inc()
}

func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
