package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/uafields/pkg/useragent"
)

// Unclassified is the label value used for a field no rule recognised.
const Unclassified = "none"

// Config holds the metric options.
type Config struct {
	Namespace string `env:"METRICS_NAMESPACE" envDefault:"uafields"`
	Runtime   bool   `env:"METRICS_RUNTIME" envDefault:"true"` // Go runtime and process collectors
}

// Collector counts classified clients on its own registry.
type Collector struct {
	registry        *prometheus.Registry
	classifications *prometheus.CounterVec
	versions        *prometheus.HistogramVec
}

// New creates a Collector and registers its metrics on a fresh registry.
// Runtime and process collectors are added when cfg.Runtime is set.
func New(cfg Config) *Collector {
	if cfg.Namespace == "" {
		cfg.Namespace = "uafields"
	}

	c := &Collector{
		registry: prometheus.NewRegistry(),
		classifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "classifications_total",
				Help:      "Classified user agents by browser, OS and device.",
			},
			[]string{"browser", "os", "device"},
		),
		versions: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "browser_version",
				Help:      "Distribution of extracted browser versions.",
				Buckets:   []float64{1, 5, 10, 15, 20, 40, 60, 80, 100, 120, 140},
			},
			[]string{"browser"},
		),
	}

	c.registry.MustRegister(c.classifications, c.versions)
	if cfg.Runtime {
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return c
}

// Record counts one classification.
func (c *Collector) Record(res useragent.Result) {
	browser := labelOrNone(res.Browser)
	c.classifications.WithLabelValues(browser, labelOrNone(res.OS), labelOrNone(res.Device)).Inc()
	if v, ok := res.Version(); ok {
		c.versions.WithLabelValues(browser).Observe(v)
	}
}

// Middleware records the client of every request. It reuses the result
// stored by useragent.Middleware and classifies the request itself otherwise.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		res, ok := useragent.FromContext(r.Context())
		if !ok {
			res = useragent.Classify(r.UserAgent())
		}
		c.Record(res)
		next.ServeHTTP(w, r)
	})
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}

// Registry exposes the underlying registry for additional collectors.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

func labelOrNone(v string) string {
	if v == "" {
		return Unclassified
	}
	return v
}
