package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/3-lines-studio/folio/internal/core"
)

const Namespace = "folio"

// Collector holds the Prometheus metrics for page serving and export.
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Renders        *prometheus.CounterVec
	RenderDuration *prometheus.HistogramVec

	ExportedFiles *prometheus.CounterVec
}

// NewCollector creates a collector with its own registry, so collectors can
// be created freely in tests.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		registry: registry,
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "page_renders_total",
				Help:      "Total number of server-rendered pages",
			},
			[]string{"kind", "status"},
		),
		RenderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "page_render_duration_seconds",
				Help:      "Page render duration in seconds",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"kind"},
		),
		ExportedFiles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "export_files_total",
				Help:      "Total number of files written by static export",
			},
			[]string{"kind"},
		),
	}

	registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Renders,
		c.RenderDuration,
		c.ExportedFiles,
	)

	return c
}

// ObserveRender records one page render.
func (c *Collector) ObserveRender(kind core.RouteKind, status int, elapsed time.Duration) {
	c.Renders.WithLabelValues(kind.String(), strconv.Itoa(status)).Inc()
	c.RenderDuration.WithLabelValues(kind.String()).Observe(elapsed.Seconds())
}

// ObserveHTTP records one HTTP request. route should be a pattern, not the
// raw path, to keep label cardinality bounded.
func (c *Collector) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveExportedFile counts one file written by an export pass.
func (c *Collector) ObserveExportedFile(kind string) {
	c.ExportedFiles.WithLabelValues(kind).Inc()
}

// Handler exposes the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
