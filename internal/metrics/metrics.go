// Package metrics holds the Prometheus collectors of the wikikit service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics provides observability for page rendering and the utility API.
type Metrics struct {
	Validations    *prometheus.CounterVec
	PageRenders    *prometheus.CounterVec
	RenderDuration prometheus.Histogram
	TOCToggles     *prometheus.CounterVec
	Notices        prometheus.Counter
	PageCacheSize  prometheus.Gauge
	PageEvictions  prometheus.Counter
	RateLimited    *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers all collectors with reg. Use prometheus.NewRegistry in tests;
// registering twice with the same registry panics.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wikikit_validations_total",
			Help: "Address validations by kind and result",
		}, []string{"kind", "result"}),
		PageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wikikit_page_renders_total",
			Help: "Page render requests by outcome",
		}, []string{"outcome"}),
		RenderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "wikikit_page_render_duration_seconds",
			Help:    "Time spent loading and post-processing a page",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		TOCToggles: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wikikit_toc_toggles_total",
			Help: "Table of contents toggles by resulting state",
		}, []string{"state"}),
		Notices: factory.NewCounter(prometheus.CounterOpts{
			Name: "wikikit_notices_total",
			Help: "Notices queued for display",
		}),
		PageCacheSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wikikit_page_cache_entries",
			Help: "Parsed page sources held in the cache",
		}),
		PageEvictions: factory.NewCounter(prometheus.CounterOpts{
			Name: "wikikit_page_cache_evictions_total",
			Help: "Page sources evicted from the cache",
		}),
		RateLimited: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wikikit_rate_limited_total",
			Help: "Requests refused by the rate limiter by path",
		}, []string{"path"}),
		gatherer: reg,
	}
}

// ObserveValidation counts one validation. result is "valid", "invalid" or
// "indeterminate".
func (m *Metrics) ObserveValidation(kind, result string) {
	m.Validations.WithLabelValues(kind, result).Inc()
}

// ObserveRender records a page render that started at start.
func (m *Metrics) ObserveRender(outcome string, start time.Time) {
	m.PageRenders.WithLabelValues(outcome).Inc()
	m.RenderDuration.Observe(time.Since(start).Seconds())
}

// IncrementTOCToggle counts a toggle that left the table of contents in state.
func (m *Metrics) IncrementTOCToggle(state string) {
	m.TOCToggles.WithLabelValues(state).Inc()
}

// IncrementNotices counts a queued notice.
func (m *Metrics) IncrementNotices() {
	m.Notices.Inc()
}

// SetPageCacheSize records the number of cached page sources.
func (m *Metrics) SetPageCacheSize(n int) {
	m.PageCacheSize.Set(float64(n))
}

// IncrementPageEvictions counts a page source pushed out of the cache.
func (m *Metrics) IncrementPageEvictions() {
	m.PageEvictions.Inc()
}

// IncrementRateLimited counts a request to path refused by the rate limiter.
func (m *Metrics) IncrementRateLimited(path string) {
	m.RateLimited.WithLabelValues(path).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
