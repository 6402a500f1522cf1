package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/wikikit/internal/metrics"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	m := metrics.New(prometheus.NewRegistry())

	m.ObserveValidation("email", "valid")
	m.ObserveValidation("email", "valid")
	m.ObserveValidation("ipv4", "invalid")
	m.ObserveRender("ok", time.Now())
	m.IncrementTOCToggle("hidden")
	m.IncrementNotices()
	m.SetPageCacheSize(3)
	m.IncrementPageEvictions()
	m.IncrementRateLimited("/notify")

	assert.InDelta(t, 2, testutil.ToFloat64(m.Validations.WithLabelValues("email", "valid")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Validations.WithLabelValues("ipv4", "invalid")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PageRenders.WithLabelValues("ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.TOCToggles.WithLabelValues("hidden")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Notices), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.PageCacheSize), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.PageEvictions), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.RateLimited.WithLabelValues("/notify")), 0)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `wikikit_validations_total{kind="email",result="valid"} 2`)
	assert.Contains(t, rec.Body.String(), "wikikit_page_render_duration_seconds_count 1")
}

func TestNew_SeparateRegistries(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		metrics.New(prometheus.NewRegistry())
		metrics.New(prometheus.NewRegistry())
	})
}
