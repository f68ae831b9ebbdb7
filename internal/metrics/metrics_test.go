package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/folio/internal/core"
)

func TestObserveRender(t *testing.T) {
	c := NewCollector()

	c.ObserveRender(core.RouteHome, http.StatusOK, 2*time.Millisecond)
	c.ObserveRender(core.RouteHome, http.StatusOK, 3*time.Millisecond)
	c.ObserveRender(core.RouteUnmatched, http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Renders.WithLabelValues("home", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Renders.WithLabelValues("unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(c.RenderDuration))
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector()
	b := NewCollector()

	a.ObserveExportedFile("page")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.ExportedFiles.WithLabelValues("page")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.ExportedFiles.WithLabelValues("page")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	c := NewCollector()
	c.ObserveHTTP(http.MethodGet, "/blogs/{slug}", http.StatusOK, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	text := string(body)
	assert.True(t, strings.Contains(text, `folio_http_requests_total{method="GET",route="/blogs/{slug}",status="200"} 1`), text)
	assert.Contains(t, text, "folio_http_request_duration_seconds_bucket")
}
