package observability_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/tourguide/internal/observability"
)

func scrape(t *testing.T, m *observability.Metrics) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetricsRegistryAndHandler(t *testing.T) {
	m := observability.NewMetrics()

	// record one sample of each so every family is exported
	m.ObserveHTTP("/guide/lieu/{destination}", "GET", 200, 12*time.Millisecond)
	m.ObserveGuide("fallback")
	m.ObserveRemote("timeout", 20*time.Second)

	out := scrape(t, m)
	assert.Contains(t, out, "tourguide_http_requests_total")
	assert.Contains(t, out, "tourguide_http_request_duration_seconds")
	assert.Contains(t, out, `tourguide_guides_served_total{mode="fallback"} 1`)
	assert.Contains(t, out, `tourguide_remote_calls_total{outcome="timeout"} 1`)
	assert.Contains(t, out, "tourguide_remote_call_duration_seconds")
}

func TestMetrics_InstancesAreIndependent(t *testing.T) {
	a := observability.NewMetrics()
	b := observability.NewMetrics()

	a.ObserveGuide("remote")

	assert.Contains(t, scrape(t, a), `tourguide_guides_served_total{mode="remote"} 1`)
	assert.NotContains(t, scrape(t, b), `mode="remote"`)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTP("/health", "GET", 200, time.Millisecond)
		m.ObserveGuide("fallback")
		m.ObserveRemote("ok", time.Millisecond)
	})
}
