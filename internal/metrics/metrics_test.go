package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCall_CountsByToolAndOutcome(t *testing.T) {
	m := New()

	m.ObserveCall("ask", "success", 200*time.Millisecond)
	m.ObserveCall("ask", "success", 300*time.Millisecond)
	m.ObserveCall("ask", "timeout", time.Second)
	m.ObserveCall("reason", "rate_limited", time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues("ask", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("ask", "timeout")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.calls.WithLabelValues("reason", "rate_limited")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestObserveCall_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveCall("ask", "success", time.Second) })
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.ObserveCall("search_web", "success", time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `oaimcp_tool_calls_total{outcome="success",tool="search_web"} 1`), body)
	assert.Contains(t, body, "oaimcp_tool_call_duration_seconds_bucket")
}
