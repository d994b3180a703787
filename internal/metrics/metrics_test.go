package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetrics(t *testing.T) *Metrics {
	t.Helper()

	reg := prometheus.NewRegistry()
	return New(reg, reg)
}

func TestObserveModeration(t *testing.T) {
	t.Parallel()

	m := newMetrics(t)

	m.ObserveModeration("approve", nil)
	m.ObserveModeration("approve", nil)
	m.ObserveModeration("delete", errors.New("forbidden"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.moderation.WithLabelValues("approve", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.moderation.WithLabelValues("delete", "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.moderation.WithLabelValues("reject", "ok")))
}

func TestObserveBackendAndHTTP(t *testing.T) {
	t.Parallel()

	m := newMetrics(t)

	m.ObserveBackend("storage.supabase.ListEvents", nil, 20*time.Millisecond)
	m.ObserveHTTP("/events", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	m.ObserveHTTP("/events", http.MethodGet, http.StatusOK, 5*time.Millisecond)
	m.SetSessions(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.backendCalls.WithLabelValues("storage.supabase.ListEvents", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("/events", "GET", "200")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.sessions))
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := newMetrics(t)
	m.ObserveModeration("reject", nil)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `events_board_moderation_actions_total{action="reject",result="ok"} 1`)
}
