package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ValidationFailed("tonic")
	m.ValidationFailed("tonic")
	m.ValidationFailed("mode")
	m.RequestServed("/scale", 400)
	m.FileWritten("progression")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("tonic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationFailures.WithLabelValues("mode")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Requests.WithLabelValues("/scale", "400")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FilesWritten.WithLabelValues("progression")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ValidationFailed("tonic")
		m.RequestServed("/", 200)
		m.FileWritten("scale")
	})
}

func TestIndependentRegistries(t *testing.T) {
	_, err := New()
	require.NoError(t, err)
	_, err = New()
	assert.NoError(t, err)
}

func TestHandler(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	m.ValidationFailed("extension")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(body), `notation_validation_failures_total{field="extension"} 1`)
}
