package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_CountsObservations(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSignupAttempt()
	c.RecordSignupAttempt()
	c.RecordSignupFailure("EMAIL_TAKEN")
	c.RecordLoginAttempt()
	c.RecordLoginFailure()
	c.RecordEnrollment()
	c.RecordProviderLatency(50 * time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(c.signupAttempts))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.signupFailures.WithLabelValues("EMAIL_TAKEN")))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.loginAttempts))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.loginFailures))
	assert.Equal(t, float64(1), testutil.ToFloat64(c.enrollments))
}

func TestHandler_ServesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordEnrollment()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler(reg).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "campus_enrollments_recorded_total 1")
}
