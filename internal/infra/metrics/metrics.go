// Package metrics provides Prometheus metric collection and exposure.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is the interface the usecase layer records against.
type Recorder interface {
	RecordSignupAttempt()
	RecordSignupFailure(code string)
	RecordLoginAttempt()
	RecordLoginFailure()
	RecordProviderLatency(duration time.Duration)
	RecordEnrollment()
}

// Collector implements Recorder on a Prometheus registry.
type Collector struct {
	signupAttempts  prometheus.Counter
	signupFailures  *prometheus.CounterVec
	loginAttempts   prometheus.Counter
	loginFailures   prometheus.Counter
	providerLatency prometheus.Histogram
	enrollments     prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signupAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campus_signup_attempts_total",
			Help: "Total signup requests that reached the credential gateway.",
		}),
		signupFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "campus_signup_failures_total",
			Help: "Signup failures by business error code.",
		}, []string{"code"}),
		loginAttempts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campus_login_attempts_total",
			Help: "Total login requests that reached the credential gateway.",
		}),
		loginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campus_login_failures_total",
			Help: "Login attempts mapped to invalid credentials.",
		}),
		providerLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "campus_identity_provider_latency_seconds",
			Help:    "Latency of identity provider round trips.",
			Buckets: prometheus.DefBuckets,
		}),
		enrollments: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "campus_enrollments_recorded_total",
			Help: "Enrollment acknowledgements issued.",
		}),
	}

	reg.MustRegister(
		c.signupAttempts,
		c.signupFailures,
		c.loginAttempts,
		c.loginFailures,
		c.providerLatency,
		c.enrollments,
	)

	return c
}

// RecordSignupAttempt counts a signup reaching the gateway.
func (c *Collector) RecordSignupAttempt() {
	c.signupAttempts.Inc()
}

// RecordSignupFailure counts a signup failure under its business code.
func (c *Collector) RecordSignupFailure(code string) {
	c.signupFailures.WithLabelValues(code).Inc()
}

// RecordLoginAttempt counts a login reaching the gateway.
func (c *Collector) RecordLoginAttempt() {
	c.loginAttempts.Inc()
}

// RecordLoginFailure counts a rejected login.
func (c *Collector) RecordLoginFailure() {
	c.loginFailures.Inc()
}

// RecordProviderLatency observes one provider round trip.
func (c *Collector) RecordProviderLatency(duration time.Duration) {
	c.providerLatency.Observe(duration.Seconds())
}

// RecordEnrollment counts one acknowledgement.
func (c *Collector) RecordEnrollment() {
	c.enrollments.Inc()
}

// Handler returns the scrape handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NopRecorder discards every observation. Used when metrics are disabled
// and in tests.
type NopRecorder struct{}

func (NopRecorder) RecordSignupAttempt()                  {}
func (NopRecorder) RecordSignupFailure(string)            {}
func (NopRecorder) RecordLoginAttempt()                   {}
func (NopRecorder) RecordLoginFailure()                   {}
func (NopRecorder) RecordProviderLatency(time.Duration)   {}
func (NopRecorder) RecordEnrollment()                     {}
