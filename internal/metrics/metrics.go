// Package metrics exposes engine counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the engine's collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	AttemptsStarted   prometheus.Counter
	AttemptsClosed    *prometheus.CounterVec
	XPAwarded         prometheus.Counter
	XPDeducted        prometheus.Counter
	XPUnfulfilled     prometheus.Counter
	AnalyticsDuration *prometheus.HistogramVec
}

// New registers the engine collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		AttemptsStarted: f.NewCounter(prometheus.CounterOpts{
			Name: "quiz_attempts_started_total",
			Help: "Quiz attempts opened.",
		}),
		AttemptsClosed: f.NewCounterVec(prometheus.CounterOpts{
			Name: "quiz_attempts_closed_total",
			Help: "Quiz attempts scored and closed, by grade.",
		}, []string{"grade"}),
		XPAwarded: f.NewCounter(prometheus.CounterOpts{
			Name: "quiz_xp_awarded_total",
			Help: "XP granted by closed attempts.",
		}),
		XPDeducted: f.NewCounter(prometheus.CounterOpts{
			Name: "quiz_xp_deducted_total",
			Help: "XP removed by ledger deductions.",
		}),
		XPUnfulfilled: f.NewCounter(prometheus.CounterOpts{
			Name: "quiz_xp_deduction_unfulfilled_total",
			Help: "Requested XP deductions the learner's balance could not cover.",
		}),
		AnalyticsDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "quiz_analytics_duration_seconds",
			Help:    "Time spent computing dashboard analytics.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

func (m *Metrics) AttemptStarted() {
	if m == nil {
		return
	}
	m.AttemptsStarted.Inc()
}

func (m *Metrics) AttemptClosed(grade string, xp int) {
	if m == nil {
		return
	}
	m.AttemptsClosed.WithLabelValues(grade).Inc()
	m.XPAwarded.Add(float64(xp))
}

func (m *Metrics) Deduction(deducted, unfulfilled int) {
	if m == nil {
		return
	}
	m.XPDeducted.Add(float64(deducted))
	m.XPUnfulfilled.Add(float64(unfulfilled))
}

// Since records the time elapsed since start under op.
func (m *Metrics) Since(op string, start time.Time) {
	if m == nil {
		return
	}
	m.AnalyticsDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
