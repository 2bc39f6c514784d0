package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the grading counters exported on /metrics. A nil *Metrics
// records nothing.
type Metrics struct {
	submissions   *prometheus.CounterVec
	assists       *prometheus.CounterVec
	disputes      prometheus.Counter
	resets        prometheus.Counter
	gradeDuration prometheus.Histogram
}

// NewMetrics creates the grading metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mathdrill_submissions_total",
				Help: "Graded submissions by resulting status",
			},
			[]string{"status"},
		),
		assists: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mathdrill_assists_total",
				Help: "Hints and walkthrough actions taken",
			},
			[]string{"kind"},
		),
		disputes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mathdrill_disputes_total",
			Help: "Answer parts accepted by dispute",
		}),
		resets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mathdrill_resets_total",
			Help: "Problem cycles restarted or cleared",
		}),
		gradeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mathdrill_grade_duration_seconds",
			Help:    "Time spent grading one submission",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		}),
	}
	reg.MustRegister(m.submissions, m.assists, m.disputes, m.resets, m.gradeDuration)
	return m
}

func (m *Metrics) submitted(status string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(status).Inc()
}

func (m *Metrics) assisted(kind string) {
	if m == nil {
		return
	}
	m.assists.WithLabelValues(kind).Inc()
}

func (m *Metrics) disputed() {
	if m == nil {
		return
	}
	m.disputes.Inc()
}

func (m *Metrics) reset(n int) {
	if m == nil {
		return
	}
	m.resets.Add(float64(n))
}

func (m *Metrics) graded(since time.Time) {
	if m == nil {
		return
	}
	m.gradeDuration.Observe(time.Since(since).Seconds())
}
