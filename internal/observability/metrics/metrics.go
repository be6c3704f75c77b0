package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "healthcompanion"

// TriageMetrics cuenta resultados del motor de triage. Métodos seguros con receiver nil.
type TriageMetrics struct {
	recommendations *prometheus.CounterVec
	assessments     *prometheus.CounterVec
	unmatched       prometheus.Counter
}

func NewTriageMetrics(reg prometheus.Registerer) *TriageMetrics {
	m := &TriageMetrics{
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "triage",
			Name:      "recommendations_total",
			Help:      "Symptom recommendation lookups, by emergency flag",
		}, []string{"emergency"}),
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "triage",
			Name:      "assessments_total",
			Help:      "Follow-up assessments classified, by urgency level",
		}, []string{"urgency"}),
		unmatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "triage",
			Name:      "unmatched_symptoms_total",
			Help:      "Symptom labels with no mapping and no emergency entry",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.recommendations, m.assessments, m.unmatched)
	return m
}

func (m *TriageMetrics) ObserveRecommendation(emergency bool) {
	if m == nil {
		return
	}
	m.recommendations.WithLabelValues(strconv.FormatBool(emergency)).Inc()
}

func (m *TriageMetrics) ObserveAssessment(urgency string) {
	if m == nil {
		return
	}
	m.assessments.WithLabelValues(urgency).Inc()
}

func (m *TriageMetrics) ObserveUnmatched(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.unmatched.Add(float64(n))
}

// HTTPMetrics mide latencia por patrón de ruta chi (no por path crudo).
type HTTPMetrics struct {
	duration *prometheus.HistogramVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.duration)
	return m
}

func (m *HTTPMetrics) ObserveRequest(route, method string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(seconds)
}
