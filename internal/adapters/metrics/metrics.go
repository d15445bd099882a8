package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the portal's Prometheus collectors.
// It satisfies guard.Recorder and services.TransitionRecorder.
type Metrics struct {
	GuardDecisions *prometheus.CounterVec
	Transitions    *prometheus.CounterVec
	RateRefreshes  *prometheus.CounterVec
	Credentials    *prometheus.CounterVec
}

// New registers the collectors with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		GuardDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "goldloan_guard_decisions_total",
			Help: "Route guard decisions by guard and outcome",
		}, []string{"guard", "outcome"}),
		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "goldloan_transitions_total",
			Help: "Loan lifecycle transitions by action and outcome",
		}, []string{"action", "outcome"}),
		RateRefreshes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "goldloan_gold_rate_refreshes_total",
			Help: "Scheduled gold rate refreshes by result",
		}, []string{"result"}),
		Credentials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "goldloan_credential_events_total",
			Help: "Session credential holder updates",
		}, []string{"event"}),
	}
}

// RegisterSessionGauge exposes the live session count read from count
func RegisterSessionGauge(reg prometheus.Registerer, count func() int) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	promauto.With(reg).NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goldloan_live_sessions",
		Help: "Sessions currently held in memory",
	}, func() float64 { return float64(count()) })
}

// GuardDecision records one guard decision
func (m *Metrics) GuardDecision(guard, outcome string) {
	m.GuardDecisions.WithLabelValues(guard, outcome).Inc()
}

// Transition records one lifecycle transition attempt
func (m *Metrics) Transition(action, outcome string) {
	m.Transitions.WithLabelValues(action, outcome).Inc()
}

// RateRefresh records one gold rate refresh
func (m *Metrics) RateRefresh(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.RateRefreshes.WithLabelValues(result).Inc()
}

// CredentialChanged records a session credential being set or cleared
func (m *Metrics) CredentialChanged(_, credential string) {
	event := "set"
	if credential == "" {
		event = "cleared"
	}
	m.Credentials.WithLabelValues(event).Inc()
}
