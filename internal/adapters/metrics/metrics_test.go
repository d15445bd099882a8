package metrics

import (
	"errors"
	"testing"

	"goldloan-portal/internal/core/guard"
	"goldloan-portal/internal/core/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

var (
	_ guard.Recorder              = (*Metrics)(nil)
	_ services.TransitionRecorder = (*Metrics)(nil)
)

func TestMetrics_Counters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.GuardDecision("customer", "allow")
	m.GuardDecision("customer", "allow")
	m.GuardDecision("employee", "redirect_home")
	m.Transition("verify-correct", "ok")
	m.Transition("pay-fine", "rejected_locally")
	m.RateRefresh(nil)
	m.RateRefresh(errors.New("down"))
	m.CredentialChanged("sid-1", "tok")
	m.CredentialChanged("sid-1", "")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GuardDecisions.WithLabelValues("customer", "allow")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GuardDecisions.WithLabelValues("employee", "redirect_home")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("verify-correct", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Transitions.WithLabelValues("pay-fine", "rejected_locally")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateRefreshes.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateRefreshes.WithLabelValues("error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Credentials.WithLabelValues("set")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Credentials.WithLabelValues("cleared")))
}

func TestRegisterSessionGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	live := 3
	RegisterSessionGauge(reg, func() int { return live })

	n, err := testutil.GatherAndCount(reg, "goldloan_live_sessions")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}
