package kit

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.Observe("userLogin", OutcomeOK, time.Millisecond)
	m.Observe("userLogin", OutcomeOK, time.Millisecond)
	m.Observe("userLogin", "UserNotFound", time.Millisecond)
	m.SetSessions(2)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Queries.WithLabelValues("userLogin", OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Queries.WithLabelValues("userLogin", "UserNotFound")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Sessions))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.Observe("clearCart", OutcomeOK, time.Millisecond)
		m.SetSessions(1)
	})
}
