package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"gitlab.com/dsa-judge.net/internal/core/ports/secondary"
)

var _ secondary.JudgeMetrics = (*JudgeMetrics)(nil)

const namespace = "judge"

// JudgeMetrics exports judging round counters to Prometheus.
type JudgeMetrics struct {
	rounds        *prometheus.HistogramVec
	statusQueries prometheus.Counter
	timedOutUnits prometheus.Counter
}

// NewJudgeMetrics registers the judge collectors on reg.
func NewJudgeMetrics(reg prometheus.Registerer) *JudgeMetrics {
	m := &JudgeMetrics{
		rounds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "round_duration_seconds",
			Help:      "Duration of judging rounds from submission to verdict",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"outcome"}),
		statusQueries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_queries_total",
			Help:      "Number of batch status queries sent to the remote judge",
		}),
		timedOutUnits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timed_out_units_total",
			Help:      "Number of units that never reached a terminal status",
		}),
	}
	reg.MustRegister(m.rounds, m.statusQueries, m.timedOutUnits)
	return m
}

func (m *JudgeMetrics) ObserveRound(outcome string, seconds float64) {
	m.rounds.WithLabelValues(outcome).Observe(seconds)
}

func (m *JudgeMetrics) AddStatusQueries(n int) {
	m.statusQueries.Add(float64(n))
}

func (m *JudgeMetrics) AddTimedOutUnits(n int) {
	m.timedOutUnits.Add(float64(n))
}
