package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestJudgeMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewJudgeMetrics(reg)

	m.AddStatusQueries(3)
	m.AddTimedOutUnits(2)
	m.ObserveRound("ACCEPTED", 1.2)
	m.ObserveRound("FAILED", 0.4)

	if got := testutil.ToFloat64(m.statusQueries); got != 3 {
		t.Fatalf("status queries = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.timedOutUnits); got != 2 {
		t.Fatalf("timed out units = %v, want 2", got)
	}
	if got := testutil.CollectAndCount(m.rounds); got != 2 {
		t.Fatalf("round series = %d, want 2", got)
	}
}
