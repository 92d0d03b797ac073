package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew_RegistersOnOwnRegistry(t *testing.T) {
	// two instances must not collide
	m1 := New()
	m2 := New()

	m1.ParseFailures.Inc()

	if got := testutil.ToFloat64(m1.ParseFailures); got != 1 {
		t.Errorf("expected parse failures 1, got %v", got)
	}
	if got := testutil.ToFloat64(m2.ParseFailures); got != 0 {
		t.Errorf("expected independent counter at 0, got %v", got)
	}
}

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.RecordsApplied.WithLabelValues("deposit").Inc()
	m.RecordsApplied.WithLabelValues("deposit").Inc()
	m.RecordsRejected.WithLabelValues("insufficient_funds").Inc()
	m.AccountsWritten.Set(3)

	if got := testutil.ToFloat64(m.RecordsApplied.WithLabelValues("deposit")); got != 2 {
		t.Errorf("expected 2 applied deposits, got %v", got)
	}
	if got := testutil.ToFloat64(m.RecordsRejected.WithLabelValues("insufficient_funds")); got != 1 {
		t.Errorf("expected 1 rejection, got %v", got)
	}
	if got := testutil.ToFloat64(m.AccountsWritten); got != 3 {
		t.Errorf("expected 3 accounts, got %v", got)
	}
}
