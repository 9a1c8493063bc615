package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func delta(t *testing.T, collector prometheus.Collector, observe func()) float64 {
	t.Helper()

	before := testutil.ToFloat64(collector)
	observe()
	after := testutil.ToFloat64(collector)
	return after - before
}

func TestStreamerRecords(t *testing.T) {
	m := NewStreamer()
	start := time.Now().Add(-time.Second)

	if inc := delta(t, streamerBlocksTotal.WithLabelValues("success"), func() {
		m.ObserveBlock(nil, 3, start)
	}); inc != 1 {
		t.Fatalf("expected block counter increment, got %v", inc)
	}

	if inc := delta(t, streamerBlocksTotal.WithLabelValues("error"), func() {
		m.ObserveBlock(errors.New("boom"), 0, start)
	}); inc != 1 {
		t.Fatalf("expected block error counter increment, got %v", inc)
	}

	if inc := delta(t, streamerSendsTotal.WithLabelValues("action_trace", "success"), func() {
		m.ObserveSend("action_trace", nil, start)
	}); inc != 1 {
		t.Fatalf("expected send counter increment, got %v", inc)
	}

	if inc := delta(t, streamerMissingTracesTotal, func() {
		m.ObserveMissingTrace()
	}); inc != 1 {
		t.Fatalf("expected missing trace counter increment, got %v", inc)
	}

	if inc := delta(t, streamerForksTotal, func() {
		m.ObserveFork()
	}); inc != 1 {
		t.Fatalf("expected fork counter increment, got %v", inc)
	}
}

func TestChainClientRecords(t *testing.T) {
	m := NewChainClient()
	start := time.Now().Add(-500 * time.Millisecond)

	if inc := delta(t, chainRequestsTotal.WithLabelValues("get_account", "success"), func() {
		m.Observe("get_account", nil, start)
	}); inc != 1 {
		t.Fatalf("expected request counter increment, got %v", inc)
	}

	if inc := delta(t, chainRequestsTotal.WithLabelValues("get_table_rows", "error"), func() {
		m.Observe("get_table_rows", errors.New("fail"), start)
	}); inc != 1 {
		t.Fatalf("expected request error counter increment, got %v", inc)
	}
}
