package goRevoke

import (
	"sync"
	"testing"
)

func TestMetricsIncAndValue(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricSignIssued)
	m.Inc(MetricSignIssued)
	m.Inc(MetricVerifyRevoked)

	if got := m.Value(MetricSignIssued); got != 2 {
		t.Fatalf("expected 2 sign counts, got %d", got)
	}
	if got := m.Value(MetricVerifyRevoked); got != 1 {
		t.Fatalf("expected 1 revoked count, got %d", got)
	}
	if got := m.Value(MetricVerifyValid); got != 0 {
		t.Fatalf("expected untouched counter at 0, got %d", got)
	}
}

func TestMetricsDisabledIgnoresInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{})

	m.Inc(MetricSignIssued)

	if got := m.Value(MetricSignIssued); got != 0 {
		t.Fatalf("disabled metrics must not count, got %d", got)
	}
	if m.Enabled() {
		t.Fatalf("expected disabled instance")
	}
}

func TestMetricsOutOfRangeID(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(metricIDCount + 10)

	if got := m.Value(metricIDCount + 10); got != 0 {
		t.Fatalf("out-of-range id must read zero, got %d", got)
	}
}

func TestMetricsSnapshotCoversEveryCounter(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(MetricInvalidation)

	snap := m.Snapshot()
	if len(snap.Counters) != int(metricIDCount) {
		t.Fatalf("snapshot missing counters: %d of %d", len(snap.Counters), metricIDCount)
	}
	if snap.Counters[MetricInvalidation] != 1 {
		t.Fatalf("snapshot lost a count: %v", snap.Counters)
	}
}

func TestMetricsConcurrentInc(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				m.Inc(MetricVerifyValid)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(MetricVerifyValid); got != workers*perWorker {
		t.Fatalf("lost increments: got %d, want %d", got, workers*perWorker)
	}
}
