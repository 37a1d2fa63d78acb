package goRevoke

import "sync/atomic"

// MetricID defines a public type used by goRevoke APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricSignIssued counts tokens issued through Sign.
	MetricSignIssued MetricID = iota
	// MetricVerifyValid counts verifications that returned the payload.
	MetricVerifyValid
	// MetricVerifyRevoked counts verifications denied by an invalidation.
	MetricVerifyRevoked
	// MetricVerifySignatureFailure counts signature or claim failures.
	MetricVerifySignatureFailure
	// MetricInvalidation counts persisted invalidations.
	MetricInvalidation
	// MetricInvalidationFailure counts invalidation writes that failed.
	MetricInvalidationFailure
	// MetricRevertHit counts reverts that removed a record.
	MetricRevertHit
	// MetricRevertMiss counts reverts that found nothing to remove.
	MetricRevertMiss
	// MetricStoreLookupFailure counts fail-open store lookups.
	MetricStoreLookupFailure
	metricIDCount
)

const cacheLineSize = 64

type paddedCounter struct {
	value uint64
	_     [cacheLineSize - 8]byte
}

// Metrics holds the engine's counters. Counters are padded to avoid false
// sharing on the verification hot path.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot is a point-in-time copy of every counter.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics creates the counter set; a disabled instance ignores Inc.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled reports whether counters are being collected.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc adds one to the counter.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value reads a single counter.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot copies every counter for exporters.
func (m *Metrics) Snapshot() MetricsSnapshot {
	snapshot := MetricsSnapshot{
		Counters: make(map[MetricID]uint64, metricIDCount),
	}
	if m == nil {
		return snapshot
	}
	for id := MetricID(0); id < metricIDCount; id++ {
		snapshot.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return snapshot
}
