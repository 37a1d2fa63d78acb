package goRevoke

import (
	"context"
	"time"

	"github.com/MrEthical07/goRevoke/jwt"
	"github.com/MrEthical07/goRevoke/registry"
)

// Engine is the revocation core: it signs tokens with identity metadata,
// records and reverts invalidations, and renders the verification verdict.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config     Config
	jwtManager *jwt.Manager
	registry   *registry.Registry
	audit      *auditDispatcher
	metrics    *Metrics
	now        func() time.Time
}

// Close drains and stops the audit dispatcher. The injected store handle is
// caller-owned and is not touched.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// Registry exposes the invalidation registry for callers that need
// fail-closed lookups or direct record management.
func (e *Engine) Registry() *registry.Registry {
	if e == nil {
		return nil
	}
	return e.registry
}

// AuditDropped reports audit events discarded under backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot copies the engine counters for exporters.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters: map[MetricID]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) auditEmit(ctx context.Context, event AuditEvent) {
	if e == nil || e.audit == nil {
		return
	}
	e.audit.Emit(ctx, event)
}
