package goRevoke

import (
	"context"

	"github.com/MrEthical07/goRevoke/identity"
)

// Invalidate records the current instant for the identity, revoking every
// matching token issued before it. Re-invalidating the same identity
// refreshes the instant (last-write-wins). Write failures propagate: a
// revocation that silently fails to persist is a security-relevant failure.
func (e *Engine) Invalidate(ctx context.Context, id identity.Identity) error {
	if e == nil || e.registry == nil {
		return ErrEngineNotReady
	}

	if err := e.registry.Invalidate(ctx, id); err != nil {
		e.metricInc(MetricInvalidationFailure)
		e.auditEmit(ctx, AuditEvent{
			EventType: EventInvalidate,
			Scope:     id.Kind().String(),
			Success:   false,
			Error:     err.Error(),
		})
		return err
	}

	e.metricInc(MetricInvalidation)
	e.auditEmit(ctx, AuditEvent{
		EventType: EventInvalidate,
		Scope:     id.Kind().String(),
		Success:   true,
	})

	return nil
}

// Revert undoes an invalidation. It reports true when a record was removed
// and false when the identity had no record; reverting a never-invalidated
// identity is a no-op. Store failures propagate like invalidation failures.
func (e *Engine) Revert(ctx context.Context, id identity.Identity) (bool, error) {
	if e == nil || e.registry == nil {
		return false, ErrEngineNotReady
	}

	reverted, err := e.registry.Revert(ctx, id)
	if err != nil {
		e.auditEmit(ctx, AuditEvent{
			EventType: EventRevert,
			Scope:     id.Kind().String(),
			Success:   false,
			Error:     err.Error(),
		})
		return false, err
	}

	if reverted {
		e.metricInc(MetricRevertHit)
	} else {
		e.metricInc(MetricRevertMiss)
	}
	e.auditEmit(ctx, AuditEvent{
		EventType: EventRevert,
		Scope:     id.Kind().String(),
		Success:   true,
		Metadata:  map[string]string{"reverted": boolString(reverted)},
	})

	return reverted, nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
