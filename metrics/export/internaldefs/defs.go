package internaldefs

import (
	goRevoke "github.com/MrEthical07/goRevoke"
)

// CounterDef binds a core metric ID to its exported name and help text.
type CounterDef struct {
	ID   goRevoke.MetricID
	Name string
	Help string
}

// CounterDefs is the single source of truth for exported counter names,
// shared by the Prometheus and OTel exporters.
var CounterDefs = []CounterDef{
	{ID: goRevoke.MetricSignIssued, Name: "gorevoke_sign_issued_total", Help: "Tokens issued through Sign."},
	{ID: goRevoke.MetricVerifyValid, Name: "gorevoke_verify_valid_total", Help: "Verifications that returned the payload."},
	{ID: goRevoke.MetricVerifyRevoked, Name: "gorevoke_verify_revoked_total", Help: "Verifications denied by an effective invalidation."},
	{ID: goRevoke.MetricVerifySignatureFailure, Name: "gorevoke_verify_signature_failure_total", Help: "Verifications rejected by the signing service."},
	{ID: goRevoke.MetricInvalidation, Name: "gorevoke_invalidation_total", Help: "Persisted invalidations."},
	{ID: goRevoke.MetricInvalidationFailure, Name: "gorevoke_invalidation_failure_total", Help: "Invalidation writes that failed."},
	{ID: goRevoke.MetricRevertHit, Name: "gorevoke_revert_hit_total", Help: "Reverts that removed a record."},
	{ID: goRevoke.MetricRevertMiss, Name: "gorevoke_revert_miss_total", Help: "Reverts that found nothing to remove."},
	{ID: goRevoke.MetricStoreLookupFailure, Name: "gorevoke_store_lookup_failure_total", Help: "Fail-open store lookups during verification."},
}

// AuditDroppedName is the exported counter for audit dispatcher drops.
const AuditDroppedName = "gorevoke_audit_dropped_total"

// AuditDroppedHelp describes the audit drop counter.
const AuditDroppedHelp = "Dropped audit events due to dispatcher backpressure."
