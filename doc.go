// Package goRevoke augments JWT authentication with revocation: previously
// issued tokens can be invalidated by token, by user, by client, or by
// user+client pair, without a central allowlist.
//
// The package is designed for concurrent server workloads: Engine methods
// are safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goRevoke is the public surface. It exposes [Engine], [Builder], [Config],
// the typed [RevocationError], and the audit/metrics value types. Scope
// selection lives in the identity package; the signing-service adapter,
// envelope codec, and invalidation registry live in their own packages and
// hold no policy.
//
// # Decision model
//
// Signing stamps identity metadata and, in precise mode, a sub-second
// issuance instant into the token envelope. Verification validates the
// signature first, then compares the token's issuance instant against the
// most specific applicable invalidation instant. A revocation takes effect
// only when its instant is strictly after issuance; equal instants leave
// the token valid, which is exactly the race precise mode exists to remove.
//
// # Availability contract
//
// Store failures during verification lookups fail open: the token is
// treated as having no applicable invalidation and the failure is reported
// to the audit sink and metrics. Store failures on the invalidate and
// revert write paths always propagate. Callers that need fail-closed
// verification should consult the registry package directly.
package goRevoke
