package goRevoke

import "time"

// Scope defines a public type used by goRevoke APIs.
//
// Scope instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Scope string

const (
	// ScopeToken is an exported constant or variable used by the revocation engine.
	ScopeToken Scope = "token"
	// ScopeUser is an exported constant or variable used by the revocation engine.
	ScopeUser Scope = "user"
	// ScopeClient is an exported constant or variable used by the revocation engine.
	ScopeClient Scope = "client"
	// ScopeUserClient is an exported constant or variable used by the revocation engine.
	ScopeUserClient Scope = "user-client"
)

// SignOptions controls a single [Engine.Sign] call.
//
// User and Client are optional identifiers stamped into the token envelope;
// absent identifiers leave the token anonymous for the corresponding scope.
// Precise forces a sub-second issuance instant even for structured payloads,
// removing the whole-second ambiguity when a sign and an invalidation land
// in the same second. TTL overrides the configured token lifetime for this
// call; zero keeps the configured value.
type SignOptions struct {
	User    any
	Client  any
	Precise bool
	TTL     time.Duration
}
