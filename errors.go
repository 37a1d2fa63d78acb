package goRevoke

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrTokenRevoked is the sentinel every [RevocationError] unwraps to.
	ErrTokenRevoked = errors.New("token revoked")
	// ErrEngineNotReady is an exported constant or variable used by the revocation engine.
	ErrEngineNotReady = errors.New("engine not initialized")
	// ErrEmptyToken is an exported constant or variable used by the revocation engine.
	ErrEmptyToken = errors.New("empty token")
	// ErrSecretRequired is an exported constant or variable used by the revocation engine.
	ErrSecretRequired = errors.New("signing secret required")
	// ErrStoreRequired is an exported constant or variable used by the revocation engine.
	ErrStoreRequired = errors.New("redis client or store required")
)

// RevocationError is the typed verdict returned by [Engine.Verify] when an
// effective invalidation matches the token. It is always distinguishable
// from signature errors: errors.Is(err, ErrTokenRevoked) holds only for
// revocation verdicts.
type RevocationError struct {
	// Scope is the matched invalidation granularity.
	Scope Scope
	// InvalidatedAt is the invalidation instant that caused the decision,
	// in fractional epoch seconds.
	InvalidatedAt float64
}

func (e *RevocationError) Error() string {
	return fmt.Sprintf("token revoked: %s scope invalidated at %.3f", e.Scope, e.InvalidatedAt)
}

// Unwrap lets errors.Is match [ErrTokenRevoked].
func (e *RevocationError) Unwrap() error {
	return ErrTokenRevoked
}

// Time returns the invalidation instant as a wall-clock time at millisecond
// precision.
func (e *RevocationError) Time() time.Time {
	return time.UnixMilli(int64(e.InvalidatedAt * 1000))
}
