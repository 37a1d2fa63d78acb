package goRevoke

import (
	"context"

	"github.com/MrEthical07/goRevoke/envelope"
	"github.com/MrEthical07/goRevoke/identity"
	"github.com/MrEthical07/goRevoke/jwt"
	"github.com/MrEthical07/goRevoke/registry"
)

// Verify validates the token signature first and then renders the
// revocation verdict. On success it returns the original payload: the claim
// map for structured payloads, the unwrapped scalar for wrapped ones.
//
// The decision checks the most specific applicable scope first. A recorded
// invalidation takes effect only when its instant is strictly after the
// token's issuance instant; an equal instant leaves the token valid.
// Signature errors and revocation errors propagate unchanged; store lookup
// failures fail open and are reported to the audit sink.
func (e *Engine) Verify(ctx context.Context, token string, secret []byte) (any, error) {
	if e == nil || e.jwtManager == nil {
		return nil, ErrEngineNotReady
	}
	if token == "" {
		return nil, ErrEmptyToken
	}

	tok, err := e.jwtManager.Verify(token, secret)
	if err != nil {
		e.metricInc(MetricVerifySignatureFailure)
		return nil, err
	}

	meta, ok := envelope.Extract(tok.Header)
	if !ok {
		return e.decideForeign(ctx, tok)
	}

	return e.decide(ctx, tok, meta)
}

// decideForeign handles tokens that carry no envelope, i.e. tokens issued
// outside goRevoke. Only token-scope invalidation can affect them. With no
// comparable issuance instant at all, the presence of a record is enough to
// revoke.
func (e *Engine) decideForeign(ctx context.Context, tok *jwt.Token) (any, error) {
	instant, found := e.lookup(ctx, identity.Token(tok.Raw))
	if found {
		issued, hasIssued := nativeIssuedAt(tok.Claims)
		if !hasIssued || instant > issued {
			return nil, e.revoked(ctx, ScopeToken, instant)
		}
	}

	e.metricInc(MetricVerifyValid)
	return map[string]any(tok.Claims), nil
}

func (e *Engine) decide(ctx context.Context, tok *jwt.Token, meta envelope.Metadata) (any, error) {
	payload := payloadFromToken(tok, meta)

	issued, usable := issuanceInstant(meta, tok.Claims)
	if !usable {
		// No comparable instant, no scoped decision. The token passes and
		// deliberately does not fall through to a token-scope check.
		e.metricInc(MetricVerifyValid)
		return payload, nil
	}

	var checks []identity.Identity
	switch {
	case meta.User != nil && meta.Client != nil:
		checks = []identity.Identity{
			identity.UserClient(meta.User, meta.Client),
			identity.User(meta.User),
			identity.Client(meta.Client),
		}
	case meta.User != nil:
		checks = []identity.Identity{identity.User(meta.User)}
	case meta.Client != nil:
		checks = []identity.Identity{identity.Client(meta.Client)}
	default:
		checks = []identity.Identity{identity.Token(tok.Raw)}
	}

	for _, id := range checks {
		instant, found := e.lookup(ctx, id)
		if found && instant > issued {
			return nil, e.revoked(ctx, Scope(id.Kind().String()), instant)
		}
	}

	e.metricInc(MetricVerifyValid)
	return payload, nil
}

// lookup consults the registry and applies the fail-open policy: a
// transient store failure must not deny every holder of a valid token, so
// it reads as "no record" while the failure is surfaced to operators.
func (e *Engine) lookup(ctx context.Context, id identity.Identity) (float64, bool) {
	instant, found, err := e.registry.Lookup(ctx, id)
	if err != nil {
		e.metricInc(MetricStoreLookupFailure)
		e.auditEmit(ctx, AuditEvent{
			EventType: EventStoreLookupFailed,
			Scope:     id.Kind().String(),
			Success:   false,
			Error:     err.Error(),
		})
		return 0, false
	}
	return instant, found
}

func (e *Engine) revoked(ctx context.Context, scope Scope, instant float64) error {
	e.metricInc(MetricVerifyRevoked)
	e.auditEmit(ctx, AuditEvent{
		EventType: EventVerifyRevoked,
		Scope:     string(scope),
		Success:   false,
		Error:     "token revoked",
	})
	return &RevocationError{Scope: scope, InvalidatedAt: instant}
}

// issuanceInstant prefers the precise envelope stamp and falls back to the
// signing service's issued-at claim. Both derive from the same wall clock,
// which keeps comparisons against invalidation instants meaningful.
func issuanceInstant(meta envelope.Metadata, claims jwt.Claims) (float64, bool) {
	if meta.IssuedAt > 0 {
		return meta.IssuedAt, true
	}
	return nativeIssuedAt(claims)
}

func nativeIssuedAt(claims jwt.Claims) (float64, bool) {
	date, err := claims.GetIssuedAt()
	if err != nil || date == nil {
		return 0, false
	}
	return registry.InstantSeconds(date.Time), true
}

func payloadFromToken(tok *jwt.Token, meta envelope.Metadata) any {
	if meta.Wrapped {
		if v, ok := tok.Claims[wrappedClaim]; ok {
			return v
		}
	}
	return map[string]any(tok.Claims)
}
