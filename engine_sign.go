package goRevoke

import (
	"github.com/MrEthical07/goRevoke/envelope"
	"github.com/MrEthical07/goRevoke/jwt"
	"github.com/MrEthical07/goRevoke/registry"
)

// wrappedClaim carries non-structured payloads inside the claim set. The
// envelope's wrapped marker tells Verify to unwrap it again.
const wrappedClaim = "data"

// Sign issues a token with the payload and stamps the identity metadata
// from opts into the token envelope.
//
// Structured payloads (claim maps) receive the signing service's
// whole-second iat claim unless one is already present. Any other payload
// is wrapped under a single claim and always stamped with a sub-second
// issuance instant, because no whole-second claim would exist to compare
// against. Precise mode forces the sub-second stamp for structured payloads
// too; without it, an invalidation and a re-sign inside the same wall-clock
// second cannot be ordered.
func (e *Engine) Sign(payload any, secret []byte, opts SignOptions) (string, error) {
	if e == nil || e.jwtManager == nil {
		return "", ErrEngineNotReady
	}
	if len(secret) == 0 {
		return "", ErrSecretRequired
	}

	now := e.now()
	claims, structured := claimsFromPayload(payload)

	if _, ok := claims["iat"]; !ok && structured {
		claims["iat"] = now.Unix()
	}
	if e.config.JWT.Issuer != "" {
		if _, ok := claims["iss"]; !ok {
			claims["iss"] = e.config.JWT.Issuer
		}
	}
	ttl := opts.TTL
	if ttl == 0 {
		ttl = e.config.JWT.TTL
	}
	if ttl > 0 {
		if _, ok := claims["exp"]; !ok {
			claims["exp"] = now.Add(ttl).Unix()
		}
	}

	meta := envelope.Metadata{User: opts.User, Client: opts.Client}
	if !structured {
		meta.Wrapped = true
	}
	if opts.Precise || !structured {
		meta.IssuedAt = registry.InstantSeconds(now)
	}

	token, err := e.jwtManager.Sign(claims, secret, meta.Encode())
	if err != nil {
		return "", err
	}

	e.metricInc(MetricSignIssued)

	return token, nil
}

// claimsFromPayload normalizes the payload into a claim set, reporting
// whether it was structured to begin with. Caller claim maps are copied,
// never mutated.
func claimsFromPayload(payload any) (jwt.Claims, bool) {
	switch p := payload.(type) {
	case jwt.Claims:
		claims := make(jwt.Claims, len(p)+3)
		for k, v := range p {
			claims[k] = v
		}
		return claims, true
	case map[string]any:
		claims := make(jwt.Claims, len(p)+3)
		for k, v := range p {
			claims[k] = v
		}
		return claims, true
	default:
		return jwt.Claims{wrappedClaim: p}, false
	}
}
