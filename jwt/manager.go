package jwt

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SigningMethod defines a public type used by goRevoke APIs.
//
// SigningMethod instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SigningMethod string

const (
	// MethodHS256 is the default HMAC-SHA256 signing method.
	MethodHS256 SigningMethod = "hs256"
	// MethodEd25519 signs with an Ed25519 private key and verifies with the
	// matching public key.
	MethodEd25519 SigningMethod = "ed25519"
)

// Claims is the structured claim set goRevoke signs and returns.
type Claims = jwt.MapClaims

// Token is a decoded JWT: raw compact form, header, and claim set.
type Token struct {
	Raw    string
	Header map[string]any
	Claims Claims
}

// Config defines a public type used by goRevoke APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	SigningMethod SigningMethod
	Issuer        string
	Leeway        time.Duration
	MaxFutureIAT  time.Duration
}

// Manager adapts golang-jwt as the signing service: sign with per-call
// secrets, verify signature-first, and decode without verification.
type Manager struct {
	config Config
}

// NewManager validates the configuration and returns a signing-service
// adapter. The signing method defaults to HS256; secrets and keys are
// supplied per call, never held by the manager.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.SigningMethod == "" {
		cfg.SigningMethod = MethodHS256
	}
	switch cfg.SigningMethod {
	case MethodHS256, MethodEd25519:
	default:
		return nil, errors.New("unsupported signing method")
	}
	if cfg.Leeway < 0 || cfg.Leeway > 2*time.Minute {
		return nil, errors.New("invalid leeway configuration")
	}
	if cfg.MaxFutureIAT == 0 {
		cfg.MaxFutureIAT = 10 * time.Minute
	}
	if cfg.MaxFutureIAT < 0 || cfg.MaxFutureIAT > 24*time.Hour {
		return nil, errors.New("invalid MaxFutureIAT configuration")
	}

	return &Manager{config: cfg}, nil
}

// Sign issues a compact token for the claim set. extraHeader entries are
// merged into the token header before signing, which is how the envelope
// metadata travels inside the signature.
func (m *Manager) Sign(claims Claims, secret []byte, extraHeader map[string]any) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("signing secret required")
	}

	token := jwt.NewWithClaims(m.method(), claims)
	for k, v := range extraHeader {
		token.Header[k] = v
	}

	signKey, err := m.signKey(secret)
	if err != nil {
		return "", err
	}

	return token.SignedString(signKey)
}

// Verify checks the signature and registered claims and returns the decoded
// token. Signature and claim validation errors are golang-jwt errors and
// are returned unchanged.
func (m *Manager) Verify(tokenStr string, secret []byte) (*Token, error) {
	if len(secret) == 0 {
		return nil, errors.New("verification secret required")
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{m.method().Alg()}),
	}
	if m.config.Leeway > 0 {
		options = append(options, jwt.WithLeeway(m.config.Leeway))
	}
	if m.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(m.config.Issuer))
	}

	parser := jwt.NewParser(options...)
	token, err := parser.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != m.method().Alg() {
			return nil, fmt.Errorf("unexpected signing algorithm: %s", t.Method.Alg())
		}
		return m.verifyKey(secret)
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	if m.config.MaxFutureIAT > 0 {
		if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
			if iat.Time.After(time.Now().Add(m.config.MaxFutureIAT)) {
				return nil, errors.New("token iat too far in the future")
			}
		}
	}

	return &Token{Raw: tokenStr, Header: token.Header, Claims: claims}, nil
}

// Decode parses a token without verifying the signature or any claim.
// Callers must never trust the result for authentication decisions.
func (m *Manager) Decode(tokenStr string) (*Token, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &Token{Raw: tokenStr, Header: token.Header, Claims: claims}, nil
}

func (m *Manager) method() jwt.SigningMethod {
	switch m.config.SigningMethod {
	case MethodEd25519:
		return jwt.SigningMethodEdDSA
	default:
		return jwt.SigningMethodHS256
	}
}

func (m *Manager) signKey(secret []byte) (interface{}, error) {
	switch m.config.SigningMethod {
	case MethodEd25519:
		return parseEdPrivateKey(secret)
	default:
		return secret, nil
	}
}

func (m *Manager) verifyKey(secret []byte) (interface{}, error) {
	switch m.config.SigningMethod {
	case MethodEd25519:
		return parseEdPublicKey(secret)
	default:
		return secret, nil
	}
}

func parseEdPrivateKey(key []byte) (ed25519.PrivateKey, error) {
	if len(key) == ed25519.PrivateKeySize {
		return ed25519.PrivateKey(key), nil
	}
	parsed, err := jwt.ParseEdPrivateKeyFromPEM(key)
	if err != nil {
		return nil, errors.New("invalid ed25519 private key")
	}
	edKey, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, errors.New("invalid ed25519 private key type")
	}
	return edKey, nil
}

func parseEdPublicKey(key []byte) (ed25519.PublicKey, error) {
	if len(key) == ed25519.PublicKeySize {
		return ed25519.PublicKey(key), nil
	}
	parsed, err := jwt.ParseEdPublicKeyFromPEM(key)
	if err != nil {
		return nil, errors.New("invalid ed25519 public key")
	}
	edKey, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, errors.New("invalid ed25519 public key type")
	}
	return edKey, nil
}
