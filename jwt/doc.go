// Package jwt adapts golang-jwt/jwt/v5 as the signing service consumed by
// the goRevoke engine: sign a claim set with a per-call secret, verify a
// token signature-first, and decode a token without verification so the
// envelope metadata can be inspected.
//
// The package never stores secrets. Signature and claim validation errors
// come from golang-jwt unchanged so callers can distinguish them from
// revocation errors with errors.Is.
package jwt
