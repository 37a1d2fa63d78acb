// Package envelope composes and extracts the auxiliary token metadata that
// goRevoke embeds in a JWT header at sign time: the optional user and client
// identifiers, the sub-second issuance instant stamped in precise mode, and
// the wrapped-payload marker for non-object payloads.
//
// The envelope lives in the token header, not the claim set, so it can be
// read without touching the signature-protected payload shape and never
// collides with caller claims.
package envelope
