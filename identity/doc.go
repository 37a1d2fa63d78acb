// Package identity defines the invalidation scope selectors used by goRevoke
// and the canonical string keys derived from them.
//
// An [Identity] selects one of four granularities: a single token, every
// token of a user, every token of a client, or every token of a user+client
// pair. Identifier values may be primitives or arbitrary JSON-encodable
// structures; structured values are reduced to a deterministic canonical
// form so that two semantically equal identifiers always derive the same
// store key.
package identity
