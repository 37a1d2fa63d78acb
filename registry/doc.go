// Package registry owns the durable mapping from canonical identity keys to
// invalidation instants. It consumes a minimal key/value [Store] — Redis in
// production, an in-process map for tests and embedding — and never owns the
// store handle's lifecycle.
//
// Values are decimal string timestamps: seconds since epoch with a
// three-digit fractional part (milliseconds). One live record exists per
// identity; re-invalidation overwrites the instant, revert deletes the
// record entirely.
package registry
