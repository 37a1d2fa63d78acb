// Package middleware provides a net/http guard that authenticates Bearer
// tokens through a goRevoke engine before the request reaches a handler.
package middleware
