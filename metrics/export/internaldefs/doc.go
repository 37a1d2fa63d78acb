// Package internaldefs holds the shared metric name and help definitions
// used by the goRevoke metric exporters. It is not a public API.
package internaldefs
