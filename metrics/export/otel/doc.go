// Package otel exposes goRevoke engine counters as OpenTelemetry observable
// instruments. The exporter owns no SDK: the caller supplies a meter and
// keeps the provider lifecycle.
package otel
