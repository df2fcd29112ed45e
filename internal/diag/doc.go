// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: severity, a stable numeric code, a
// message and a primary source.Span, plus optional notes. Producers emit
// through the Reporter interface so they never couple to storage or
// formatting; BagReporter aggregates into a Bag which supports sorting and
// deduplication for deterministic output.
//
// The package performs no IO and no rendering. Formatting lives in
// internal/diagfmt, orchestration in internal/driver.
package diag
