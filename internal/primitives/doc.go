// Package primitives provides the foundational, zero-dependency building
// blocks for the store engine.
//
// This package uses ONLY the Go standard library. No external dependencies
// are permitted in the core engine to achieve:
// - Minimal binary size
// - Zero vendor bloat
// - Deterministic builds
//
// Core invariants:
// - Cell swaps its value only on a nil-error transition (all-or-nothing)
// - Registry preserves registration order across removals
// - Both are safe for concurrent use (mutex / RWMutex)
package primitives
