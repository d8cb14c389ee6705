// Package errors provides standardized error handling patterns for graphfilter.
//
// # Overview
//
// The errors package implements a three-class error classification system:
// Transient (temporary, retryable), Invalid (bad input, non-retryable), and
// Fatal (unrecoverable, stop processing).
//
// Filter evaluation itself never returns errors: a condition that cannot be
// compared simply fails to match. Errors surface at the boundaries instead,
// when filter text is parsed, when a graph document is loaded, or when
// configuration is validated, and those are almost always Invalid.
//
// # Quick Start
//
// Use standard error variables for known conditions:
//
//	if len(tokens) < 4 {
//	    return errors.ErrIncompleteCondition
//	}
//
// Wrap errors with context for debugging:
//
//	if err := store.Load(path); err != nil {
//	    return errors.Wrap(err, "Store", "Load", "graph document")
//	}
//
// Check classification at the caller:
//
//	if errors.IsInvalid(err) {
//	    // surface to the user, do not retry
//	}
//
// The classification system integrates with Go's standard error handling,
// supporting errors.Is(), errors.As(), and error wrapping chains.
package errors
