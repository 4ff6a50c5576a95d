// Package session implements the interactive editing session for a single
// text layer.
//
// A Session is the single mutable source of truth for one layer draft:
// text, alignment, background mode, color, font scale, picker position,
// and text style. Mutators are the only write path; each one updates the
// draft, recomputes derived values (line count, width metrics), publishes
// a typed event, and fires the rebuild broadcast before returning, so
// observers never see a partially applied change.
//
// The session ends in exactly one of two terminal states: committed,
// producing an immutable Result, or cancelled, producing nothing. A done
// action on whitespace-only text takes the cancel path rather than
// committing an empty layer.
package session
