// Package diff compares two node registries and detects breaking changes to
// the declared interfaces of nodes present in both.
//
// The comparison is pure and deterministic: a single pass over the
// lexicographically ordered union of identifiers, with no external failure
// modes once both registries are in hand. Nodes added or removed between the
// two snapshots are reported informationally and are never breaking; only a
// still-present node whose declared interface changed fails the run.
package diff
