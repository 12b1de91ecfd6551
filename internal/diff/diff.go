package diff

import (
	"slices"

	"github.com/Comfy-Org/node-diff/internal/registry"
)

// ChangeKind enumerates the kinds of interface changes detected on a shared
// node identifier.
type ChangeKind int

const (
	ChangeReturnTypes ChangeKind = iota // declared return types changed
	ChangeEntry                         // entry-point function changed
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeReturnTypes:
		return "Return types changed"
	case ChangeEntry:
		return "Entry point function changed"
	default:
		return "unknown"
	}
}

// Finding is the result of comparing one identifier present in both
// registries.
type Finding struct {
	Identifier           string
	BaseReturnTypes      []string
	CandidateReturnTypes []string
	BaseEntry            string
	CandidateEntry       string
	Breaking             bool
	Changes              []ChangeKind
}

// Report aggregates the outcome of comparing a base registry against a
// candidate registry.
type Report struct {
	// Findings holds one entry per shared identifier, ordered
	// lexicographically by identifier.
	Findings []Finding

	// Added holds identifiers present only in the candidate, sorted.
	Added []string

	// Removed holds identifiers present only in the base, sorted.
	Removed []string
}

// HasBreaking reports whether at least one finding is breaking.
func (r *Report) HasBreaking() bool {
	for _, f := range r.Findings {
		if f.Breaking {
			return true
		}
	}
	return false
}

// Compare diffs a candidate registry against a base registry.
//
// Return types are compared positionally: compatibility requires the same
// length and the same type name at every position. A shortened, lengthened,
// reordered, or retyped sequence is breaking, as is a changed entry point.
func Compare(base, candidate *registry.Registry) *Report {
	report := &Report{}

	// Identifiers() is sorted, so findings and the auxiliary sets come out in
	// a deterministic order without further work.
	for _, id := range base.Identifiers() {
		baseDecl, _ := base.Node(id)
		candDecl, ok := candidate.Node(id)
		if !ok {
			report.Removed = append(report.Removed, id)
			continue
		}

		finding := Finding{
			Identifier:           id,
			BaseReturnTypes:      baseDecl.ReturnTypes(),
			CandidateReturnTypes: candDecl.ReturnTypes(),
			BaseEntry:            baseDecl.Entry,
			CandidateEntry:       candDecl.Entry,
		}

		if !slices.Equal(finding.BaseReturnTypes, finding.CandidateReturnTypes) {
			finding.Breaking = true
			finding.Changes = append(finding.Changes, ChangeReturnTypes)
		}
		if baseDecl.Entry != candDecl.Entry {
			finding.Breaking = true
			finding.Changes = append(finding.Changes, ChangeEntry)
		}

		report.Findings = append(report.Findings, finding)
	}

	for _, id := range candidate.Identifiers() {
		if _, ok := base.Node(id); !ok {
			report.Added = append(report.Added, id)
		}
	}

	return report
}
