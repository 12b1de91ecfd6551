// Package report renders a compatibility report as a human-readable summary.
// The output is deterministic: identical inputs produce byte-identical text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Comfy-Org/node-diff/internal/diff"
	"github.com/Comfy-Org/node-diff/internal/registry"
)

// Write renders the report to w: one line per finding with breaking ones
// marked distinctly, added and removed identifiers listed informationally,
// loader warnings surfaced, and a final verdict line.
func Write(w io.Writer, rep *diff.Report, warnings []registry.Warning) {
	for _, f := range rep.Findings {
		if !f.Breaking {
			fmt.Fprintf(w, "✓ %s: compatible\n", f.Identifier)
			continue
		}
		fmt.Fprintf(w, "✗ %s: BREAKING\n", f.Identifier)
		for _, change := range f.Changes {
			fmt.Fprintf(w, "  • %s\n", change)
			switch change {
			case diff.ChangeReturnTypes:
				fmt.Fprintf(w, "    - Base: %s\n", formatTypes(f.BaseReturnTypes))
				fmt.Fprintf(w, "    - PR: %s\n", formatTypes(f.CandidateReturnTypes))
			case diff.ChangeEntry:
				fmt.Fprintf(w, "    - Base: %s\n", formatEntry(f.BaseEntry))
				fmt.Fprintf(w, "    - PR: %s\n", formatEntry(f.CandidateEntry))
			}
		}
	}

	for _, id := range rep.Added {
		fmt.Fprintf(w, "+ %s: added (not breaking)\n", id)
	}
	for _, id := range rep.Removed {
		fmt.Fprintf(w, "- %s: removed (not breaking)\n", id)
	}

	for _, warning := range warnings {
		fmt.Fprintf(w, "! warning: %s: %s\n", warning.File, warning.Detail)
	}

	if rep.HasBreaking() {
		fmt.Fprintln(w, "❌ Breaking changes detected")
	} else {
		fmt.Fprintln(w, "✅ No breaking changes detected")
	}
}

func formatTypes(types []string) string {
	return "[" + strings.Join(types, ", ") + "]"
}

func formatEntry(entry string) string {
	if entry == "" {
		return "(none)"
	}
	return entry
}
