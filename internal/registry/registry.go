package registry

import (
	"sort"

	"github.com/Comfy-Org/node-diff/internal/manifest"
)

// RootManifestName is the well-known manifest file the loader requires at the
// root of every node repository.
const RootManifestName = "nodes.hcl"

// SatelliteSuffix is the filename suffix of additional manifest files collected
// from anywhere under the repository tree.
const SatelliteSuffix = ".nodes.hcl"

// Warning records a non-fatal problem encountered while loading a repository
// tree. Warnings are surfaced alongside normal output and never alter the
// pass/fail outcome.
type Warning struct {
	File   string
	Detail string
}

// Registry holds all custom node declarations loaded from a single repository
// snapshot, keyed by identifier.
type Registry struct {
	nodes    map[string]*manifest.NodeDeclaration
	warnings []Warning
}

// New creates a Registry from the given declarations. A later declaration with
// the same identifier overrides an earlier one, mirroring the host's mapping
// semantics.
func New(declarations ...*manifest.NodeDeclaration) *Registry {
	reg := &Registry{nodes: make(map[string]*manifest.NodeDeclaration)}
	for _, decl := range declarations {
		reg.nodes[decl.Identifier] = decl
	}
	return reg
}

// Node returns the declaration registered under the given identifier.
func (r *Registry) Node(identifier string) (*manifest.NodeDeclaration, bool) {
	decl, ok := r.nodes[identifier]
	return decl, ok
}

// Identifiers returns all registered identifiers in lexicographic order.
func (r *Registry) Identifiers() []string {
	ids := make([]string, 0, len(r.nodes))
	for id := range r.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered declarations.
func (r *Registry) Len() int {
	return len(r.nodes)
}

// Warnings returns the non-fatal problems recorded while the registry was
// loaded, in the order they were encountered.
func (r *Registry) Warnings() []Warning {
	return r.warnings
}

// add registers a declaration, recording a warning when it shadows an existing
// one.
func (r *Registry) add(decl *manifest.NodeDeclaration) {
	if existing, ok := r.nodes[decl.Identifier]; ok {
		r.warnings = append(r.warnings, Warning{
			File:   decl.SourceFile,
			Detail: "duplicate node identifier '" + decl.Identifier + "' overrides declaration from " + existing.SourceFile,
		})
	}
	r.nodes[decl.Identifier] = decl
}
