// Package registry loads the full set of custom node declarations discoverable
// in one repository snapshot.
//
// A Registry is built once per repository tree and is immutable afterwards. The
// loader requires a `nodes.hcl` manifest at the repository root (its absence is
// a DiscoveryError) and additionally collects declarations from `*.nodes.hcl`
// files anywhere under the tree. A satellite file that fails to parse is
// skipped with a recorded warning; the broken file's nodes are simply absent
// from the registry.
package registry
