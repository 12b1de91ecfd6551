package registry

import "fmt"

// DiscoveryError reports that a repository tree has no root node manifest at
// all. It is distinct from a present manifest that declares zero nodes, which
// is valid and yields an empty Registry.
type DiscoveryError struct {
	Path string
}

// Error implements the error interface for DiscoveryError.
func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("no %s manifest found in %s", RootManifestName, e.Path)
}
