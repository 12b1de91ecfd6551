package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Comfy-Org/node-diff/internal/ctxlog"
	"github.com/Comfy-Org/node-diff/internal/fsutil"
	"github.com/Comfy-Org/node-diff/internal/manifest"
)

// Load builds a Registry from the node manifests of one repository tree.
//
// The root manifest is required: a missing nodes.hcl yields a DiscoveryError
// and an unparseable one is fatal. Satellite *.nodes.hcl files that fail to
// parse are skipped with a recorded warning. The traversal is read-only.
func Load(ctx context.Context, repoPath string) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading declarations from repository tree...", "path", repoPath)

	if _, err := os.Stat(repoPath); err != nil {
		return nil, fmt.Errorf("repository path is not accessible: %w", err)
	}

	rootManifest := filepath.Join(repoPath, RootManifestName)
	if _, err := os.Stat(rootManifest); err != nil {
		if os.IsNotExist(err) {
			logger.Error("Root node manifest not found", "path", rootManifest)
			return nil, &DiscoveryError{Path: repoPath}
		}
		return nil, fmt.Errorf("failed to stat root manifest %s: %w", rootManifest, err)
	}

	parser := hclparse.NewParser()
	reg := New()

	// The root manifest plays the role of the host's node-class mapping: if it
	// does not parse, the whole tree is unusable.
	hclFile, diags := parser.ParseHCLFile(rootManifest)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse root manifest %s: %w", rootManifest, diags)
	}
	declarations, parseDiags := manifest.ParseNodeFile(ctx, hclFile, rootManifest)
	if parseDiags.HasErrors() {
		return nil, fmt.Errorf("failed to process root manifest %s: %w", rootManifest, parseDiags)
	}
	for _, decl := range declarations {
		reg.add(decl)
	}

	satellitePaths, err := fsutil.FindFilesBySuffix(repoPath, SatelliteSuffix)
	if err != nil {
		logger.Error("Failed to walk repository tree", "path", repoPath, "error", err)
		return nil, err
	}

	for _, filePath := range satellitePaths {
		hclFile, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			logger.Warn("Skipping unparseable node manifest", "file", filePath, "error", diags.Error())
			reg.warnings = append(reg.warnings, Warning{File: filePath, Detail: diags.Error()})
			continue
		}

		declarations, parseDiags := manifest.ParseNodeFile(ctx, hclFile, filePath)
		if parseDiags.HasErrors() {
			logger.Warn("Skipping invalid node manifest", "file", filePath, "error", parseDiags.Error())
			reg.warnings = append(reg.warnings, Warning{File: filePath, Detail: parseDiags.Error()})
			continue
		}

		for _, decl := range declarations {
			reg.add(decl)
		}
		logger.Debug("Successfully loaded declarations from manifest", "file", filePath)
	}

	logger.Info("Registry loaded successfully.", "path", repoPath, "nodes_loaded", reg.Len(), "warnings", len(reg.warnings))
	return reg, nil
}
