package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeManifest is a test helper that writes a manifest file inside dir,
// creating intermediate directories as needed.
func writeManifest(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_MissingRootManifestIsDiscoveryError(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeManifest(t, tempDir, "sub/extra.nodes.hcl", `node "X" {}`)

	reg, err := Load(context.Background(), tempDir)

	require.Error(t, err)
	var discoveryErr *DiscoveryError
	require.ErrorAs(t, err, &discoveryErr)
	assert.Equal(t, tempDir, discoveryErr.Path)
	assert.Nil(t, reg)
}

func TestLoad_MissingRepositoryPath(t *testing.T) {
	t.Parallel()

	reg, err := Load(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))

	require.Error(t, err)
	var discoveryErr *DiscoveryError
	assert.False(t, errors.As(err, &discoveryErr), "a missing path is not a discovery failure")
	assert.Nil(t, reg)
}

func TestLoad_EmptyRootManifest(t *testing.T) {
	t.Parallel()

	// Zero nodes found is valid and yields an empty registry, distinct from
	// the manifest being missing entirely.
	tempDir := t.TempDir()
	writeManifest(t, tempDir, "nodes.hcl", "")

	reg, err := Load(context.Background(), tempDir)

	require.NoError(t, err)
	assert.Equal(t, 0, reg.Len())
	assert.Empty(t, reg.Warnings())
}

func TestLoad_RootAndSatellites(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeManifest(t, tempDir, "nodes.hcl", `
node "LoadImage" {
  output "image" { type = "IMAGE" }
  output "mask"  { type = "MASK" }
}
`)
	writeManifest(t, tempDir, "samplers/sampler.nodes.hcl", `
node "KSampler" {
  entry = "sample"
  output "latent" { type = "LATENT" }
}
`)

	reg, err := Load(context.Background(), tempDir)

	require.NoError(t, err)
	assert.Equal(t, []string{"KSampler", "LoadImage"}, reg.Identifiers())

	loadImage, ok := reg.Node("LoadImage")
	require.True(t, ok)
	assert.Equal(t, []string{"IMAGE", "MASK"}, loadImage.ReturnTypes())

	sampler, ok := reg.Node("KSampler")
	require.True(t, ok)
	assert.Equal(t, "sample", sampler.Entry)
}

func TestLoad_BrokenSatelliteIsSkippedWithWarning(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeManifest(t, tempDir, "nodes.hcl", `
node "LoadImage" {
  output "image" { type = "IMAGE" }
}
`)
	writeManifest(t, tempDir, "broken.nodes.hcl", `node "Oops" { output "x" {`)

	reg, err := Load(context.Background(), tempDir)

	require.NoError(t, err, "a broken satellite must not abort the scan")
	assert.Equal(t, []string{"LoadImage"}, reg.Identifiers())

	require.Len(t, reg.Warnings(), 1)
	assert.Contains(t, reg.Warnings()[0].File, "broken.nodes.hcl")
}

func TestLoad_InvalidSatelliteDeclarationIsSkippedWithWarning(t *testing.T) {
	t.Parallel()

	// Syntactically valid HCL that violates the manifest schema is skipped
	// the same way as a file that does not parse at all.
	tempDir := t.TempDir()
	writeManifest(t, tempDir, "nodes.hcl", `node "LoadImage" {}`)
	writeManifest(t, tempDir, "bad.nodes.hcl", `
node "Oops" {
  output "x" { type = 42 }
}
`)

	reg, err := Load(context.Background(), tempDir)

	require.NoError(t, err)
	assert.Equal(t, []string{"LoadImage"}, reg.Identifiers())
	require.Len(t, reg.Warnings(), 1)
}

func TestLoad_BrokenRootManifestIsFatal(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeManifest(t, tempDir, "nodes.hcl", `node "LoadImage" {`)

	reg, err := Load(context.Background(), tempDir)

	require.Error(t, err)
	assert.Nil(t, reg)
	assert.Contains(t, err.Error(), "nodes.hcl")
}

func TestLoad_DuplicateIdentifierLastWins(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()
	writeManifest(t, tempDir, "nodes.hcl", `node "X" {}`)
	writeManifest(t, tempDir, "extra.nodes.hcl", `
node "X" {
  output "image" { type = "IMAGE" }
}
`)

	reg, err := Load(context.Background(), tempDir)

	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	decl, ok := reg.Node("X")
	require.True(t, ok)
	assert.Equal(t, []string{"IMAGE"}, decl.ReturnTypes(), "the later declaration overrides the earlier one")

	require.Len(t, reg.Warnings(), 1)
	assert.Contains(t, reg.Warnings()[0].Detail, "duplicate node identifier 'X'")
}
