package manifest

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseSource is a test helper that parses manifest source text in-memory.
func parseSource(t *testing.T, src string) ([]*NodeDeclaration, hcl.Diagnostics) {
	t.Helper()
	file, diags := hclparse.NewParser().ParseHCL([]byte(src), "test.nodes.hcl")
	require.False(t, diags.HasErrors(), "test fixture must be syntactically valid HCL: %s", diags.Error())
	return ParseNodeFile(context.Background(), file, "test.nodes.hcl")
}

func TestParseNodeFile_SingleNode(t *testing.T) {
	t.Parallel()

	src := `
node "LoadImage" {
  description = "Loads an image and its alpha mask from disk."
  entry       = "load"

  output "image" {
    type = "IMAGE"
  }
  output "mask" {
    type        = "MASK"
    description = "Alpha channel of the loaded image."
  }
}
`
	decls, diags := parseSource(t, src)
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, decls, 1)

	decl := decls[0]
	assert.Equal(t, "LoadImage", decl.Identifier)
	assert.Equal(t, "Loads an image and its alpha mask from disk.", decl.Description)
	assert.Equal(t, "load", decl.Entry)
	assert.Equal(t, "test.nodes.hcl", decl.SourceFile)
	assert.Equal(t, []string{"IMAGE", "MASK"}, decl.ReturnTypes())
	assert.Equal(t, "mask", decl.Outputs[1].Name)
	assert.Equal(t, "Alpha channel of the loaded image.", decl.Outputs[1].Description)
}

func TestParseNodeFile_OutputOrderIsPreserved(t *testing.T) {
	t.Parallel()

	src := `
node "Sampler" {
  output "latent" { type = "LATENT" }
  output "image"  { type = "IMAGE" }
  output "mask"   { type = "MASK" }
}
`
	decls, diags := parseSource(t, src)
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, decls, 1)
	assert.Equal(t, []string{"LATENT", "IMAGE", "MASK"}, decls[0].ReturnTypes())
}

func TestParseNodeFile_NodeWithoutOutputs(t *testing.T) {
	t.Parallel()

	// A node with no outputs is a valid declaration, not an error.
	src := `
node "SaveImage" {
  entry = "save"
}
`
	decls, diags := parseSource(t, src)
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, decls, 1)
	assert.Empty(t, decls[0].ReturnTypes())
}

func TestParseNodeFile_MultipleNodes(t *testing.T) {
	t.Parallel()

	src := `
node "LoadImage" {
  output "image" { type = "IMAGE" }
}

node "SaveImage" {}
`
	decls, diags := parseSource(t, src)
	require.False(t, diags.HasErrors(), diags.Error())
	require.Len(t, decls, 2)
	assert.Equal(t, "LoadImage", decls[0].Identifier)
	assert.Equal(t, "SaveImage", decls[1].Identifier)
}

func TestParseNodeFile_EmptyFile(t *testing.T) {
	t.Parallel()

	decls, diags := parseSource(t, "")
	require.False(t, diags.HasErrors(), diags.Error())
	assert.Empty(t, decls)
}

func TestParseNodeFile_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		src  string
	}{
		{
			name: "missing type attribute",
			src: `
node "LoadImage" {
  output "image" {}
}
`,
		},
		{
			name: "non-string type value",
			src: `
node "LoadImage" {
  output "image" { type = 42 }
}
`,
		},
		{
			name: "empty type value",
			src: `
node "LoadImage" {
  output "image" { type = "" }
}
`,
		},
		{
			name: "duplicate output name",
			src: `
node "LoadImage" {
  output "image" { type = "IMAGE" }
  output "image" { type = "MASK" }
}
`,
		},
		{
			name: "unknown attribute in node body",
			src: `
node "LoadImage" {
  colour = "blue"
}
`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			decls, diags := parseSource(t, tc.src)
			require.True(t, diags.HasErrors(), "expected diagnostics for %q", tc.name)
			assert.Nil(t, decls)
		})
	}
}

func TestParseNodeFile_NilFile(t *testing.T) {
	t.Parallel()

	decls, diags := ParseNodeFile(context.Background(), nil, "missing.nodes.hcl")
	require.True(t, diags.HasErrors())
	assert.Nil(t, decls)
}
