// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Comfy Org
//
// This file defines the NodeDeclaration, the parsed form of a single `node`
// block from a manifest file.
//
// Why distinguish between a declaration and the node's implementation?
//
// A NodeDeclaration is the node's *interface*: the identifier workflows
// reference it by, the ordered output types they wire into downstream nodes,
// and the entry point the host invokes. The implementation behind it can
// change freely; the declaration is what existing workflows depend on, and it
// is the only thing the compatibility checker needs to see.
package manifest

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"

	"github.com/Comfy-Org/node-diff/internal/ctxlog"
)

// NodeDeclaration is the parsed representation of one custom node's declared
// interface.
type NodeDeclaration struct {
	// Identifier is the unique key under which the node is registered,
	// taken from the HCL block label.
	Identifier string

	// Description is an optional human-readable summary of the node.
	Description string

	// Entry is the optional name of the node's entry-point function.
	Entry string

	// Outputs holds the node's declared outputs in manifest order.
	Outputs []OutputDeclaration

	// SourceFile is the path of the manifest file the declaration came from.
	SourceFile string
}

// ReturnTypes returns the node's declared output type names in declaration
// order. A node with no outputs returns an empty slice.
func (d *NodeDeclaration) ReturnTypes() []string {
	types := make([]string, len(d.Outputs))
	for i, out := range d.Outputs {
		types[i] = out.Type
	}
	return types
}

// nodeRootSchema defines the top-level structure of a manifest file, expecting
// zero or more 'node' blocks.
type nodeRootSchema struct {
	Nodes []*hclNode `hcl:"node,block"`
}

// hclNode represents a single 'node' block in the HCL file for decoding purposes.
type hclNode struct {
	Identifier string   `hcl:"identifier,label"`
	Body       hcl.Body `hcl:",remain"`
}

// nodeBodySchema is the HCL schema for the body of a 'node' block.
var nodeBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
		{Name: "entry"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "output", LabelNames: []string{"name"}},
	},
}

// ParseNodeFile decodes an HCL file that contains zero or more 'node' blocks.
// A file with no 'node' blocks is valid and yields an empty slice.
func ParseNodeFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*NodeDeclaration, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing node declarations from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	schema := &nodeRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, schema)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	declarations := make([]*NodeDeclaration, 0, len(schema.Nodes))

	for _, parsedNode := range schema.Nodes {
		bodyContent, contentDiags := parsedNode.Body.Content(nodeBodySchema)
		allDiags = append(allDiags, contentDiags...)
		if contentDiags.HasErrors() {
			continue // Skip this node but continue parsing others
		}

		declaration := &NodeDeclaration{
			Identifier: parsedNode.Identifier,
			SourceFile: filePath,
		}

		// Parse simple attributes
		if attr, exists := bodyContent.Attributes["description"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &declaration.Description)
			allDiags = append(allDiags, exprDiags...)
		}
		if attr, exists := bodyContent.Attributes["entry"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &declaration.Entry)
			allDiags = append(allDiags, exprDiags...)
		}

		var outputDiags hcl.Diagnostics
		declaration.Outputs, outputDiags = parseNodeOutputs(bodyContent.Blocks)
		allDiags = append(allDiags, outputDiags...)

		declarations = append(declarations, declaration)
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed node declarations", "count", len(declarations))
	return declarations, nil
}
