// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Comfy Org
//
// This file defines the structure for a node's output values and the logic
// for parsing their definitions from HCL.
//
// Why is output order significant?
//
// Workflows consume a node's outputs positionally: the first output socket
// carries the first declared type, and so on. Removing, reordering, or
// retyping an output therefore shifts what every downstream connection
// receives. The parser preserves manifest order exactly so the differ can
// compare the sequences position by position.
package manifest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"
)

// OutputDeclaration defines a single output value produced by a node.
type OutputDeclaration struct {
	// Name is the name of the output, taken from the HCL block label.
	// For example, in `output "image" {}`, the Name is "image".
	Name string

	// Type is the host type name this output carries, e.g. "IMAGE" or "MASK".
	Type string

	// Description is an optional string that describes the output's purpose.
	Description string
}

// outputBodySchema is the HCL schema for the body of an `output` block.
var outputBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		// `type` is required, but we check for its existence manually
		// to provide a better error message.
		{Name: "type"},
		{Name: "description"},
	},
}

// parseNodeOutputs finds and decodes all 'output' blocks from a node's HCL
// body, preserving their declaration order.
func parseNodeOutputs(blocks hcl.Blocks) ([]OutputDeclaration, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var outputs []OutputDeclaration
	seen := make(map[string]struct{})

	outputBlocks := blocks.OfType("output")
	for _, block := range outputBlocks {
		// The schema guarantees us one label.
		outputName := block.Labels[0]

		if _, exists := seen[outputName]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate output definition",
				Detail:   fmt.Sprintf("An output named '%s' has already been defined.", outputName),
				Subject:  &block.DefRange,
			})
			continue
		}

		bodyContent, contentDiags := block.Body.Content(outputBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		// Manually check for the required 'type' attribute for a better error.
		typeAttr, exists := bodyContent.Attributes["type"]
		if !exists {
			missingItemRange := block.Body.MissingItemRange()
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Missing 'type' attribute",
				Detail:   "The 'type' attribute is required for all output blocks.",
				Subject:  &missingItemRange,
			})
			continue
		}

		typeName, typeDiags := decodeTypeName(typeAttr)
		diags = append(diags, typeDiags...)
		if typeDiags.HasErrors() {
			continue
		}

		// Decode optional attributes
		var description string
		if descAttr, exists := bodyContent.Attributes["description"]; exists {
			evalDiags := gohcl.DecodeExpression(descAttr.Expr, nil, &description)
			diags = append(diags, evalDiags...)
			if evalDiags.HasErrors() {
				continue
			}
		}

		seen[outputName] = struct{}{}
		outputs = append(outputs, OutputDeclaration{
			Name:        outputName,
			Type:        typeName,
			Description: description,
		})
	}

	return outputs, diags
}

// decodeTypeName evaluates a 'type' attribute and requires it to be a literal,
// non-empty string. Manifests are declarative; expressions and references are
// not evaluated.
func decodeTypeName(attr *hcl.Attribute) (string, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	val, valDiags := attr.Expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return "", diags
	}

	if !val.Type().Equals(cty.String) || val.IsNull() {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid 'type' attribute",
			Detail:   fmt.Sprintf("The 'type' attribute must be a literal string, got %s.", val.Type().FriendlyName()),
			Subject:  attr.Expr.Range().Ptr(),
		})
		return "", diags
	}

	typeName := val.AsString()
	if typeName == "" {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid 'type' attribute",
			Detail:   "The 'type' attribute must not be empty.",
			Subject:  attr.Expr.Range().Ptr(),
		})
		return "", diags
	}

	return typeName, diags
}
