// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Comfy Org
//
// Package manifest provides the Go struct representation of custom node
// manifests. Its core purpose is to create a strongly-typed, in-memory model
// of a repository's node declarations by parsing its .hcl manifest files.
//
// # Core Concepts
//
//   - NodeDeclaration: the public contract of one custom node. It declares the
//     identifier under which the node is registered, the ordered sequence of
//     output types it produces, and optionally its entry-point function.
//
//   - OutputDeclaration: a single named, typed output of a node. The order of
//     output blocks in the manifest is the order of the node's return types,
//     and that order is part of the contract: workflows bind to outputs by
//     position.
//
// Why a manifest at all?
//
// The host discovers custom nodes through a conventionally-named mapping in
// each node repository. Inspecting that mapping directly would mean importing
// and executing arbitrary repository code, which is unacceptable for a checker
// that runs against unreviewed pull requests. The manifest is a static,
// declarative mirror of that mapping: it can be parsed without evaluating
// anything, so the checker never runs candidate code. Attribute values are
// therefore restricted to literals.
package manifest
