// Package pkg provides the libraries behind filectx.
//
// # Overview
//
// filectx turns heterogeneous inputs (paths, globs, URIs, nested lists,
// lazily computed values, task outputs and whole manifests) into flat lists
// of file trees or file collections. The pkg directory is organized as:
//
//  1. [resolve] - The resolution engine: contexts, element dispatch, converters
//  2. [files] - File collection and tree types, patterns, path resolution
//  3. [manifest] - TOML and HCL input manifests
//  4. [io] - JSON export and import of resolved results
//  5. [explain] - Tracing and Graphviz rendering of resolution passes
//  6. [observability] - Hooks for resolution and manifest events
//  7. [errors] - Structured error codes
//
// # Architecture
//
// The typical data flow through filectx:
//
//	Manifest / command-line inputs
//	         ↓
//	    [manifest] package (decode + validate)
//	         ↓
//	    [resolve] package (Add, Push, ResolveAs...)
//	         ↓
//	    [files] package (trees, collections, patterns)
//	         ↓
//	    [io] or [explain] (JSON, DOT, SVG)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/filectx/pkg/files"
//	    "github.com/matzehuels/filectx/pkg/manifest"
//	    "github.com/matzehuels/filectx/pkg/resolve"
//	)
//
//	m, err := manifest.Load("inputs.toml")
//	if err != nil {
//	    return err
//	}
//
//	ctx := resolve.New(files.NewResolver("."))
//	ctx.Add(m)
//	ctx.Add("README.md")
//	trees, err := ctx.ResolveAsFileTrees()
//
// [resolve]: https://pkg.go.dev/github.com/matzehuels/filectx/pkg/resolve
// [files]: https://pkg.go.dev/github.com/matzehuels/filectx/pkg/files
// [manifest]: https://pkg.go.dev/github.com/matzehuels/filectx/pkg/manifest
// [io]: https://pkg.go.dev/github.com/matzehuels/filectx/pkg/io
// [explain]: https://pkg.go.dev/github.com/matzehuels/filectx/pkg/explain
// [observability]: https://pkg.go.dev/github.com/matzehuels/filectx/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/filectx/pkg/errors
package pkg
