// Package io provides JSON import and export for resolution results.
//
// # Overview
//
// A resolution pass returns file trees, file collections or minimal file
// collections. This package describes such results as plain data so they can
// be inspected by other tools or fed back into a later pass.
//
// # JSON Format
//
//	{
//	  "shape": "file trees",
//	  "entries": [
//	    {
//	      "kind": "tree",
//	      "name": "directory '/src/project/docs'",
//	      "files": ["/src/project/docs/a.md", "/src/project/docs/b.md"]
//	    }
//	  ]
//	}
//
// Entry kinds are "tree", "collection", "minimal-tree", "minimal-set" and
// "minimal". A dependency-only pass writes "dependencies" instead of
// "entries".
//
// # Export
//
// Use [Entries] to describe a resolved list, then [ExportJSON] to write it to
// a file or [WriteJSON] to write to any io.Writer:
//
//	trees, err := ctx.ResolveAsFileTrees()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	entries, err := io.Entries(trees)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = io.ExportJSON(io.Result{Shape: "file trees", Entries: entries}, "out.json")
//
// Listing the files of a tree walks the file system at export time.
//
// # Import
//
// [ImportJSON] and [ReadJSON] decode a result. A decoded [*Result] is a
// resolve.Container: adding it to a context contributes one minimal file set
// per entry.
package io
