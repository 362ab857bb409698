// Package resolve flattens heterogeneous file-like inputs into uniform lists
// of file trees, file collections or minimal file collections.
//
// # Overview
//
// Callers add arbitrary values to a [Context]: path strings, [files.Path]
// values, collections, containers that contribute further inputs, deferred
// values, tasks and their declared outputs, arrays and sequences. Nothing is
// inspected at [Context.Add] time. When the caller picks a result shape and
// calls one of the drain methods, every pending element is expanded
// recursively and converted into that shape:
//
//	ctx := resolve.New(files.NewResolver("/src/project"))
//	ctx.Add("README.md")
//	ctx.Add([]any{"docs", files.Path("cmd/main.go")})
//	trees, err := ctx.ResolveAsFileTrees()
//
// Results are ordered depth-first, left to right, in the order elements were
// added. Duplicates are preserved and nothing is sorted.
//
// # Dispatch Order
//
// Each element is classified by the first rule that matches:
//
//  1. A nested [*Context] (from [Context.Push]) is resolved into the active
//     shape and spliced in.
//  2. A [Container] populates a fresh child context whose elements are
//     resolved in place.
//  3. A [files.FileCollection], [files.FileTree] or
//     [files.MinimalFileCollection] goes to the converter as-is.
//  4. A [Task] is replaced by its [TaskOutputs].
//  5. [TaskOutputs] are replaced by their output files.
//  6. A deferred value ([Deferred], [Supplier], func() any or
//     func() (any, error)) is unpacked.
//  7. A [PathConvertible] value is converted to an OS path string.
//  8. An array is viewed as a slice.
//  9. A slice (other than []byte), an iter.Seq of any element type or an
//     [Iterable] has its members resolved in order.
//  10. Anything else is a leaf, resolved to a path by the context's
//     [PathResolver].
//  11. Absent values (nil, or nil pointers, maps, funcs, channels, interfaces
//     and slices) are dropped.
//
// # Result Shapes
//
// [Context.ResolveAsFileTrees] classifies each resolved path: directories
// become directory trees, regular files become single-file trees and missing
// paths are dropped. [Context.ResolveAsFileCollections] wraps each path in a
// single-entry collection. [Context.ResolveAsMinimalFileCollections] wraps
// each path in a minimal list-backed set.
//
// Minimal collections are adapted when a rich shape is requested only if they
// are a [files.MinimalFileTree] or [files.MinimalFileSet]. Rich collections are
// never downgraded to minimal ones. Both cases fail with an
// [errors.ErrCodeUnsupportedConversion] error. Values implementing
// [BuildDependency] that are not tasks contribute nothing to any file shape.
//
// # Draining
//
// A drain consumes the queue. Calling a drain method again without adding
// returns an empty list; adding after a drain starts an independent pass.
// Drains are all-or-nothing: if any element fails, no partial result is
// returned.
//
// # Nesting
//
// Recursion depth follows the nesting depth of the inputs. A container that
// contributes itself recurses without bound unless the context was created
// with [WithMaxDepth], in which case the drain fails with
// [errors.ErrCodeNestingTooDeep].
//
// A Context is owned by one goroutine; it is not safe for concurrent use.
package resolve
