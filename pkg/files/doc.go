// Package files provides the file-collection model that resolution results are
// expressed in.
//
// # Rich and minimal collections
//
// Two families of types exist:
//
//   - Rich: [FileCollection] and [FileTree] are directly usable. Their files
//     can be listed, trees can be visited and narrowed with a [PatternSet].
//   - Minimal: [MinimalFileCollection], [MinimalFileSet] and [MinimalFileTree]
//     are unprocessed, low-level representations. They must be adapted
//     ([NewTreeAdapter], [NewCollectionAdapter]) before general use.
//
// Minimal types embed [Minimal]. Rich types never do, so a value is always
// classified as exactly one of the two.
//
// # Concrete types
//
//   - [ListBackedFileSet]: a minimal set backed by a slice of paths
//   - [DirectoryTree]: a minimal tree rooted at a directory
//   - [SingletonTree]: a minimal tree containing one file
//   - [TreeAdapter]: a rich tree over a minimal tree
//   - [CollectionAdapter]: a rich collection over a minimal set
//
// # Paths
//
// [Resolver] turns opaque values (strings, [Path], file URLs, fmt.Stringer)
// into concrete paths relative to a base directory. [IsDirectory] and
// [IsFile] classify a resolved path.
package files
