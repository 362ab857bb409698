package files

// FileVisit describes one regular file reached while visiting a tree.
type FileVisit struct {
	Path    string // Absolute or resolver-relative path of the file
	RelPath string // Slash-separated path relative to the tree root
}

// VisitFunc is called for each file of a tree, in lexical order.
// Returning an error stops the visit and is returned by the visitor.
type VisitFunc func(FileVisit) error

// FileCollection is a fully resolved, directly usable set of files.
type FileCollection interface {
	// DisplayName returns a short human-readable description.
	DisplayName() string
	// Files returns the paths of the files in the collection.
	Files() ([]string, error)
}

// FileTree is a FileCollection organised as a hierarchy below a root.
type FileTree interface {
	FileCollection
	// Visit calls fn for each file of the tree.
	Visit(fn VisitFunc) error
	// Matching returns a tree restricted to files matching patterns.
	Matching(patterns *PatternSet) FileTree
}

// Minimal is embedded by types implementing MinimalFileCollection.
type Minimal struct{}

func (Minimal) minimalFileCollection() {}

// MinimalFileCollection is the unprocessed form of a file collection.
// Implementations embed [Minimal].
type MinimalFileCollection interface {
	DisplayName() string
	minimalFileCollection()
}

// MinimalFileSet is a minimal collection with a flat list of files.
type MinimalFileSet interface {
	MinimalFileCollection
	FileSet() ([]string, error)
}

// MinimalFileTree is a minimal collection shaped as a tree.
type MinimalFileTree interface {
	MinimalFileCollection
	// VisitTree calls fn for each file matching patterns. A nil patterns
	// value matches everything.
	VisitTree(fn VisitFunc, patterns *PatternSet) error
}
