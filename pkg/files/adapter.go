package files

import "slices"

// TreeAdapter exposes a MinimalFileTree as a rich FileTree.
//
// Filters added with Matching accumulate: a file is visited only when every
// filter matches it.
type TreeAdapter struct {
	tree    MinimalFileTree
	factory PatternSetFactory
	filters []*PatternSet
}

// NewTreeAdapter wraps tree. The factory creates the pattern sets used when
// the adapter has to visit without a caller-supplied filter; nil selects
// [DefaultPatterns].
func NewTreeAdapter(tree MinimalFileTree, factory PatternSetFactory) *TreeAdapter {
	if factory == nil {
		factory = DefaultPatterns
	}
	return &TreeAdapter{tree: tree, factory: factory}
}

// Tree returns the adapted minimal tree.
func (a *TreeAdapter) Tree() MinimalFileTree { return a.tree }

// DisplayName returns the display name of the adapted tree.
func (a *TreeAdapter) DisplayName() string { return a.tree.DisplayName() }

// Visit calls fn for each file of the tree matching all filters.
func (a *TreeAdapter) Visit(fn VisitFunc) error {
	return a.tree.VisitTree(func(v FileVisit) error {
		for _, f := range a.filters {
			if !f.Matches(v.RelPath) {
				return nil
			}
		}
		return fn(v)
	}, a.factory())
}

// Files returns the paths of all visited files.
func (a *TreeAdapter) Files() ([]string, error) {
	var out []string
	err := a.Visit(func(v FileVisit) error {
		out = append(out, v.Path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Matching returns a new adapter additionally filtered by patterns.
func (a *TreeAdapter) Matching(patterns *PatternSet) FileTree {
	next := &TreeAdapter{tree: a.tree, factory: a.factory, filters: slices.Clone(a.filters)}
	if !patterns.IsEmpty() {
		next.filters = append(next.filters, patterns)
	}
	return next
}

var _ FileTree = (*TreeAdapter)(nil)

// CollectionAdapter exposes a MinimalFileSet as a rich FileCollection.
type CollectionAdapter struct {
	set MinimalFileSet
}

// NewCollectionAdapter wraps set.
func NewCollectionAdapter(set MinimalFileSet) *CollectionAdapter {
	return &CollectionAdapter{set: set}
}

// Set returns the adapted minimal set.
func (a *CollectionAdapter) Set() MinimalFileSet { return a.set }

// DisplayName returns the display name of the adapted set.
func (a *CollectionAdapter) DisplayName() string { return a.set.DisplayName() }

// Files returns the files of the adapted set.
func (a *CollectionAdapter) Files() ([]string, error) { return a.set.FileSet() }

var _ FileCollection = (*CollectionAdapter)(nil)
