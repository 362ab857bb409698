package resolve

import (
	"github.com/matzehuels/filectx/pkg/errors"
	"github.com/matzehuels/filectx/pkg/files"
)

// Result shape names, used in hook events and conversion errors.
const (
	ShapeFileTrees              = "file trees"
	ShapeFileCollections        = "file collections"
	ShapeMinimalFileCollections = "minimal file collections"
	ShapeDependencies           = "dependencies"
)

// converter turns one leaf, collection or nested context into zero or more
// entries of the target shape.
type converter[T any] interface {
	shape() string
	convertInto(elem any, out []T, r PathResolver) ([]T, error)
}

// collectionConverter targets files.FileCollection.
type collectionConverter struct {
	patterns files.PatternSetFactory
}

func (collectionConverter) shape() string { return ShapeFileCollections }

func (cv collectionConverter) convertInto(elem any, out []files.FileCollection, r PathResolver) ([]files.FileCollection, error) {
	switch v := elem.(type) {
	case *Context:
		nested, err := v.ResolveAsFileCollections()
		if err != nil {
			return out, err
		}
		return append(out, nested...), nil
	case files.FileCollection:
		return append(out, v), nil
	case files.MinimalFileTree:
		return append(out, files.NewTreeAdapter(v, cv.patterns)), nil
	case files.MinimalFileSet:
		return append(out, files.NewCollectionAdapter(v)), nil
	case files.MinimalFileCollection:
		return out, errors.Unsupported(v, "file collection")
	case BuildDependency:
		return out, nil
	}

	p, err := r.Resolve(elem)
	if err != nil {
		return out, err
	}
	return append(out, files.NewCollectionAdapter(files.NewListBackedFileSet(p))), nil
}

// treeConverter targets files.FileTree.
type treeConverter struct {
	patterns files.PatternSetFactory
}

func (treeConverter) shape() string { return ShapeFileTrees }

func (cv treeConverter) convertInto(elem any, out []files.FileTree, r PathResolver) ([]files.FileTree, error) {
	switch v := elem.(type) {
	case *Context:
		nested, err := v.ResolveAsFileTrees()
		if err != nil {
			return out, err
		}
		return append(out, nested...), nil
	case files.FileTree:
		return append(out, v), nil
	case files.MinimalFileTree:
		return append(out, files.NewTreeAdapter(v, cv.patterns)), nil
	case files.MinimalFileSet:
		paths, err := v.FileSet()
		if err != nil {
			return out, err
		}
		return cv.classifyAll(paths, out), nil
	case files.FileCollection:
		paths, err := v.Files()
		if err != nil {
			return out, err
		}
		return cv.classifyAll(paths, out), nil
	case files.MinimalFileCollection:
		return out, errors.Unsupported(v, "file tree")
	case BuildDependency:
		return out, nil
	}

	p, err := r.Resolve(elem)
	if err != nil {
		return out, err
	}
	return cv.classify(p, out), nil
}

func (cv treeConverter) classifyAll(paths []string, out []files.FileTree) []files.FileTree {
	for _, p := range paths {
		out = cv.classify(p, out)
	}
	return out
}

// classify wraps a directory or regular file in a tree. Missing paths are
// dropped.
func (cv treeConverter) classify(p string, out []files.FileTree) []files.FileTree {
	switch {
	case files.IsDirectory(p):
		return append(out, files.NewTreeAdapter(files.NewDirectoryTree(p, cv.patterns()), cv.patterns))
	case files.IsFile(p):
		return append(out, files.NewTreeAdapter(files.NewSingletonTree(p), cv.patterns))
	}
	return out
}

// minimalConverter targets files.MinimalFileCollection.
type minimalConverter struct{}

func (minimalConverter) shape() string { return ShapeMinimalFileCollections }

func (minimalConverter) convertInto(elem any, out []files.MinimalFileCollection, r PathResolver) ([]files.MinimalFileCollection, error) {
	switch v := elem.(type) {
	case *Context:
		nested, err := v.ResolveAsMinimalFileCollections()
		if err != nil {
			return out, err
		}
		return append(out, nested...), nil
	case files.MinimalFileCollection:
		return append(out, v), nil
	case files.FileCollection:
		return out, errors.Unsupported(v, "minimal file collection")
	case BuildDependency:
		return out, nil
	}

	p, err := r.Resolve(elem)
	if err != nil {
		return out, err
	}
	return append(out, files.NewListBackedFileSet(p)), nil
}
