package files

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirectoryTree is a minimal tree of the regular files below a directory.
//
// Symlinked directories are not descended into. Symlinks to regular files
// are visited. A missing root visits nothing.
type DirectoryTree struct {
	Minimal
	dir      string
	patterns *PatternSet
}

// NewDirectoryTree creates a tree rooted at dir, filtered by patterns.
// A nil patterns value matches every file.
func NewDirectoryTree(dir string, patterns *PatternSet) *DirectoryTree {
	return &DirectoryTree{dir: dir, patterns: patterns}
}

// Dir returns the root directory of the tree.
func (t *DirectoryTree) Dir() string { return t.dir }

// DisplayName returns a short description of the tree.
func (t *DirectoryTree) DisplayName() string {
	return fmt.Sprintf("directory '%s'", t.dir)
}

// VisitTree walks the directory in lexical order and calls fn for each
// regular file matched by both the tree's own patterns and patterns.
func (t *DirectoryTree) VisitTree(fn VisitFunc, patterns *PatternSet) error {
	if !IsDirectory(t.dir) {
		return nil
	}
	return filepath.WalkDir(t.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if d.Type()&fs.ModeSymlink != 0 {
			if !IsFile(path) {
				return nil
			}
		} else if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(t.dir, path)
		if err != nil {
			return fmt.Errorf("relative path of %s: %w", path, err)
		}
		rel = filepath.ToSlash(rel)
		if !t.patterns.Matches(rel) || !patterns.Matches(rel) {
			return nil
		}
		return fn(FileVisit{Path: path, RelPath: rel})
	})
}

var _ MinimalFileTree = (*DirectoryTree)(nil)

// SingletonTree is a minimal tree holding exactly one file.
type SingletonTree struct {
	Minimal
	file string
}

// NewSingletonTree creates a tree containing only file.
func NewSingletonTree(file string) *SingletonTree {
	return &SingletonTree{file: file}
}

// File returns the path of the single file.
func (t *SingletonTree) File() string { return t.file }

// DisplayName returns a short description of the tree.
func (t *SingletonTree) DisplayName() string {
	return fmt.Sprintf("file '%s'", t.file)
}

// VisitTree calls fn for the file when it exists and its base name is
// matched by patterns.
func (t *SingletonTree) VisitTree(fn VisitFunc, patterns *PatternSet) error {
	if _, err := os.Stat(t.file); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	rel := filepath.Base(t.file)
	if !patterns.Matches(rel) {
		return nil
	}
	return fn(FileVisit{Path: t.file, RelPath: rel})
}

var _ MinimalFileTree = (*SingletonTree)(nil)
