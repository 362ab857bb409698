package files

import (
	"fmt"
	"slices"
)

// ListBackedFileSet is a minimal file set backed by a fixed list of paths.
type ListBackedFileSet struct {
	Minimal
	files []string
}

// NewListBackedFileSet creates a minimal set holding paths in order.
func NewListBackedFileSet(paths ...string) *ListBackedFileSet {
	return &ListBackedFileSet{files: slices.Clone(paths)}
}

// DisplayName returns a short description of the set.
func (s *ListBackedFileSet) DisplayName() string {
	if len(s.files) == 1 {
		return fmt.Sprintf("file '%s'", s.files[0])
	}
	return fmt.Sprintf("file set (%d files)", len(s.files))
}

// FileSet returns a copy of the paths in the set.
func (s *ListBackedFileSet) FileSet() ([]string, error) {
	return slices.Clone(s.files), nil
}

var _ MinimalFileSet = (*ListBackedFileSet)(nil)
