package files

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/matzehuels/filectx/pkg/errors"
)

// Glob returns the regular files matching pattern in lexical order.
//
// Unlike filepath.Glob, a "**" segment matches any number of directories and
// directories themselves are never returned. A pattern without meta
// characters matches itself when it names a regular file.
func Glob(pattern string) ([]string, error) {
	if err := errors.ValidatePattern(pattern); err != nil {
		return nil, err
	}

	segs := strings.Split(filepath.ToSlash(pattern), "/")
	i := 0
	for i < len(segs) && !errors.HasGlobMeta(segs[i]) {
		i++
	}
	if i == len(segs) {
		if IsFile(pattern) {
			return []string{filepath.Clean(pattern)}, nil
		}
		return []string{}, nil
	}

	root := strings.Join(segs[:i], "/")
	switch {
	case i == 0:
		root = "."
	case root == "":
		root = "/"
	}
	root = filepath.FromSlash(root)
	if !IsDirectory(root) {
		return []string{}, nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), strings.Join(segs[i:], "/"),
		doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "cannot expand %q", pattern)
	}

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, filepath.Join(root, filepath.FromSlash(m)))
	}
	slices.Sort(out)
	return out, nil
}
