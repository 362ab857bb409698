package files

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/filectx/pkg/errors"
)

// Resolver turns opaque values into concrete file-system paths relative to a
// base directory.
//
// Supported values:
//   - string: a path, or a "file:" URI
//   - [Path]: converted with ToPath
//   - *url.URL: must use the "file" scheme
//   - fmt.Stringer: its String form is treated as a path
//
// Anything else fails with [errors.ErrCodeResolution].
type Resolver struct {
	// BaseDir is the directory relative paths are joined to. Empty means the
	// process working directory.
	BaseDir string

	// Patterns creates the pattern sets used for directory trees. Nil
	// selects [DefaultPatterns].
	Patterns PatternSetFactory
}

// NewResolver creates a Resolver rooted at baseDir.
func NewResolver(baseDir string) *Resolver {
	return &Resolver{BaseDir: baseDir, Patterns: DefaultPatterns}
}

// PatternSetFactory returns the factory for directory tree pattern sets.
func (r *Resolver) PatternSetFactory() PatternSetFactory {
	if r.Patterns == nil {
		return DefaultPatterns
	}
	return r.Patterns
}

// Rebase returns a resolver rooted at dir, itself resolved against r.
// The pattern factory is shared.
func (r *Resolver) Rebase(dir string) (*Resolver, error) {
	base, err := r.Resolve(dir)
	if err != nil {
		return nil, err
	}
	return &Resolver{BaseDir: base, Patterns: r.Patterns}, nil
}

// Resolve converts v into a cleaned path.
func (r *Resolver) Resolve(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return r.resolveString(val)
	case Path:
		return r.resolveString(val.ToPath())
	case *url.URL:
		return r.resolveURL(val)
	case fmt.Stringer:
		return r.resolveString(val.String())
	default:
		return "", errors.New(errors.ErrCodeResolution, "cannot convert %T to a file path", v)
	}
}

func (r *Resolver) resolveString(s string) (string, error) {
	if s == "" {
		return "", errors.New(errors.ErrCodeResolution, "cannot resolve an empty path")
	}
	if strings.HasPrefix(s, "file:") {
		u, err := url.Parse(s)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeResolution, err, "cannot parse URI %q", s)
		}
		return r.resolveURL(u)
	}
	if filepath.IsAbs(s) {
		return filepath.Clean(s), nil
	}
	if r.BaseDir == "" {
		abs, err := filepath.Abs(s)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeResolution, err, "cannot resolve %q", s)
		}
		return abs, nil
	}
	return filepath.Join(r.BaseDir, s), nil
}

func (r *Resolver) resolveURL(u *url.URL) (string, error) {
	if u == nil {
		return "", errors.New(errors.ErrCodeResolution, "cannot resolve a nil URL")
	}
	if u.Scheme != "file" {
		return "", errors.New(errors.ErrCodeResolution, "cannot convert URL %q to a file path: only file: URLs are supported", u.String())
	}
	p := u.Path
	if p == "" {
		p = u.Opaque
	}
	return r.resolveString(filepath.FromSlash(p))
}

// IsDirectory reports whether path exists and is a directory.
func IsDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
