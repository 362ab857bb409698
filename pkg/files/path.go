package files

import "path/filepath"

// Path is a slash-separated path that has not yet been turned into an OS
// path. Relative paths are resolved against whichever resolver is active
// when the path is resolved, not when it is created.
type Path string

// ToPath returns the path in OS form.
func (p Path) ToPath() string {
	return filepath.FromSlash(string(p))
}

// String returns the slash-separated form.
func (p Path) String() string { return string(p) }
