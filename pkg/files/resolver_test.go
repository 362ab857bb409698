package files

import (
	"net/url"
	"path/filepath"
	"testing"

	"github.com/matzehuels/filectx/pkg/errors"
)

type named string

func (n named) String() string { return string(n) }

func TestResolverResolve(t *testing.T) {
	base := t.TempDir()
	r := NewResolver(base)

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"relative string", "src/a.go", filepath.Join(base, "src", "a.go")},
		{"absolute string", filepath.Join(base, "x", "..", "y"), filepath.Join(base, "y")},
		{"structured path", Path("docs/readme.md"), filepath.Join(base, "docs", "readme.md")},
		{"file URI string", "file://" + filepath.ToSlash(filepath.Join(base, "u.txt")), filepath.Join(base, "u.txt")},
		{"file URL", &url.URL{Scheme: "file", Path: filepath.ToSlash(filepath.Join(base, "v.txt"))}, filepath.Join(base, "v.txt")},
		{"stringer", named("w.txt"), filepath.Join(base, "w.txt")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.in)
			if err != nil {
				t.Fatalf("Resolve(%v) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestResolverResolveErrors(t *testing.T) {
	r := NewResolver(t.TempDir())

	tests := []struct {
		name string
		in   any
	}{
		{"empty string", ""},
		{"int", 42},
		{"map", map[string]string{"a": "b"}},
		{"http URL", &url.URL{Scheme: "https", Host: "example.com"}},
		{"nil URL", (*url.URL)(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Resolve(tt.in)
			if err == nil {
				t.Fatalf("Resolve(%v) should fail", tt.in)
			}
			if !errors.Is(err, errors.ErrCodeResolution) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeResolution)
			}
		})
	}
}

func TestResolverRebase(t *testing.T) {
	base := t.TempDir()
	r := NewResolver(base)

	sub, err := r.Rebase("vendor")
	if err != nil {
		t.Fatalf("Rebase: %v", err)
	}
	got, err := sub.Resolve("lib.txt")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(base, "vendor", "lib.txt"); got != want {
		t.Errorf("Resolve = %q, want %q", got, want)
	}
}

func TestResolverEmptyBaseDirUsesWorkingDir(t *testing.T) {
	got, err := (&Resolver{}).Resolve("a.txt")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("Resolve = %q, want absolute path", got)
	}
}

func TestIsDirectoryIsFile(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "f.txt")
	file := filepath.Join(dir, "f.txt")

	if !IsDirectory(dir) || IsFile(dir) {
		t.Errorf("classification of %s is wrong", dir)
	}
	if IsDirectory(file) || !IsFile(file) {
		t.Errorf("classification of %s is wrong", file)
	}
	missing := filepath.Join(dir, "missing")
	if IsDirectory(missing) || IsFile(missing) {
		t.Errorf("missing path should be neither directory nor file")
	}
}
