package files

import (
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/filectx/pkg/errors"
)

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, "main.go", "doc.md", "cmd/app/main.go", "cmd/app/main_test.go", "pkg/x.go")

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"top level", "*.go", []string{"main.go"}},
		{"recursive", "**/*.go", []string{"cmd/app/main.go", "cmd/app/main_test.go", "main.go", "pkg/x.go"}},
		{"static prefix", "cmd/**/*_test.go", []string{"cmd/app/main_test.go"}},
		{"character class", "[dm]*.md", []string{"doc.md"}},
		{"alternation", "{doc,main}.*", []string{"doc.md", "main.go"}},
		{"recursive alternation", "**/*.{md,go}", []string{"cmd/app/main.go", "cmd/app/main_test.go", "doc.md", "main.go", "pkg/x.go"}},
		{"missing static prefix", "vendor/**/*.go", nil},
		{"literal file", "pkg/x.go", []string{"pkg/x.go"}},
		{"literal missing", "pkg/y.go", nil},
		{"no match", "**/*.rs", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Glob(filepath.Join(dir, filepath.FromSlash(tt.pattern)))
			if err != nil {
				t.Fatalf("Glob: %v", err)
			}
			want := make([]string, 0, len(tt.want))
			for _, rel := range tt.want {
				want = append(want, filepath.Join(dir, filepath.FromSlash(rel)))
			}
			if !slices.Equal(got, want) {
				t.Errorf("Glob(%q) = %v, want %v", tt.pattern, got, want)
			}
		})
	}
}

func TestGlobInvalidPattern(t *testing.T) {
	_, err := Glob("src/[a-")
	if !errors.Is(err, errors.ErrCodeInvalidPattern) {
		t.Errorf("err = %v, want %s", err, errors.ErrCodeInvalidPattern)
	}
}
