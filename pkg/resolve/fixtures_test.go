package resolve

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/filectx/pkg/files"
)

// fixture creates files and directories below a temporary root and returns
// the root. Entries ending in "/" are created as empty directories.
func fixture(t *testing.T, entries ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, e := range entries {
		p := filepath.Join(root, filepath.FromSlash(e))
		if e[len(e)-1] == '/' {
			if err := os.MkdirAll(p, 0755); err != nil {
				t.Fatalf("mkdir %s: %v", e, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", e, err)
		}
		if err := os.WriteFile(p, []byte(e), 0644); err != nil {
			t.Fatalf("write %s: %v", e, err)
		}
	}
	return root
}

type entry struct {
	Name  string
	Files []string
}

func describeTrees(t *testing.T, trees []files.FileTree) []entry {
	t.Helper()
	out := make([]entry, 0, len(trees))
	for _, tr := range trees {
		fs, err := tr.Files()
		if err != nil {
			t.Fatalf("Files(%s): %v", tr.DisplayName(), err)
		}
		out = append(out, entry{Name: tr.DisplayName(), Files: fs})
	}
	return out
}

func describeCollections(t *testing.T, cs []files.FileCollection) []entry {
	t.Helper()
	out := make([]entry, 0, len(cs))
	for _, c := range cs {
		fs, err := c.Files()
		if err != nil {
			t.Fatalf("Files(%s): %v", c.DisplayName(), err)
		}
		out = append(out, entry{Name: c.DisplayName(), Files: fs})
	}
	return out
}

func displayNames[T interface{ DisplayName() string }](items []T) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.DisplayName())
	}
	return out
}

// outputs is a TaskOutputs backed by a fixed value.
type outputs struct{ files any }

func (o outputs) OutputFiles() any { return o.files }

// task is a named unit of work.
type task struct {
	name      string
	outputs   any
	dependsOn []string
}

func (t *task) Name() string         { return t.name }
func (t *task) Outputs() TaskOutputs { return outputs{files: t.outputs} }
func (t *task) DependsOn() []string  { return t.dependsOn }

// marker only carries dependency information.
type marker struct{ names []string }

func (m marker) DependsOn() []string { return m.names }

// containerFunc adapts a function to Container.
type containerFunc func(ResolveContext) error

func (f containerFunc) VisitContents(ctx ResolveContext) error { return f(ctx) }

// opaqueMinimal is a minimal collection that is neither a tree nor a set.
type opaqueMinimal struct{ files.Minimal }

func (opaqueMinimal) DisplayName() string { return "opaque" }

// iterable is an Iterable over fixed elements.
type iterable []any

func (it iterable) Elements() []any { return it }

// deferredValue is a Deferred implementation.
type deferredValue struct {
	v   any
	err error
}

func (d deferredValue) Unpack() (any, error) { return d.v, d.err }
