package resolve

import (
	"testing"
	"time"

	"github.com/matzehuels/filectx/pkg/files"
	"github.com/matzehuels/filectx/pkg/observability"
)

type recordedElement struct {
	depth int
	kind  string
}

type recordingHooks struct {
	observability.NoopResolveHooks
	starts    []string
	elements  []recordedElement
	completes []int
}

func (h *recordingHooks) OnResolveStart(shape string, pending int) {
	h.starts = append(h.starts, shape)
}

func (h *recordingHooks) OnElement(shape string, depth int, k string, value any) {
	h.elements = append(h.elements, recordedElement{depth: depth, kind: k})
}

func (h *recordingHooks) OnResolveComplete(shape string, entries int, d time.Duration, err error) {
	h.completes = append(h.completes, entries)
}

func TestResolveHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetResolveHooks(hooks)
	t.Cleanup(observability.Reset)

	ctx := New(files.NewResolver(t.TempDir()))
	ctx.Add([]any{files.Path("a.txt")})
	ctx.Push(nil).Add("b.txt")

	if _, err := ctx.ResolveAsMinimalFileCollections(); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	wantStarts := []string{ShapeMinimalFileCollections, ShapeMinimalFileCollections}
	if len(hooks.starts) != len(wantStarts) {
		t.Fatalf("starts = %v, want %v", hooks.starts, wantStarts)
	}

	want := []recordedElement{
		{0, "sequence"},
		{1, "path"},
		{2, "leaf"},
		{0, "context"},
		{1, "leaf"},
	}
	if len(hooks.elements) != len(want) {
		t.Fatalf("elements = %v, want %v", hooks.elements, want)
	}
	for i := range want {
		if hooks.elements[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, hooks.elements[i], want[i])
		}
	}

	// The nested pass completes before the outer one.
	if len(hooks.completes) != 2 || hooks.completes[0] != 1 || hooks.completes[1] != 2 {
		t.Errorf("completes = %v, want [1 2]", hooks.completes)
	}
}

func TestElementDepthContinuesThroughNestedContexts(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetResolveHooks(hooks)
	t.Cleanup(observability.Reset)

	ctx := New(files.NewResolver(t.TempDir()))
	ctx.Add(containerFunc(func(c ResolveContext) error {
		c.Push(nil).Add([]any{"a.txt"})
		return nil
	}))

	if _, err := ctx.ResolveAsFileCollections(); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := []recordedElement{
		{0, "container"},
		{1, "context"},
		{2, "sequence"},
		{3, "leaf"},
	}
	if len(hooks.elements) != len(want) {
		t.Fatalf("elements = %v, want %v", hooks.elements, want)
	}
	for i := range want {
		if hooks.elements[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, hooks.elements[i], want[i])
		}
	}
}
