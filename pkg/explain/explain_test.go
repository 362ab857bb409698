package explain

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/filectx/pkg/files"
	"github.com/matzehuels/filectx/pkg/observability"
	"github.com/matzehuels/filectx/pkg/resolve"
)

type tracedNode struct {
	Parent int
	Kind   string
	Label  string
}

func trace(nodes []Node) []tracedNode {
	out := make([]tracedNode, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, tracedNode{Parent: n.Parent, Kind: n.Kind, Label: n.Label})
	}
	return out
}

func TestRecorderBuildsTree(t *testing.T) {
	rec := NewRecorder()
	observability.SetResolveHooks(rec)
	t.Cleanup(observability.Reset)

	ctx := resolve.New(files.NewResolver("/work"))
	ctx.Add("README.md")
	ctx.Add([]any{files.Path("docs/a.md"), nil})
	ctx.Push(files.NewResolver("/vendor")).Add("lib.go")

	if _, err := ctx.ResolveAsMinimalFileCollections(); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	want := []tracedNode{
		{-1, "leaf", "README.md"},
		{-1, "sequence", "[docs/a.md <nil>]"},
		{1, "path", "docs/a.md"},
		{2, "leaf", "docs/a.md"},
		{1, "absent", "nil"},
		{-1, "context", "context (1 pending)"},
		{5, "leaf", "lib.go"},
	}
	if diff := cmp.Diff(want, trace(rec.Nodes())); diff != "" {
		t.Errorf("trace mismatch (-want +got):\n%s", diff)
	}
	if rec.Passes() != 2 {
		t.Errorf("Passes() = %d, want 2", rec.Passes())
	}
	if len(rec.Errors()) != 0 {
		t.Errorf("Errors() = %v, want none", rec.Errors())
	}

	rec.Reset()
	if len(rec.Nodes()) != 0 || rec.Passes() != 0 {
		t.Error("Reset() should discard recorded nodes")
	}
}

func TestRecorderKeepsErrors(t *testing.T) {
	rec := NewRecorder()
	observability.SetResolveHooks(rec)
	t.Cleanup(observability.Reset)

	ctx := resolve.New(nil)
	ctx.Add(3.5)
	if _, err := ctx.ResolveAsFileCollections(); err == nil {
		t.Fatal("resolving a float should fail")
	}
	if len(rec.Errors()) != 1 {
		t.Errorf("Errors() = %v, want one error", rec.Errors())
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"nil", nil, "nil"},
		{"string", "a.txt", "a.txt"},
		{"path", files.Path("a/b.txt"), "a/b.txt"},
		{"collection", files.NewListBackedFileSet("/a"), "file '/a'"},
		{"func", resolve.Lazy(func() any { return nil }), "resolve.Supplier"},
		{"slice", []string{"a", "b"}, "[a b]"},
		{"long", strings.Repeat("x", 100), strings.Repeat("x", maxLabelLen-1) + "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Label(tt.v); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToDOT(t *testing.T) {
	nodes := []Node{
		{ID: 0, Parent: -1, Kind: "sequence", Label: "[a]", Shape: resolve.ShapeFileTrees},
		{ID: 1, Parent: 0, Depth: 1, Kind: "leaf", Label: "a", Shape: resolve.ShapeFileTrees},
		{ID: 2, Parent: 0, Depth: 1, Kind: "absent", Label: "nil", Shape: resolve.ShapeFileTrees},
	}

	dot := ToDOT(nodes, Options{})
	for _, want := range []string{
		"digraph G {",
		`n0 [label="sequence\n[a]"];`,
		`n1 [label="leaf\na", fillcolor="#e8f5e9"];`,
		`n2 [label="absent\nnil", style="rounded,dashed", fontcolor=grey40];`,
		"n0 -> n1;",
		"n0 -> n2;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	detailed := ToDOT(nodes[:1], Options{Detailed: true})
	if !strings.Contains(detailed, `file trees, depth 0`) {
		t.Errorf("detailed DOT missing shape and depth:\n%s", detailed)
	}
}

func TestRenderSVG(t *testing.T) {
	dot := ToDOT([]Node{{ID: 0, Parent: -1, Kind: "leaf", Label: "a"}}, Options{})
	svg, err := RenderSVG(dot)
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) || !bytes.Contains(svg, []byte(`viewBox="0 0 `)) {
		t.Errorf("unexpected SVG output: %s", svg)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %q, want %q", got, want)
	}
	if unchanged := normalizeViewBox([]byte("<svg/>")); string(unchanged) != "<svg/>" {
		t.Errorf("svg without viewBox changed: %q", unchanged)
	}
}
