package resolve

import (
	"iter"
	"maps"
	"net/url"
	"slices"
	"testing"

	"github.com/matzehuels/filectx/pkg/files"
)

func TestClassify(t *testing.T) {
	var seq iter.Seq[any] = func(func(any) bool) {}

	tests := []struct {
		name string
		v    any
		want kind
	}{
		{"nil", nil, kindAbsent},
		{"nil pointer", (*task)(nil), kindAbsent},
		{"nil slice", []string(nil), kindAbsent},
		{"context", New(nil), kindContext},
		{"container", containerFunc(func(ResolveContext) error { return nil }), kindContainer},
		{"minimal set", files.NewListBackedFileSet("/a"), kindCollection},
		{"minimal tree", files.NewDirectoryTree("/a", nil), kindCollection},
		{"rich tree", files.NewTreeAdapter(files.NewSingletonTree("/a"), nil), kindCollection},
		{"task", &task{name: "t"}, kindTask},
		{"task outputs", outputs{files: "a"}, kindOutputs},
		{"supplier", Supplier(func() (any, error) { return nil, nil }), kindDeferred},
		{"func any", func() any { return nil }, kindDeferred},
		{"deferred", deferredValue{}, kindDeferred},
		{"path", files.Path("a"), kindPath},
		{"array", [1]string{"a"}, kindArray},
		{"slice", []string{"a"}, kindSequence},
		{"iter.Seq", seq, kindSequence},
		{"typed iter.Seq", slices.Values([]string{"a"}), kindSequence},
		{"iter.Seq2", maps.All(map[string]int{"a": 1}), kindLeaf},
		{"plain func", func(int) {}, kindLeaf},
		{"iterable", iterable{"a"}, kindSequence},
		{"bytes", []byte("a"), kindLeaf},
		{"string", "a", kindLeaf},
		{"url", &url.URL{Scheme: "file", Path: "/a"}, kindLeaf},
		{"marker", marker{}, kindLeaf},
		{"map", map[string]string{"a": "b"}, kindLeaf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.v); got != tt.want {
				t.Errorf("classify(%T) = %s, want %s", tt.v, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if kindOutputs.String() != "task outputs" {
		t.Errorf("kindOutputs.String() = %q", kindOutputs.String())
	}
	if kind(99).String() != "unknown" {
		t.Errorf("kind(99).String() = %q", kind(99).String())
	}
}
