package explain

import (
	"fmt"
	"reflect"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/davecgh/go-spew/spew"

	"github.com/matzehuels/filectx/pkg/observability"
	"github.com/matzehuels/filectx/pkg/resolve"
)

// Node is one element visited during resolution.
type Node struct {
	ID     int
	Parent int // -1 for top-level elements
	Depth  int
	Shape  string
	Kind   string
	Label  string
}

// Recorder implements observability.ResolveHooks and keeps every visited
// element in visit order.
type Recorder struct {
	mu     sync.Mutex
	nodes  []Node
	stack  []int
	passes int
	errs   []error
}

var _ observability.ResolveHooks = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OnResolveStart counts resolution passes.
func (r *Recorder) OnResolveStart(shape string, pending int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.passes++
}

// OnElement records an element below the last element recorded one level up.
func (r *Recorder) OnElement(shape string, depth int, kind string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	level := min(depth, len(r.stack))
	parent := -1
	if level > 0 {
		parent = r.stack[level-1]
	}

	id := len(r.nodes)
	r.nodes = append(r.nodes, Node{
		ID:     id,
		Parent: parent,
		Depth:  depth,
		Shape:  shape,
		Kind:   kind,
		Label:  Label(value),
	})
	r.stack = append(r.stack[:level], id)
}

// OnResolveComplete keeps failures for [Recorder.Errors].
func (r *Recorder) OnResolveComplete(shape string, entries int, d time.Duration, err error) {
	if err == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// Nodes returns a copy of the recorded nodes.
func (r *Recorder) Nodes() []Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Node(nil), r.nodes...)
}

// Passes returns the number of drains observed, nested ones included.
func (r *Recorder) Passes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.passes
}

// Errors returns the errors reported by failed drains.
func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nodes, r.stack, r.errs, r.passes = nil, nil, nil, 0
}

const maxLabelLen = 60

var labelConfig = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                2,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Label returns a short description of a resolution element.
func Label(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return "nil"
	case string:
		s = x
	case *resolve.Context:
		s = fmt.Sprintf("context (%d pending)", x.Len())
	case interface{ DisplayName() string }:
		s = x.DisplayName()
	case resolve.Named:
		s = "task '" + x.Name() + "'"
	case fmt.Stringer:
		s = x.String()
	default:
		if reflect.TypeOf(v).Kind() == reflect.Func {
			s = fmt.Sprintf("%T", v)
		} else {
			s = labelConfig.Sprintf("%v", v)
		}
	}
	return truncate(s, maxLabelLen)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-1]) + "…"
}
