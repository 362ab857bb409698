package resolve

import (
	"iter"
	"reflect"

	"github.com/matzehuels/filectx/pkg/files"
)

// kind is the category an element is dispatched on.
type kind int

const (
	kindAbsent kind = iota
	kindContext
	kindContainer
	kindCollection
	kindTask
	kindOutputs
	kindDeferred
	kindPath
	kindArray
	kindSequence
	kindLeaf
)

var kindNames = [...]string{
	kindAbsent:     "absent",
	kindContext:    "context",
	kindContainer:  "container",
	kindCollection: "collection",
	kindTask:       "task",
	kindOutputs:    "task outputs",
	kindDeferred:   "deferred",
	kindPath:       "path",
	kindArray:      "array",
	kindSequence:   "sequence",
	kindLeaf:       "leaf",
}

func (k kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// classify returns the dispatch category of v. The checks run in dispatch
// order; absence is tested first since nil values carry no other capability.
func classify(v any) kind {
	if isAbsent(v) {
		return kindAbsent
	}
	switch v.(type) {
	case *Context:
		return kindContext
	case Container:
		return kindContainer
	case files.FileCollection, files.MinimalFileCollection:
		return kindCollection
	case Task:
		return kindTask
	case TaskOutputs:
		return kindOutputs
	}
	if isDeferred(v) {
		return kindDeferred
	}
	switch v.(type) {
	case PathConvertible:
		return kindPath
	case []byte:
		return kindLeaf
	case iter.Seq[any], func(func(any) bool), Iterable:
		return kindSequence
	}
	switch t := reflect.TypeOf(v); t.Kind() {
	case reflect.Array:
		return kindArray
	case reflect.Slice:
		return kindSequence
	case reflect.Func:
		if isSeqFunc(t) {
			return kindSequence
		}
	}
	return kindLeaf
}

// isSeqFunc reports whether t has the shape of iter.Seq[T] for some T.
func isSeqFunc(t reflect.Type) bool {
	if t.NumIn() != 1 || t.NumOut() != 0 {
		return false
	}
	yield := t.In(0)
	return yield.Kind() == reflect.Func &&
		yield.NumIn() == 1 && yield.NumOut() == 1 &&
		yield.Out(0).Kind() == reflect.Bool
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Slice:
		return rv.IsNil()
	}
	return false
}

// sliceOf returns a slice view of an array value.
func sliceOf(array any) any {
	rv := reflect.ValueOf(array)
	p := reflect.New(rv.Type())
	p.Elem().Set(rv)
	return p.Elem().Slice(0, rv.Len()).Interface()
}

// members yields the elements of a sequence in order.
func members(v any) iter.Seq[any] {
	switch s := v.(type) {
	case iter.Seq[any]:
		return s
	case func(func(any) bool):
		return s
	case Iterable:
		return func(yield func(any) bool) {
			for _, e := range s.Elements() {
				if !yield(e) {
					return
				}
			}
		}
	case []any:
		return func(yield func(any) bool) {
			for _, e := range s {
				if !yield(e) {
					return
				}
			}
		}
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Func {
		return func(yield func(any) bool) {
			for e := range rv.Seq() {
				if !yield(e.Interface()) {
					return
				}
			}
		}
	}
	return func(yield func(any) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).Interface()) {
				return
			}
		}
	}
}
