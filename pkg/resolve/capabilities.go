package resolve

import "github.com/matzehuels/filectx/pkg/files"

// ResolveContext is the surface a [Container] populates.
type ResolveContext interface {
	// Add enqueues an element. Absent values are ignored.
	Add(element any)
	// Push enqueues a child context bound to r and returns it.
	Push(r PathResolver) ResolveContext
}

// PathResolver turns an opaque leaf value into a concrete file system path.
type PathResolver interface {
	Resolve(v any) (string, error)
}

// FileResolver is a PathResolver that also supplies the pattern sets used
// when building file trees.
type FileResolver interface {
	PathResolver
	PatternSetFactory() files.PatternSetFactory
}

// Container contributes its contents to a resolution pass.
type Container interface {
	VisitContents(ctx ResolveContext) error
}

// Task is a unit of work whose declared outputs can be used as inputs.
type Task interface {
	Outputs() TaskOutputs
}

// TaskOutputs describes the files a task produces.
type TaskOutputs interface {
	OutputFiles() any
}

// Named is implemented by tasks that can be referred to as dependencies.
type Named interface {
	Name() string
}

// BuildDependency is implemented by values that only carry dependency
// information. Outside of a [Task] such values contribute no files.
type BuildDependency interface {
	DependsOn() []string
}

// PathConvertible is a structured path that is not yet an OS path.
type PathConvertible interface {
	ToPath() string
}

// Iterable is a sequence of elements.
type Iterable interface {
	Elements() []any
}

var (
	_ FileResolver    = (*files.Resolver)(nil)
	_ PathConvertible = files.Path("")
)
