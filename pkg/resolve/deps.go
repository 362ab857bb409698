package resolve

import (
	"time"

	"github.com/matzehuels/filectx/pkg/observability"
)

// DependencyContext resolves inputs into the names of the tasks they depend
// on instead of into files.
//
// Tasks contribute their [Named.Name] and, like any other value, the names
// returned by [BuildDependency.DependsOn]. Nested contexts, containers and
// sequences are walked. Deferred values are not unpacked, so collecting
// dependencies never forces a computation.
type DependencyContext struct {
	queue    queue
	resolver PathResolver
	opts     options
	base     int
}

var _ ResolveContext = (*DependencyContext)(nil)

// NewDependencyContext creates a root dependency context.
func NewDependencyContext(r PathResolver, opts ...Option) *DependencyContext {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &DependencyContext{resolver: r, opts: o}
}

// Add enqueues element. Absent values are ignored.
func (c *DependencyContext) Add(element any) {
	if isAbsent(element) {
		return
	}
	c.queue.push(element)
}

// Push enqueues a child dependency context bound to r and returns it. A nil
// r keeps the current resolver.
func (c *DependencyContext) Push(r PathResolver) ResolveContext {
	if isAbsent(r) {
		r = c.resolver
	}
	child := &DependencyContext{resolver: r, opts: c.opts}
	c.Add(child)
	return child
}

// NewContext returns a detached child dependency context.
func (c *DependencyContext) NewContext() *DependencyContext {
	return &DependencyContext{resolver: c.resolver, opts: c.opts}
}

// Len returns the number of pending elements.
func (c *DependencyContext) Len() int { return c.queue.len() }

// Dependencies drains the context and returns the dependency names in order
// of first occurrence.
func (c *DependencyContext) Dependencies() ([]string, error) {
	elems := c.queue.drain()
	hooks := observability.Resolve()
	hooks.OnResolveStart(ShapeDependencies, len(elems))
	start := time.Now()

	deps := newDependencySet()
	for _, elem := range elems {
		if err := c.collect(elem, deps, c.base); err != nil {
			hooks.OnResolveComplete(ShapeDependencies, 0, time.Since(start), err)
			return nil, err
		}
	}

	hooks.OnResolveComplete(ShapeDependencies, len(deps.names), time.Since(start), nil)
	return deps.names, nil
}

func (c *DependencyContext) collect(elem any, deps *dependencySet, depth int) error {
	if err := c.opts.checkDepth(depth); err != nil {
		return err
	}

	if nested, ok := elem.(*DependencyContext); ok {
		observability.Resolve().OnElement(ShapeDependencies, depth, kindContext.String(), elem)
		for _, e := range nested.queue.drain() {
			if err := nested.collect(e, deps, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	k := classify(elem)
	observability.Resolve().OnElement(ShapeDependencies, depth, k.String(), elem)

	if b, ok := elem.(BuildDependency); ok {
		deps.add(b.DependsOn()...)
	}

	switch k {
	case kindContext:
		// File contexts are only inspected; their queue belongs to a file pass.
		for _, e := range elem.(*Context).queue.snapshot() {
			if err := c.collect(e, deps, depth+1); err != nil {
				return err
			}
		}

	case kindContainer:
		child := c.NewContext()
		if err := elem.(Container).VisitContents(child); err != nil {
			return err
		}
		for _, e := range child.queue.drain() {
			if err := child.collect(e, deps, depth+1); err != nil {
				return err
			}
		}

	case kindTask:
		if n, ok := elem.(Named); ok {
			deps.add(n.Name())
		}

	case kindArray:
		elem = sliceOf(elem)
		fallthrough

	case kindSequence:
		for m := range members(elem) {
			if err := c.collect(m, deps, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// dependencySet keeps names in order of first occurrence.
type dependencySet struct {
	seen  map[string]struct{}
	names []string
}

func newDependencySet() *dependencySet {
	return &dependencySet{seen: make(map[string]struct{}), names: []string{}}
}

func (s *dependencySet) add(names ...string) {
	for _, n := range names {
		if n == "" {
			continue
		}
		if _, ok := s.seen[n]; ok {
			continue
		}
		s.seen[n] = struct{}{}
		s.names = append(s.names, n)
	}
}
