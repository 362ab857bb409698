package resolve

import (
	"time"

	"github.com/matzehuels/filectx/pkg/errors"
	"github.com/matzehuels/filectx/pkg/files"
	"github.com/matzehuels/filectx/pkg/observability"
)

// Option configures a [Context].
type Option func(*options)

type options struct {
	maxDepth int
}

// WithMaxDepth fails a drain once inputs nest deeper than n levels.
// Values of n <= 0 leave nesting unguarded, which is the default.
func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}

// converters holds the strategies shared by a context and all its children.
type converters struct {
	trees       converter[files.FileTree]
	collections converter[files.FileCollection]
	minimal     converter[files.MinimalFileCollection]
}

// Context collects pending inputs and resolves them into one result shape.
type Context struct {
	queue    queue
	resolver PathResolver
	conv     *converters
	opts     options

	// base is the nesting depth of this context's elements. It is set when
	// the context is reached as a nested element of another pass.
	base int
}

var _ ResolveContext = (*Context)(nil)

// New creates a root context. Leaf values are resolved with r and file trees
// are filtered with the pattern sets r supplies. A nil r, including a typed
// nil pointer, resolves relative paths against the working directory.
func New(r FileResolver, opts ...Option) *Context {
	if isAbsent(r) {
		r = &files.Resolver{}
	}
	patterns := r.PatternSetFactory()
	if patterns == nil {
		patterns = files.DefaultPatterns
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Context{
		resolver: r,
		opts:     o,
		conv: &converters{
			trees:       treeConverter{patterns: patterns},
			collections: collectionConverter{patterns: patterns},
			minimal:     minimalConverter{},
		},
	}
}

// Add enqueues element. Absent values are ignored.
func (c *Context) Add(element any) {
	if isAbsent(element) {
		return
	}
	c.queue.push(element)
}

// Push creates a child context bound to r, enqueues it and returns it so the
// caller can populate it. A nil r, including a typed nil pointer, keeps the
// current resolver.
func (c *Context) Push(r PathResolver) ResolveContext {
	child := c.NewContextWith(r)
	c.Add(child)
	return child
}

// NewContext returns a detached child context sharing the resolver,
// converters and options of c.
func (c *Context) NewContext() *Context {
	return c.NewContextWith(c.resolver)
}

// NewContextWith returns a detached child context bound to r. The child is
// not enqueued anywhere. A nil r keeps the current resolver.
func (c *Context) NewContextWith(r PathResolver) *Context {
	if isAbsent(r) {
		r = c.resolver
	}
	return &Context{resolver: r, conv: c.conv, opts: c.opts}
}

// Len returns the number of pending elements.
func (c *Context) Len() int { return c.queue.len() }

// ResolveAsFileTrees drains the context into file trees.
func (c *Context) ResolveAsFileTrees() ([]files.FileTree, error) {
	return drain(c, c.conv.trees)
}

// ResolveAsFileCollections drains the context into file collections.
func (c *Context) ResolveAsFileCollections() ([]files.FileCollection, error) {
	return drain(c, c.conv.collections)
}

// ResolveAsMinimalFileCollections drains the context into minimal file
// collections.
func (c *Context) ResolveAsMinimalFileCollections() ([]files.MinimalFileCollection, error) {
	return drain(c, c.conv.minimal)
}

func drain[T any](c *Context, conv converter[T]) ([]T, error) {
	elems := c.queue.drain()
	hooks := observability.Resolve()
	shape := conv.shape()
	hooks.OnResolveStart(shape, len(elems))
	start := time.Now()

	out := make([]T, 0, len(elems))
	var err error
	for _, elem := range elems {
		if out, err = resolveElement(c, conv, elem, out, c.base); err != nil {
			hooks.OnResolveComplete(shape, 0, time.Since(start), err)
			return nil, err
		}
	}

	hooks.OnResolveComplete(shape, len(out), time.Since(start), nil)
	return out, nil
}

// resolveElement expands elem and appends its converted entries to out.
func resolveElement[T any](c *Context, conv converter[T], elem any, out []T, depth int) ([]T, error) {
	if err := c.opts.checkDepth(depth); err != nil {
		return out, err
	}

	k := classify(elem)
	observability.Resolve().OnElement(conv.shape(), depth, k.String(), elem)

	switch k {
	case kindAbsent:
		return out, nil

	case kindContext:
		nested := elem.(*Context)
		nested.base = depth + 1
		return conv.convertInto(nested, out, c.resolver)

	case kindContainer:
		child := c.NewContext()
		if err := elem.(Container).VisitContents(child); err != nil {
			return out, err
		}
		var err error
		for _, e := range child.queue.drain() {
			if out, err = resolveElement(child, conv, e, out, depth+1); err != nil {
				return out, err
			}
		}
		return out, nil

	case kindTask:
		return resolveElement(c, conv, elem.(Task).Outputs(), out, depth+1)

	case kindOutputs:
		return resolveElement(c, conv, elem.(TaskOutputs).OutputFiles(), out, depth+1)

	case kindDeferred:
		v, err := unpack(elem)
		if err != nil {
			return out, err
		}
		return resolveElement(c, conv, v, out, depth+1)

	case kindPath:
		return resolveElement(c, conv, elem.(PathConvertible).ToPath(), out, depth+1)

	case kindArray:
		elem = sliceOf(elem)
		fallthrough

	case kindSequence:
		var err error
		for m := range members(elem) {
			if out, err = resolveElement(c, conv, m, out, depth+1); err != nil {
				return out, err
			}
		}
		return out, nil
	}

	return conv.convertInto(elem, out, c.resolver)
}

func (o options) checkDepth(depth int) error {
	if o.maxDepth > 0 && depth > o.maxDepth {
		return errors.New(errors.ErrCodeNestingTooDeep, "inputs nest deeper than %d levels", o.maxDepth)
	}
	return nil
}
