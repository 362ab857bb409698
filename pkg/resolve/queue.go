package resolve

// queue holds pending elements until a drain takes them.
type queue struct {
	items []any
}

func (q *queue) push(v any) { q.items = append(q.items, v) }

func (q *queue) len() int { return len(q.items) }

// drain returns the pending elements and leaves the queue empty.
func (q *queue) drain() []any {
	items := q.items
	q.items = nil
	return items
}

// snapshot returns a copy of the pending elements without consuming them.
func (q *queue) snapshot() []any {
	return append([]any(nil), q.items...)
}
