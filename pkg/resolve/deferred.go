package resolve

// Deferred is a value that has not been computed yet.
type Deferred interface {
	Unpack() (any, error)
}

// Supplier is a function-backed [Deferred] value.
type Supplier func() (any, error)

// Unpack calls s.
func (s Supplier) Unpack() (any, error) { return s() }

// Lazy returns a Supplier that calls fn.
func Lazy(fn func() any) Supplier {
	return func() (any, error) { return fn(), nil }
}

func isDeferred(v any) bool {
	switch v.(type) {
	case Deferred, func() any, func() (any, error):
		return true
	}
	return false
}

// unpack returns the underlying value of a deferred value, or v itself.
func unpack(v any) (any, error) {
	switch d := v.(type) {
	case Deferred:
		return d.Unpack()
	case func() (any, error):
		return d()
	case func() any:
		return d(), nil
	}
	return v, nil
}
