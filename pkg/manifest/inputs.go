package manifest

import (
	"path/filepath"

	"github.com/matzehuels/filectx/pkg/errors"
	"github.com/matzehuels/filectx/pkg/files"
	"github.com/matzehuels/filectx/pkg/resolve"
)

// convertInputs turns decoded input values into resolvable elements.
func convertInputs(values []any, base, where string) ([]any, error) {
	out := make([]any, 0, len(values))
	for i, v := range values {
		in, err := convertInput(v, base)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "%s[%d]", where, i)
		}
		out = append(out, in)
	}
	return out, nil
}

func convertInput(v any, base string) (any, error) {
	switch x := v.(type) {
	case string:
		if errors.HasGlobMeta(x) {
			if err := errors.ValidatePattern(x); err != nil {
				return nil, err
			}
			return globInput(base, x), nil
		}
		if err := errors.ValidatePath(x); err != nil {
			return nil, err
		}
		return files.Path(filepath.ToSlash(x)), nil
	case []any:
		out := make([]any, 0, len(x))
		for _, e := range x {
			in, err := convertInput(e, base)
			if err != nil {
				return nil, err
			}
			out = append(out, in)
		}
		return out, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidManifest, "unsupported input %v of type %T", v, v)
}

// globInput expands pattern against base each time it is unpacked.
func globInput(base, pattern string) resolve.Supplier {
	return func() (any, error) {
		p := filepath.FromSlash(pattern)
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		return files.Glob(p)
	}
}
