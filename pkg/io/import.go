package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/filectx/pkg/errors"
	"github.com/matzehuels/filectx/pkg/files"
	"github.com/matzehuels/filectx/pkg/resolve"
)

// ReadJSON decodes a result previously written by [WriteJSON].
//
// Every entry must have a kind and a name. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Result, error) {
	var res Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode result")
	}
	for i, e := range res.Entries {
		if e.Kind == "" || e.Name == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "entry %d: kind and name are required", i)
		}
	}
	return &res, nil
}

// ImportJSON reads a result from the JSON file at path.
func ImportJSON(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "result not found: %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// VisitContents contributes each entry with files as a minimal file set, so
// an exported result can be fed back into a resolution pass.
func (r *Result) VisitContents(ctx resolve.ResolveContext) error {
	for _, e := range r.Entries {
		if len(e.Files) == 0 {
			continue
		}
		ctx.Add(files.NewListBackedFileSet(e.Files...))
	}
	return nil
}

var _ resolve.Container = (*Result)(nil)
