package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/matzehuels/filectx/pkg/errors"
	"github.com/matzehuels/filectx/pkg/files"
	fio "github.com/matzehuels/filectx/pkg/io"
	"github.com/matzehuels/filectx/pkg/manifest"
	"github.com/matzehuels/filectx/pkg/resolve"
)

// loadInputs turns command-line arguments into resolution inputs:
//   - .toml and .hcl files are loaded as manifests
//   - .json files are loaded as previously exported results
//   - arguments with glob meta characters are expanded lazily
//   - anything else is passed through as a path
func loadInputs(ctx context.Context, args []string) ([]any, error) {
	logger := loggerFromContext(ctx)
	inputs := make([]any, 0, len(args))
	for _, arg := range args {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		in, err := loadInput(arg)
		if err != nil {
			return nil, err
		}
		logger.Debug("input", "arg", arg, "type", typeName(in))
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func loadInput(arg string) (any, error) {
	switch strings.ToLower(filepath.Ext(arg)) {
	case ".toml", ".hcl":
		return manifest.Load(arg)
	case ".json":
		return fio.ImportJSON(arg)
	}
	if errors.HasGlobMeta(arg) {
		if err := errors.ValidatePattern(arg); err != nil {
			return nil, err
		}
		return resolve.Supplier(func() (any, error) {
			return files.Glob(arg)
		}), nil
	}
	if err := errors.ValidatePath(arg); err != nil {
		return nil, err
	}
	return files.Path(arg), nil
}
