package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/filectx/pkg/errors"
	fio "github.com/matzehuels/filectx/pkg/io"
	"github.com/matzehuels/filectx/pkg/resolve"
)

const (
	shapeTrees       = "trees"
	shapeCollections = "collections"
	shapeMinimal     = "minimal"

	formatText = "text"
	formatJSON = "json"
)

// resolveOpts holds the command-line flags for the resolve command.
type resolveOpts struct {
	shape  string // trees, collections or minimal
	format string // text or json
	output string // output file path; stdout when empty
	pick   bool   // choose entries interactively before writing
}

// resolveCommand creates the resolve command.
func (c *CLI) resolveCommand() *cobra.Command {
	opts := resolveOpts{shape: shapeCollections, format: formatText}

	cmd := &cobra.Command{
		Use:   "resolve [inputs...]",
		Short: "Resolve inputs into file trees or collections",
		Long: `Resolve manifests (.toml, .hcl), exported results (.json), globs and
paths into a flat list of file trees, file collections or minimal file
collections.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runResolve(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.shape, "as", opts.shape, "result shape: trees, collections, minimal")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose entries interactively before writing")

	return cmd
}

func (c *CLI) runResolve(cmd *cobra.Command, args []string, opts resolveOpts) error {
	if err := opts.validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	defer installHooks(logger)()

	inputs, err := loadInputs(ctx, args)
	if err != nil {
		return err
	}

	rc, err := c.newContext()
	if err != nil {
		return err
	}
	for _, in := range inputs {
		rc.Add(in)
	}

	prog := newProgress(logger)
	res, err := resolveShape(rc, opts.shape)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Resolved %d %s", len(res.Entries), res.Shape))

	if opts.pick {
		if res.Entries, err = pickEntries(res.Entries, cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	return writeResult(cmd.OutOrStdout(), res, opts)
}

func (o resolveOpts) validate() error {
	switch o.shape {
	case shapeTrees, shapeCollections, shapeMinimal:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown shape %q (want %s, %s or %s)", o.shape, shapeTrees, shapeCollections, shapeMinimal)
	}
	switch o.format {
	case formatText, formatJSON:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown format %q (want %s or %s)", o.format, formatText, formatJSON)
	}
	return nil
}

// resolveShape drains rc into the requested shape and describes the result.
func resolveShape(rc *resolve.Context, shape string) (fio.Result, error) {
	var (
		res     fio.Result
		entries []fio.Entry
		err     error
	)
	switch shape {
	case shapeTrees:
		res.Shape = resolve.ShapeFileTrees
		entries, err = describeWith(rc.ResolveAsFileTrees)
	case shapeMinimal:
		res.Shape = resolve.ShapeMinimalFileCollections
		entries, err = describeWith(rc.ResolveAsMinimalFileCollections)
	default:
		res.Shape = resolve.ShapeFileCollections
		entries, err = describeWith(rc.ResolveAsFileCollections)
	}
	if err != nil {
		return fio.Result{}, err
	}
	res.Entries = entries
	return res, nil
}

func describeWith[T any](drain func() ([]T, error)) ([]fio.Entry, error) {
	items, err := drain()
	if err != nil {
		return nil, err
	}
	return fio.Entries(items)
}

// writeResult prints res to stdout or writes it to opts.output.
func writeResult(stdout io.Writer, res fio.Result, opts resolveOpts) error {
	if opts.output == "" {
		if opts.format == formatJSON {
			return fio.WriteJSON(res, stdout)
		}
		if len(res.Entries) == 0 && len(res.Dependencies) == 0 {
			printWarning(stdout, "nothing resolved")
			return nil
		}
		printEntries(stdout, res.Entries)
		for _, d := range res.Dependencies {
			fmt.Fprintln(stdout, StyleValue.Render(d))
		}
		if len(res.Entries) > 0 {
			printSummary(stdout, res.Shape, res.Entries)
		}
		return nil
	}

	format := opts.format
	if strings.EqualFold(filepath.Ext(opts.output), ".json") {
		format = formatJSON
	}
	if format == formatJSON {
		if err := fio.ExportJSON(res, opts.output); err != nil {
			return err
		}
	} else {
		err := writeFile(opts.output, func(w io.Writer) error {
			printEntries(w, res.Entries)
			for _, d := range res.Dependencies {
				fmt.Fprintln(w, d)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	printSuccess(stdout, "Wrote %s", res.Shape)
	printFile(stdout, opts.output)
	return nil
}

// writeFile creates path and passes it to fn.
func writeFile(path string, fn func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
