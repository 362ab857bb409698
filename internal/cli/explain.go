package cli

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/filectx/pkg/errors"
	"github.com/matzehuels/filectx/pkg/explain"
	"github.com/matzehuels/filectx/pkg/observability"
)

// explainOpts holds the command-line flags for the explain command.
type explainOpts struct {
	shape    string
	output   string // .dot or .svg; DOT on stdout when empty
	detailed bool
}

// explainCommand creates the explain command, which traces how inputs are
// expanded during resolution and renders the trace as a graph.
func (c *CLI) explainCommand() *cobra.Command {
	opts := explainOpts{shape: shapeCollections}

	cmd := &cobra.Command{
		Use:   "explain [inputs...]",
		Short: "Trace how inputs expand during resolution",
		Long: `Resolve inputs while recording every element visited, then write the
trace as a Graphviz graph. Use -o trace.svg to render SVG directly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplain(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.shape, "as", opts.shape, "result shape: trees, collections, minimal")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .dot or .svg (default: DOT on stdout)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "add shape and depth to node labels")

	return cmd
}

func (c *CLI) runExplain(cmd *cobra.Command, args []string, opts explainOpts) error {
	if err := (resolveOpts{shape: opts.shape, format: formatText}).validate(); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(opts.output))
	if opts.output != "" && ext != ".dot" && ext != ".svg" {
		return errors.New(errors.ErrCodeInvalidInput, "unsupported output %q (want .dot or .svg)", filepath.Base(opts.output))
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

	rec := explain.NewRecorder()
	observability.SetResolveHooks(rec)

	prog := newProgress(logger)
	res, err := resolveShape(rc, opts.shape)
	if err != nil {
		// The partial trace is still worth rendering.
		logger.Warn("resolution failed", "err", errors.UserMessage(err))
	} else {
		prog.done(fmt.Sprintf("Traced %d elements into %d %s", len(rec.Nodes()), len(res.Entries), res.Shape))
	}

	dot := explain.ToDOT(rec.Nodes(), explain.Options{Detailed: opts.detailed})
	stdout := cmd.OutOrStdout()
	switch ext {
	case "":
		_, werr := io.WriteString(stdout, dot)
		if werr != nil {
			return werr
		}
		return err
	case ".svg":
		svg, rerr := explain.RenderSVG(dot)
		if rerr != nil {
			return rerr
		}
		if werr := writeFile(opts.output, func(w io.Writer) error {
			_, e := w.Write(svg)
			return e
		}); werr != nil {
			return werr
		}
	default:
		if werr := writeFile(opts.output, func(w io.Writer) error {
			_, e := io.WriteString(w, dot)
			return e
		}); werr != nil {
			return werr
		}
	}

	printSuccess(stdout, "Wrote trace")
	printFile(stdout, opts.output)
	printKeyValue(stdout, "elements", strconv.Itoa(len(rec.Nodes())))
	printKeyValue(stdout, "passes", strconv.Itoa(rec.Passes()))
	return err
}
