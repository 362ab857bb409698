package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	fio "github.com/matzehuels/filectx/pkg/io"
	"github.com/matzehuels/filectx/pkg/resolve"
)

// depsCommand creates the deps command, which lists the task names inputs
// depend on without resolving any files.
func (c *CLI) depsCommand() *cobra.Command {
	opts := resolveOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "deps [inputs...]",
		Short: "List the tasks that inputs depend on",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.shape = shapeCollections
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

			dc, err := c.newDependencyContext()
			if err != nil {
				return err
			}
			for _, in := range inputs {
				dc.Add(in)
			}

			prog := newProgress(logger)
			deps, err := dc.Dependencies()
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Found %d dependencies", len(deps)))

			res := fio.Result{Shape: resolve.ShapeDependencies, Dependencies: deps}
			return writeResult(cmd.OutOrStdout(), res, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")

	return cmd
}
