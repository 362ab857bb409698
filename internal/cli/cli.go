// Package cli implements the filectx command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/filectx/pkg/buildinfo"
	"github.com/matzehuels/filectx/pkg/files"
	"github.com/matzehuels/filectx/pkg/resolve"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "filectx"

	// defaultMaxDepth bounds input nesting for every command.
	defaultMaxDepth = 256
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	maxDepth int
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		maxDepth: defaultMaxDepth,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "filectx resolves heterogeneous inputs into file trees and collections",
		Long: `filectx loads input manifests and resolves everything they declare
(paths, globs, groups, task outputs, directory trees) into flat lists of
file trees, file collections or minimal file collections.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().IntVar(&c.maxDepth, "max-depth", defaultMaxDepth, "maximum input nesting depth (0 disables the guard)")

	// Register all subcommands
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.depsCommand())
	root.AddCommand(c.explainCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Context Factory
// =============================================================================

// workingResolver resolves relative command-line paths against the current
// working directory.
func workingResolver() (*files.Resolver, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return files.NewResolver(wd), nil
}

// newContext creates a resolution context rooted at the working directory.
func (c *CLI) newContext() (*resolve.Context, error) {
	r, err := workingResolver()
	if err != nil {
		return nil, err
	}
	return resolve.New(r, c.options()...), nil
}

// newDependencyContext creates a dependency context rooted at the working
// directory.
func (c *CLI) newDependencyContext() (*resolve.DependencyContext, error) {
	r, err := workingResolver()
	if err != nil {
		return nil, err
	}
	return resolve.NewDependencyContext(r, c.options()...), nil
}

func (c *CLI) options() []resolve.Option {
	return []resolve.Option{resolve.WithMaxDepth(c.maxDepth)}
}
