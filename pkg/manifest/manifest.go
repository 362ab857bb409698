package manifest

import (
	"github.com/matzehuels/filectx/pkg/files"
	"github.com/matzehuels/filectx/pkg/resolve"
)

// Manifest is a loaded input manifest.
type Manifest struct {
	Path    string // Absolute path of the manifest file
	Format  string // "toml" or "hcl"
	BaseDir string // Absolute base directory for relative inputs
	Inputs  []any  // Top-level inputs
	Groups  []*Group
	Tasks   []*Task
	Trees   []*Tree

	resolver *files.Resolver
}

// Group is a set of inputs rooted at its own base directory.
type Group struct {
	Name    string
	BaseDir string // Absolute
	Inputs  []any

	resolver *files.Resolver
}

// Task is a declared unit of work. Its outputs are resolved like inputs.
type Task struct {
	name      string
	outputs   []any
	dependsOn []string
}

// Name returns the task name.
func (t *Task) Name() string { return t.name }

// DependsOn returns the names of the tasks this task depends on.
func (t *Task) DependsOn() []string { return t.dependsOn }

// Outputs returns the declared outputs of the task.
func (t *Task) Outputs() resolve.TaskOutputs { return taskOutputs{t} }

type taskOutputs struct{ task *Task }

func (o taskOutputs) OutputFiles() any { return o.task.outputs }

// Tree is a directory tree filtered by include and exclude patterns.
type Tree struct {
	Name     string
	Dir      string // Absolute
	Patterns *files.PatternSet
}

// DirectoryTree returns the minimal tree described by t.
func (t *Tree) DirectoryTree() *files.DirectoryTree {
	return files.NewDirectoryTree(t.Dir, t.Patterns)
}

// Len returns the number of top-level entries in the manifest.
func (m *Manifest) Len() int {
	return len(m.Inputs) + len(m.Groups) + len(m.Tasks) + len(m.Trees)
}

// String returns a short description of the manifest.
func (m *Manifest) String() string { return "manifest '" + m.Path + "'" }

// Resolver returns the resolver rooted at the manifest's base directory.
func (m *Manifest) Resolver() *files.Resolver { return m.resolver }

// VisitContents contributes the manifest's inputs to ctx.
func (m *Manifest) VisitContents(ctx resolve.ResolveContext) error {
	root := ctx.Push(m.resolver)
	for _, in := range m.Inputs {
		root.Add(in)
	}
	for _, g := range m.Groups {
		sub := root.Push(g.resolver)
		for _, in := range g.Inputs {
			sub.Add(in)
		}
	}
	for _, t := range m.Tasks {
		root.Add(t)
	}
	for _, t := range m.Trees {
		root.Add(t.DirectoryTree())
	}
	return nil
}

var (
	_ resolve.Container       = (*Manifest)(nil)
	_ resolve.Task            = (*Task)(nil)
	_ resolve.Named           = (*Task)(nil)
	_ resolve.BuildDependency = (*Task)(nil)
)
