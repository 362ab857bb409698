package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/matzehuels/filectx/pkg/errors"
	"github.com/matzehuels/filectx/pkg/files"
	"github.com/matzehuels/filectx/pkg/observability"
)

// Load reads the manifest at path. The format is chosen by extension.
func Load(path string) (*Manifest, error) {
	start := time.Now()
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	m, err := load(path, format)

	entries := 0
	if m != nil {
		entries = m.Len()
	}
	observability.Manifest().OnManifestLoad(path, format, entries, time.Since(start), err)
	return m, err
}

// LoadAll loads every manifest in paths, in order.
func LoadAll(paths ...string) ([]*Manifest, error) {
	out := make([]*Manifest, 0, len(paths))
	for _, p := range paths {
		m, err := Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func load(path, format string) (*Manifest, error) {
	if err := errors.ValidateManifestFilename(path); err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "cannot resolve %s", path)
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "manifest not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "cannot read %s", path)
	}

	var raw *rawManifest
	switch format {
	case "toml":
		raw, err = decodeTOML(abs)
	case "hcl":
		raw, err = decodeHCL(abs)
	}
	if err != nil {
		return nil, err
	}

	m, err := build(abs, raw)
	if err != nil {
		return nil, err
	}
	m.Format = format
	return m, nil
}

// build validates raw and resolves its directories against the manifest
// location.
func build(path string, raw *rawManifest) (*Manifest, error) {
	r := files.NewResolver(filepath.Dir(path))
	if raw.BaseDir != "" {
		if err := errors.ValidatePath(raw.BaseDir); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "base_dir")
		}
		rebased, err := r.Rebase(raw.BaseDir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "base_dir")
		}
		r = rebased
	}

	m := &Manifest{Path: path, BaseDir: r.BaseDir, resolver: r}

	var err error
	if m.Inputs, err = convertInputs(raw.Inputs, m.BaseDir, "inputs"); err != nil {
		return nil, err
	}

	names := newNameSet()
	for i, g := range raw.Groups {
		if err := names.claim("group", g.Name, i); err != nil {
			return nil, err
		}
		gr := r
		if g.BaseDir != "" {
			if err := errors.ValidatePath(g.BaseDir); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "group %q base_dir", g.Name)
			}
			if gr, err = r.Rebase(g.BaseDir); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "group %q base_dir", g.Name)
			}
		}
		inputs, err := convertInputs(g.Inputs, gr.BaseDir, "group "+g.Name+" inputs")
		if err != nil {
			return nil, err
		}
		m.Groups = append(m.Groups, &Group{Name: g.Name, BaseDir: gr.BaseDir, Inputs: inputs, resolver: gr})
	}

	for i, t := range raw.Tasks {
		if err := names.claim("task", t.Name, i); err != nil {
			return nil, err
		}
		for _, dep := range t.DependsOn {
			if err := errors.ValidateName(dep); err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "task %q depends_on", t.Name)
			}
		}
		outputs, err := convertInputs(t.Outputs, m.BaseDir, "task "+t.Name+" outputs")
		if err != nil {
			return nil, err
		}
		m.Tasks = append(m.Tasks, &Task{name: t.Name, outputs: outputs, dependsOn: t.DependsOn})
	}

	for i, t := range raw.Trees {
		if err := names.claim("tree", t.Name, i); err != nil {
			return nil, err
		}
		tree, err := buildTree(r, t)
		if err != nil {
			return nil, err
		}
		m.Trees = append(m.Trees, tree)
	}

	return m, nil
}

func buildTree(r *files.Resolver, t rawTree) (*Tree, error) {
	if t.Dir == "" {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "tree %q: dir is required", t.Name)
	}
	if err := errors.ValidatePath(t.Dir); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "tree %q dir", t.Name)
	}
	for _, p := range append(append([]string{}, t.Include...), t.Exclude...) {
		if err := errors.ValidatePattern(p); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "tree %q", t.Name)
		}
	}
	dir, err := r.Resolve(files.Path(filepath.ToSlash(t.Dir)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "tree %q dir", t.Name)
	}
	return &Tree{
		Name:     t.Name,
		Dir:      dir,
		Patterns: &files.PatternSet{Includes: t.Include, Excludes: t.Exclude},
	}, nil
}

// nameSet rejects duplicate names across groups, tasks and trees.
type nameSet map[string]string

func newNameSet() nameSet { return nameSet{} }

func (s nameSet) claim(kind, name string, index int) error {
	if err := errors.ValidateName(name); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidManifest, err, "%s %d", kind, index)
	}
	if prev, ok := s[name]; ok {
		return errors.New(errors.ErrCodeInvalidManifest, "%s %q: name already used by a %s", kind, name, prev)
	}
	s[name] = kind
	return nil
}
