package manifest

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/matzehuels/filectx/pkg/errors"
)

type hclManifest struct {
	BaseDir string      `hcl:"base_dir,optional"`
	Inputs  cty.Value   `hcl:"inputs,optional"`
	Groups  []*hclGroup `hcl:"group,block"`
	Tasks   []*hclTask  `hcl:"task,block"`
	Trees   []*hclTree  `hcl:"tree,block"`
}

type hclGroup struct {
	Name    string    `hcl:"name,label"`
	BaseDir string    `hcl:"base_dir,optional"`
	Inputs  cty.Value `hcl:"inputs,optional"`
}

type hclTask struct {
	Name      string    `hcl:"name,label"`
	Outputs   cty.Value `hcl:"outputs,optional"`
	DependsOn []string  `hcl:"depends_on,optional"`
}

type hclTree struct {
	Name    string   `hcl:"name,label"`
	Dir     string   `hcl:"dir"`
	Include []string `hcl:"include,optional"`
	Exclude []string `hcl:"exclude,optional"`
}

func decodeHCL(path string) (*rawManifest, error) {
	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, diags, "cannot parse %s", path)
	}

	var m hclManifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, diags, "cannot decode %s", path)
	}

	raw := &rawManifest{BaseDir: m.BaseDir}
	var err error
	if raw.Inputs, err = ctyList(m.Inputs, "inputs"); err != nil {
		return nil, err
	}
	for _, g := range m.Groups {
		inputs, err := ctyList(g.Inputs, "group "+g.Name+" inputs")
		if err != nil {
			return nil, err
		}
		raw.Groups = append(raw.Groups, rawGroup{Name: g.Name, BaseDir: g.BaseDir, Inputs: inputs})
	}
	for _, t := range m.Tasks {
		outputs, err := ctyList(t.Outputs, "task "+t.Name+" outputs")
		if err != nil {
			return nil, err
		}
		raw.Tasks = append(raw.Tasks, rawTask{Name: t.Name, Outputs: outputs, DependsOn: t.DependsOn})
	}
	for _, t := range m.Trees {
		raw.Trees = append(raw.Trees, rawTree{Name: t.Name, Dir: t.Dir, Include: t.Include, Exclude: t.Exclude})
	}
	return raw, nil
}

// ctyList converts an optional list or tuple attribute into a slice.
func ctyList(val cty.Value, where string) ([]any, error) {
	v, err := ctyToNative(val)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "%s", where)
	}
	switch x := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return x, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidManifest, "%s must be a list", where)
}

// ctyToNative converts strings, lists and tuples into Go values.
func ctyToNative(val cty.Value) (any, error) {
	if val.IsNull() || !val.IsKnown() {
		return nil, nil
	}
	ty := val.Type()
	switch {
	case ty == cty.String:
		return val.AsString(), nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := []any{}
		for it := val.ElementIterator(); it.Next(); {
			_, v := it.Element()
			native, err := ctyToNative(v)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidManifest, "unsupported value of type %s", ty.FriendlyName())
}
