package manifest

import (
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/filectx/pkg/errors"
)

// rawManifest is the decoded form shared by both formats.
type rawManifest struct {
	BaseDir string     `toml:"base_dir"`
	Inputs  []any      `toml:"inputs"`
	Groups  []rawGroup `toml:"group"`
	Tasks   []rawTask  `toml:"task"`
	Trees   []rawTree  `toml:"tree"`
}

type rawGroup struct {
	Name    string `toml:"name"`
	BaseDir string `toml:"base_dir"`
	Inputs  []any  `toml:"inputs"`
}

type rawTask struct {
	Name      string   `toml:"name"`
	Outputs   []any    `toml:"outputs"`
	DependsOn []string `toml:"depends_on"`
}

type rawTree struct {
	Name    string   `toml:"name"`
	Dir     string   `toml:"dir"`
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

func decodeTOML(path string) (*rawManifest, error) {
	var raw rawManifest
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "cannot parse %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, errors.New(errors.ErrCodeInvalidManifest, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &raw, nil
}
