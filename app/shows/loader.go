package shows

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile is the YAML shape of an optional registry seed file:
//
//	shows:
//	  - name: Dimension 20
//	    aliases:
//	      - d20
type seedFile struct {
	Shows []seedShow `yaml:"shows"`
}

type seedShow struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// LoadSeedFile registers the shows listed in a YAML seed file on top
// of the builtin table. Returns the number of shows loaded.
func (r *Registry) LoadSeedFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read shows file: %w", err)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return 0, fmt.Errorf("failed to parse shows file: %w", err)
	}

	for i, s := range seed.Shows {
		if s.Name == "" {
			return 0, fmt.Errorf("show at index %d is missing a name", i)
		}
	}

	for _, s := range seed.Shows {
		show := r.Register(s.Name, s.Aliases...)
		slog.Debug("Show loaded from seed file", "name", show.Name, "slug", show.Slug)
	}

	return len(seed.Shows), nil
}
