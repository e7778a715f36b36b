// Package manifest describes an object model declaratively so naming rules
// can be applied to it without the model's source code.
package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalid is returned for manifests that cannot be mapped.
var ErrInvalid = errors.New("invalid manifest")

// Manifest lists the entities of an object model.
type Manifest struct {
	Entities []Entity `mapstructure:"entities"`
}

// Entity is a mapped class.
type Entity struct {
	// Class is the (optionally namespaced) class name, e.g. `App\Models\User`.
	Class      string        `mapstructure:"class"`
	Properties []string      `mapstructure:"properties"`
	Embedded   []Embedded    `mapstructure:"embedded"`
	ManyToOne  []Association `mapstructure:"many_to_one"`
	ManyToMany []Association `mapstructure:"many_to_many"`
}

// Embedded is a value object stored inline in its owner's table.
type Embedded struct {
	Property string   `mapstructure:"property"`
	Class    string   `mapstructure:"class"`
	Fields   []string `mapstructure:"fields"`
}

// Association is a relation to another entity.
type Association struct {
	Property string `mapstructure:"property"`
	Target   string `mapstructure:"target"`
	// ReferencedColumn overrides the referenced primary key column ("id").
	ReferencedColumn string `mapstructure:"referenced_column"`
}

// Load reads a manifest from a YAML, JSON or TOML file.
func Load(path string) (*Manifest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var m Manifest
	if err := v.UnmarshalExact(&m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest %q: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every entity and association is named and that no
// class is declared twice.
func (m *Manifest) Validate() error {
	var problems []string
	seen := make(map[string]bool, len(m.Entities))

	for i, e := range m.Entities {
		class := strings.TrimSpace(e.Class)
		if class == "" {
			problems = append(problems, fmt.Sprintf("entities[%d]: class is required", i))
			continue
		}
		if seen[class] {
			problems = append(problems, fmt.Sprintf("entities[%d]: class %q declared twice", i, class))
		}
		seen[class] = true

		for j, p := range e.Properties {
			if strings.TrimSpace(p) == "" {
				problems = append(problems, fmt.Sprintf("%s.properties[%d]: name is required", class, j))
			}
		}
		for j, emb := range e.Embedded {
			if strings.TrimSpace(emb.Property) == "" {
				problems = append(problems, fmt.Sprintf("%s.embedded[%d]: property is required", class, j))
			}
			if len(emb.Fields) == 0 {
				problems = append(problems, fmt.Sprintf("%s.embedded[%d]: at least one field is required", class, j))
			}
		}
		problems = append(problems, validateAssociations(class, "many_to_one", e.ManyToOne)...)
		problems = append(problems, validateAssociations(class, "many_to_many", e.ManyToMany)...)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func validateAssociations(class, kind string, assocs []Association) []string {
	var problems []string
	for i, a := range assocs {
		if strings.TrimSpace(a.Property) == "" {
			problems = append(problems, fmt.Sprintf("%s.%s[%d]: property is required", class, kind, i))
		}
		if strings.TrimSpace(a.Target) == "" {
			problems = append(problems, fmt.Sprintf("%s.%s[%d]: target is required", class, kind, i))
		}
	}
	return problems
}
