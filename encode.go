// File: iniconf/encode.go
package iniconf

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects an Export encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Export renders the Store in the requested format for tooling that cannot
// read INI. Each group becomes a top-level table keyed by variable; values
// stay strings. The INI text form is Write's job, not Export's.
func (s Store) Export(format Format) ([]byte, error) {
	nested := s.toNested()

	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(nested); err != nil {
			return nil, fmt.Errorf("failed to marshal config data to TOML: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON:
		data, err := json.MarshalIndent(nested, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config data to JSON: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(nested)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config data to YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown export format %q", format)
	}
}

// toNested builds the group -> variable -> value map shared by the export
// encoders.
func (s Store) toNested() map[string]map[string]string {
	nested := make(map[string]map[string]string)
	for k, v := range s.values {
		group, exists := nested[k.Group]
		if !exists {
			group = make(map[string]string)
			nested[k.Group] = group
		}
		group[k.Variable] = v
	}
	return nested
}
