package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Author   string            `yaml:"author,omitempty"`
	Rows     []string          `yaml:"rows"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a YAML level file. Rows use the ASCII level symbols.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level, err := DecodeRows(yl.Rows)
	if err != nil {
		return Level{}, err
	}

	level.ID = yl.ID
	level.Name = yl.Name
	level.Author = yl.Author
	level.Metadata = yl.Metadata
	return level, nil
}
