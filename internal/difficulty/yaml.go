package difficulty

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileSchema is the on-disk shape of a difficulty override file.
type fileSchema struct {
	Levels []Level `yaml:"levels"`
}

// LoadFile reads a difficulty table from a YAML file and validates it
// exactly like NewTable. The file must define all five levels.
func LoadFile(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read difficulty config: %w", err)
	}

	var f fileSchema
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse difficulty config: %w", err)
	}

	return NewTable(f.Levels)
}
