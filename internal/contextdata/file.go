package contextdata

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileProvider serves values loaded from a YAML lookup file with the
// documented schema: a mapping of category name to a list of strings.
// Categories absent from the file (or present but empty) fall through
// to the compiled-in fallback set, so a partial file is valid.
type FileProvider struct {
	tables   map[Category][]string
	fallback *FallbackProvider
}

// LoadFile reads a lookup file and returns a provider backed by it.
// Unknown category keys in the file are rejected so typos surface at
// load time rather than as silently missing data.
func LoadFile(path string) (*FileProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read context data: %w", err)
	}

	var parsed map[string][]string
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("parse context data: %w", err)
	}

	tables := make(map[Category][]string, len(parsed))
	for key, values := range parsed {
		category := Category(key)
		if !knownCategory(category) {
			return nil, fmt.Errorf("context data: unknown category %q", key)
		}
		for i, v := range values {
			if v == "" {
				return nil, fmt.Errorf("context data: empty value at %s[%d]", key, i)
			}
		}
		if len(values) > 0 {
			tables[category] = values
		}
	}

	return &FileProvider{tables: tables, fallback: NewFallbackProvider()}, nil
}

func (p *FileProvider) Get(category Category, index int) (string, error) {
	values, ok := p.tables[category]
	if !ok {
		return p.fallback.Get(category, index)
	}
	if index < 0 {
		index = -index
	}
	return values[index%len(values)], nil
}

func (p *FileProvider) Count(category Category) (int, error) {
	values, ok := p.tables[category]
	if !ok {
		return p.fallback.Count(category)
	}
	return len(values), nil
}

func knownCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
