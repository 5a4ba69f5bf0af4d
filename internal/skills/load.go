package skills

import (
	"bytes"
	"fmt"
	"os"

	"github.com/jonathan/chalkbox/internal/schemas"
	"gopkg.in/yaml.v3"
)

// taxonomyFile is the on-disk taxonomy format. JSON files parse as YAML.
type taxonomyFile struct {
	MatchMode string  `yaml:"match_mode"`
	Skills    []Entry `yaml:"skills"`
}

// LoadTaxonomy reads a YAML or JSON taxonomy file, validates it against the
// taxonomy schema and builds a Taxonomy. The file's match_mode, if present,
// is applied before opts, so callers can still override it.
func LoadTaxonomy(path string, opts ...Option) (*Taxonomy, error) {
	if path == "" {
		return nil, fmt.Errorf("taxonomy path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file %s: %w", path, err)
	}

	t, err := ParseTaxonomy(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy file %s: %w", path, err)
	}
	return t, nil
}

// ParseTaxonomy is LoadTaxonomy for in-memory content.
func ParseTaxonomy(data []byte, opts ...Option) (*Taxonomy, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyTaxonomy
	}

	var document any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy: %w", err)
	}
	if err := schemas.ValidateDocument(schemas.TaxonomySchema, document); err != nil {
		return nil, err
	}

	var file taxonomyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode taxonomy: %w", err)
	}

	mode, err := ParseMatchMode(file.MatchMode)
	if err != nil {
		return nil, err
	}

	return NewTaxonomy(file.Skills, append([]Option{WithMatchMode(mode)}, opts...)...)
}

// MarshalYAML renders the taxonomy in the on-disk file format.
func (t *Taxonomy) MarshalYAML() (any, error) {
	return taxonomyFile{
		MatchMode: t.mode.String(),
		Skills:    t.Entries(),
	}, nil
}
