// Package skills maps free-text skills onto a fixed canonical taxonomy and
// turns skill lists into vectors aligned to that taxonomy.
package skills

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyTaxonomy is returned when a taxonomy has no entries.
	ErrEmptyTaxonomy = errors.New("taxonomy has no entries")
	// ErrDuplicateCanonical is returned when two entries share a canonical name.
	ErrDuplicateCanonical = errors.New("duplicate canonical skill name")
)

// Entry is one canonical skill and the lowercase variants that map to it.
type Entry struct {
	Canonical string   `json:"name" yaml:"name"`
	Variants  []string `json:"variants" yaml:"variants"`
}

type entry struct {
	canonical string
	lower     string
	variants  []string
}

// Taxonomy is an immutable, insertion-ordered canonical skill table.
// It is safe for concurrent use.
type Taxonomy struct {
	entries []entry
	// exact maps a variant to the index of the first entry that lists it.
	exact map[string]int
	mode  MatchMode
}

// Option configures a Taxonomy.
type Option func(*Taxonomy)

// WithMatchMode sets how partial matches are detected. Defaults to MatchTokens.
func WithMatchMode(mode MatchMode) Option {
	return func(t *Taxonomy) {
		t.mode = mode
	}
}

// NewTaxonomy builds a taxonomy from entries, preserving their order.
// Variants are lowercased and trimmed; blank variants are dropped.
func NewTaxonomy(entries []Entry, opts ...Option) (*Taxonomy, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyTaxonomy
	}

	t := &Taxonomy{
		entries: make([]entry, 0, len(entries)),
		exact:   make(map[string]int),
	}
	for _, opt := range opts {
		opt(t)
	}

	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		canonical := strings.TrimSpace(e.Canonical)
		if canonical == "" {
			return nil, fmt.Errorf("taxonomy entry %d has an empty name", len(t.entries))
		}
		lower := normalizeText(canonical)
		if seen[lower] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCanonical, canonical)
		}
		seen[lower] = true

		idx := len(t.entries)
		variants := make([]string, 0, len(e.Variants))
		for _, v := range e.Variants {
			v = normalizeText(v)
			if v == "" {
				continue
			}
			variants = append(variants, v)
			// Ambiguous variants resolve to the first entry that lists them.
			if _, taken := t.exact[v]; !taken {
				t.exact[v] = idx
			}
		}

		t.entries = append(t.entries, entry{
			canonical: canonical,
			lower:     lower,
			variants:  variants,
		})
	}

	return t, nil
}

// MustTaxonomy is like NewTaxonomy but panics on error. It is meant for
// package-level tables that are known to be valid.
func MustTaxonomy(entries []Entry, opts ...Option) *Taxonomy {
	t, err := NewTaxonomy(entries, opts...)
	if err != nil {
		panic(fmt.Sprintf("skills: invalid taxonomy: %v", err))
	}
	return t
}

// Len returns the number of canonical skills.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// Mode returns the partial match mode.
func (t *Taxonomy) Mode() MatchMode {
	return t.mode
}

// WithMode returns a taxonomy sharing t's table but using a different match mode.
func (t *Taxonomy) WithMode(mode MatchMode) *Taxonomy {
	if mode == t.mode {
		return t
	}
	return &Taxonomy{entries: t.entries, exact: t.exact, mode: mode}
}

// Canonicals returns the canonical names in taxonomy order.
func (t *Taxonomy) Canonicals() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.canonical
	}
	return names
}

// Entries returns a copy of the taxonomy table.
func (t *Taxonomy) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = Entry{
			Canonical: e.canonical,
			Variants:  append([]string(nil), e.variants...),
		}
	}
	return out
}

// normalizeText lowercases and trims a skill string.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
