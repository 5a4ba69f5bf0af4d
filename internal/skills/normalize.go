package skills

// Normalize maps a free-text skill to its canonical name.
//
// The input is lowercased and trimmed. An exact variant match wins; otherwise
// the first entry with a variant that contains, or is contained in, the input
// is used. Unknown skills come back lowercased and trimmed, unchanged.
func (t *Taxonomy) Normalize(skill string) string {
	normalized := normalizeText(skill)
	if normalized == "" {
		return ""
	}

	if idx, ok := t.exact[normalized]; ok {
		return t.entries[idx].canonical
	}

	for _, e := range t.entries {
		for _, variant := range e.variants {
			if t.mode.contains(normalized, variant) || t.mode.contains(variant, normalized) {
				return e.canonical
			}
		}
	}

	return normalized
}

// NormalizeAll normalizes each skill, dropping blanks and duplicates while
// keeping first-seen order.
func (t *Taxonomy) NormalizeAll(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		n := t.Normalize(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
