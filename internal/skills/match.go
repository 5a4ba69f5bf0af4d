package skills

import (
	"fmt"
	"strings"
	"unicode"
)

// MatchMode controls how partial skill matches are detected.
type MatchMode int

const (
	// MatchTokens treats a partial match as a contiguous run of whole tokens,
	// so "go" matches "go modules" but not "django".
	MatchTokens MatchMode = iota
	// MatchSubstring treats any raw substring as a partial match.
	MatchSubstring
)

// ParseMatchMode parses "token" (the default for "") or "substring".
func ParseMatchMode(s string) (MatchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "token", "tokens":
		return MatchTokens, nil
	case "substring":
		return MatchSubstring, nil
	default:
		return MatchTokens, fmt.Errorf("unknown match mode %q (want \"token\" or \"substring\")", s)
	}
}

func (m MatchMode) String() string {
	switch m {
	case MatchTokens:
		return "token"
	case MatchSubstring:
		return "substring"
	default:
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
}

// contains reports whether needle occurs inside haystack under this mode.
// Both arguments must already be lowercased. An empty needle never matches.
func (m MatchMode) contains(haystack, needle string) bool {
	if needle == "" || haystack == "" {
		return false
	}
	if m == MatchSubstring {
		return strings.Contains(haystack, needle)
	}
	return containsTokens(tokenize(haystack), tokenize(needle))
}

// related reports whether a and b are equal or either contains the other.
func (m MatchMode) related(a, b string) bool {
	return a == b || m.contains(a, b) || m.contains(b, a)
}

func isTokenSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune("/,;|()&_-", r)
}

func tokenize(s string) []string {
	return strings.FieldsFunc(s, isTokenSeparator)
}

func containsTokens(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j := range needle {
			if haystack[i+j] != needle[j] {
				continue outer
			}
		}
		return true
	}
	return false
}
