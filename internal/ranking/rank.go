package ranking

import (
	"sort"

	"github.com/jonathan/chalkbox/internal/types"
)

// Rank returns a new slice ordered by descending score. Items for which score
// reports false are ordered as if they scored 0. The sort is stable, so items
// with equal scores keep their input order. items is not modified.
func Rank[T any](items []T, score func(T) (float64, bool)) []T {
	type scored struct {
		item  T
		score float64
	}

	entries := make([]scored, len(items))
	for i, item := range items {
		s, ok := score(item)
		if !ok {
			s = 0
		}
		entries[i] = scored{item: item, score: s}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	ranked := make([]T, len(entries))
	for i, e := range entries {
		ranked[i] = e.item
	}
	return ranked
}

// TopN returns at most n leading items. n <= 0 means no limit.
func TopN[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}

// ResultScore extracts the score from an optional similarity result.
func ResultScore(result *types.SimilarityResult) (float64, bool) {
	if result == nil {
		return 0, false
	}
	return result.Score, true
}
