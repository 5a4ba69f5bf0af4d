package ranking

import (
	"testing"

	"github.com/jonathan/chalkbox/internal/types"
	"github.com/stretchr/testify/assert"
)

type item struct {
	id    string
	score *float64
}

func scoreOf(i item) (float64, bool) {
	if i.score == nil {
		return 0, false
	}
	return *i.score, true
}

func ptr(f float64) *float64 { return &f }

func ids(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}

func TestRank_StableDescending(t *testing.T) {
	items := []item{
		{id: "a", score: ptr(0.3)},
		{id: "b", score: ptr(0.9)},
		{id: "c", score: ptr(0.3)},
		{id: "d", score: ptr(0.1)},
	}

	ranked := Rank(items, scoreOf)

	assert.Equal(t, []string{"b", "a", "c", "d"}, ids(ranked))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(items), "input order is untouched")
}

func TestRank_UnscoredSinkButStay(t *testing.T) {
	items := []item{
		{id: "unscored-1"},
		{id: "low", score: ptr(0.01)},
		{id: "unscored-2"},
		{id: "high", score: ptr(0.75)},
	}

	ranked := Rank(items, scoreOf)

	assert.Equal(t, []string{"high", "low", "unscored-1", "unscored-2"}, ids(ranked))
	assert.Nil(t, ranked[2].score, "unscored items are not given a score")
}

func TestRank_Empty(t *testing.T) {
	assert.Empty(t, Rank([]item{}, scoreOf))
	assert.Empty(t, Rank[item](nil, scoreOf))
}

func TestRank_SimilarityResults(t *testing.T) {
	recs := []types.JobRecommendation{
		{Job: types.Job{Title: "unscored"}},
		{Job: types.Job{Title: "mid"}, Similarity: &types.SimilarityResult{Score: 0.5, MatchPercentage: 50}},
		{Job: types.Job{Title: "top"}, Similarity: &types.SimilarityResult{Score: 0.8, MatchPercentage: 80}},
	}

	ranked := Rank(recs, func(r types.JobRecommendation) (float64, bool) {
		return ResultScore(r.Similarity)
	})

	titles := []string{ranked[0].Job.Title, ranked[1].Job.Title, ranked[2].Job.Title}
	assert.Equal(t, []string{"top", "mid", "unscored"}, titles)
}

func TestTopN(t *testing.T) {
	items := []int{5, 4, 3, 2, 1}
	assert.Equal(t, []int{5, 4}, TopN(items, 2))
	assert.Equal(t, items, TopN(items, 0))
	assert.Equal(t, items, TopN(items, -1))
	assert.Equal(t, items, TopN(items, 10))
}
