package ranking

import (
	"errors"
	"testing"

	"github.com/jonathan/chalkbox/internal/skills"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosineSimilarity_Basic(t *testing.T) {
	sim, err := CosineSimilarity(skills.Vector{1, 1, 0}, skills.Vector{1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.8164966, sim, 1e-6)

	sim, err = CosineSimilarity(skills.Vector{1, 0}, skills.Vector{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)
}

func TestCosineSimilarity_ZeroNormIsExactlyZero(t *testing.T) {
	sim, err := CosineSimilarity(skills.Vector{0, 0, 0}, skills.Vector{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)

	sim, err = CosineSimilarity(skills.Vector{}, skills.Vector{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, sim)
}

func TestCosineSimilarity_IdenticalBelowOne(t *testing.T) {
	sim, err := CosineSimilarity(skills.Vector{1, 0, 1}, skills.Vector{1, 0, 1})
	require.NoError(t, err)
	assert.Less(t, sim, 1.0, "epsilon keeps identical vectors just under 1")
	assert.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarity_LengthMismatch(t *testing.T) {
	_, err := CosineSimilarity(skills.Vector{1, 0}, skills.Vector{1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVectorLengthMismatch))

	var lengthErr *VectorLengthError
	require.True(t, errors.As(err, &lengthErr))
	assert.Equal(t, 2, lengthErr.Left)
	assert.Equal(t, 1, lengthErr.Right)
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	tax := skills.Default()
	lists := [][]string{
		{"JS", "React"},
		{"JavaScript", "React", "Node.js"},
		{"Python", "pandas"},
		{"Machine Learning", "Python"},
		{},
		{"Quantum Basket Weaving"},
	}

	for _, a := range lists {
		for _, b := range lists {
			ab, err := CosineSimilarity(tax.Vectorize(a), tax.Vectorize(b))
			require.NoError(t, err)
			ba, err := CosineSimilarity(tax.Vectorize(b), tax.Vectorize(a))
			require.NoError(t, err)
			assert.Equal(t, ab, ba, "similarity(%v, %v)", a, b)
		}
	}
}
