// Package ranking scores skill profiles against opportunities and orders the results.
package ranking

import (
	"errors"
	"fmt"

	"github.com/jonathan/chalkbox/internal/skills"
)

// similarityEpsilon keeps the cosine denominator away from zero.
const similarityEpsilon = 1e-10

// ErrVectorLengthMismatch means two vectors were not built from the same taxonomy.
var ErrVectorLengthMismatch = errors.New("vector length mismatch")

// VectorLengthError reports the lengths of mismatched vectors.
type VectorLengthError struct {
	Left  int
	Right int
}

func (e *VectorLengthError) Error() string {
	return fmt.Sprintf("vector length mismatch: %d vs %d", e.Left, e.Right)
}

func (e *VectorLengthError) Unwrap() error {
	return ErrVectorLengthMismatch
}

// CosineSimilarity returns dot(a, b) / (|a|*|b| + epsilon).
// If either vector has zero norm the similarity is exactly 0.
func CosineSimilarity(a, b skills.Vector) (float64, error) {
	if len(a) != len(b) {
		return 0, &VectorLengthError{Left: len(a), Right: len(b)}
	}

	normA, normB := a.Norm(), b.Norm()
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	return dot / (normA*normB + similarityEpsilon), nil
}
