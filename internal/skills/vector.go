package skills

import "math"

// Vector is a 0/1 coverage vector aligned to a taxonomy.
type Vector []float64

// Vectorize marks every taxonomy slot covered by at least one skill.
// A slot is covered when a normalized skill equals the canonical name,
// contains it, or is contained in it. The result always has t.Len() slots.
func (t *Taxonomy) Vectorize(skills []string) Vector {
	v := make(Vector, len(t.entries))

	normalized := t.NormalizeAll(skills)
	if len(normalized) == 0 {
		return v
	}
	for i, n := range normalized {
		normalized[i] = normalizeText(n)
	}

	for i, e := range t.entries {
		for _, n := range normalized {
			if t.mode.related(n, e.lower) {
				v[i] = 1
				break
			}
		}
	}
	return v
}

// Len returns the number of slots.
func (v Vector) Len() int {
	return len(v)
}

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Ones counts the covered slots.
func (v Vector) Ones() int {
	n := 0
	for _, x := range v {
		if x != 0 {
			n++
		}
	}
	return n
}

// Matched returns the canonical names of covered slots. v must come from t.
func (t *Taxonomy) Matched(v Vector) []string {
	names := make([]string, 0, v.Ones())
	for i, x := range v {
		if x != 0 && i < len(t.entries) {
			names = append(names, t.entries[i].canonical)
		}
	}
	return names
}
