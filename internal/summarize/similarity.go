package summarize

// similarityEpsilon pads the Jaccard denominator so two sentences whose
// token sets are both empty compare as 0 instead of dividing by zero.
const similarityEpsilon = 1e-4

// Matrix is a symmetric sentence-by-sentence similarity matrix with zero
// diagonal and entries in [0, 1).
type Matrix [][]float64

// NewMatrix allocates an n×n zero matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// BuildSimilarity computes the lexical-overlap graph over the sentences:
// for each unordered pair, the Jaccard coefficient of their distinct cleaned
// token sets, |intersection| / (|union| + ε). Each pair is computed once and
// assigned symmetrically; the diagonal stays zero. This is the O(n²) step
// that dominates the cost of the graph-based strategies.
func BuildSimilarity(model LexicalModel, sentences []Sentence) Matrix {
	n := len(sentences)
	matrix := NewMatrix(n)

	sets := make([]map[string]struct{}, n)
	for i, s := range sentences {
		sets[i] = model.tokenSet(s)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sim := jaccard(sets[i], sets[j])
			matrix[i][j] = sim
			matrix[j][i] = sim
		}
	}
	return matrix
}

func jaccard(a, b map[string]struct{}) float64 {
	var intersection int
	for tok := range a {
		if _, ok := b[tok]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / (float64(union) + similarityEpsilon)
}

// rowSum returns the sum of row i.
func (m Matrix) rowSum(i int) float64 {
	var sum float64
	for _, v := range m[i] {
		sum += v
	}
	return sum
}
