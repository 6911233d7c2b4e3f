package summarize

// Rank runs the power-iteration form of graph ranking over a similarity
// matrix and returns one importance score per sentence.
//
// Every score starts at 1.0. Each iteration recomputes
//
//	new[i] = (1 - damping) + damping * Σ_{j≠i} (m[j][i] / rowSum(j)) * score[j]
//
// where a source row with zero sum contributes nothing (skipped, not a
// division error). The iteration count is fixed: there is no early
// convergence check, so identical inputs always run the same number of
// steps and produce identical scores.
func Rank(matrix Matrix, damping float64, iterations int) []float64 {
	n := len(matrix)
	if n == 0 {
		return nil
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0
	}

	// Row sums depend only on the matrix; compute them once.
	rowSums := make([]float64, n)
	for j := 0; j < n; j++ {
		rowSums[j] = matrix.rowSum(j)
	}

	next := make([]float64, n)
	for it := 0; it < iterations; it++ {
		for i := 0; i < n; i++ {
			var incoming float64
			for j := 0; j < n; j++ {
				if j == i || rowSums[j] == 0 {
					continue
				}
				incoming += matrix[j][i] / rowSums[j] * scores[j]
			}
			next[i] = (1 - damping) + damping*incoming
		}
		scores, next = next, scores
	}
	return scores
}
