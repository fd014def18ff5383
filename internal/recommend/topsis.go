package recommend

import "math"

// RankTOPSIS scores each candidate by relative closeness to the ideal solution. It fills
// Normalized, Weighted and TOPSISScore and leaves Raw untouched.
func RankTOPSIS(candidates []*ItemCandidate, weights WeightProfile) {
	if len(candidates) == 0 {
		return
	}

	// Vector normalization: r = x / sqrt(sum x^2) per column.
	var norms Vector
	for _, c := range AllCriteria {
		var sum float64
		for _, cand := range candidates {
			sum += cand.Raw[c] * cand.Raw[c]
		}
		norms[c] = math.Sqrt(sum)
	}

	for _, cand := range candidates {
		for _, c := range AllCriteria {
			if norms[c] > 0 {
				cand.Normalized[c] = cand.Raw[c] / norms[c]
			} else {
				cand.Normalized[c] = 0
			}
			cand.Weighted[c] = cand.Normalized[c] * weights.Weight(c)
		}
	}

	// Every criterion is a benefit: PIS is the column max, NIS the column min.
	ideal, antiIdeal := candidates[0].Weighted, candidates[0].Weighted
	for _, cand := range candidates[1:] {
		for _, c := range AllCriteria {
			ideal[c] = math.Max(ideal[c], cand.Weighted[c])
			antiIdeal[c] = math.Min(antiIdeal[c], cand.Weighted[c])
		}
	}

	for _, cand := range candidates {
		dPos := distance(cand.Weighted, ideal)
		dNeg := distance(cand.Weighted, antiIdeal)
		if dPos+dNeg == 0 {
			cand.TOPSISScore = 0.5
			continue
		}
		cand.TOPSISScore = dNeg / (dPos + dNeg)
	}
}

func distance(a, b Vector) float64 {
	var sum float64
	for _, c := range AllCriteria {
		d := a[c] - b[c]
		sum += d * d
	}
	return math.Sqrt(sum)
}
