package recommend

import "math"

// RankTODIM scores candidates by aggregate pairwise dominance under loss aversion lambda.
// It reads only Raw, so it does not depend on TOPSIS having run.
func RankTODIM(candidates []*ItemCandidate, weights WeightProfile, lambda float64) {
	n := len(candidates)
	if n == 0 {
		return
	}

	normalized := minMaxColumns(candidates)

	ref := weights.Weight(weights.Heaviest())
	var relative Vector
	if ref > 0 {
		for _, c := range AllCriteria {
			relative[c] = weights.Weight(c) / ref
		}
	}

	dominance := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for _, c := range AllCriteria {
				dominance[i] += phi(normalized[i][c]-normalized[j][c], relative[c], lambda)
			}
		}
	}

	lo, hi := dominance[0], dominance[0]
	for _, d := range dominance[1:] {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	spread := hi - lo
	for i, cand := range candidates {
		if spread > 0 {
			cand.TODIMScore = (dominance[i] - lo) / spread
		} else {
			cand.TODIMScore = 0.5
		}
	}
}

// phi is the partial dominance on one criterion. Losses are amplified by lambda.
func phi(diff, relativeWeight, lambda float64) float64 {
	switch {
	case diff > 0:
		return math.Sqrt(relativeWeight * diff)
	case diff < 0:
		return -lambda * math.Sqrt(relativeWeight*-diff)
	default:
		return 0
	}
}

// minMaxColumns rescales each criterion column of Raw to [0,1]; constant columns map to 0.5.
func minMaxColumns(candidates []*ItemCandidate) []Vector {
	lo, hi := candidates[0].Raw, candidates[0].Raw
	for _, cand := range candidates[1:] {
		for _, c := range AllCriteria {
			lo[c] = math.Min(lo[c], cand.Raw[c])
			hi[c] = math.Max(hi[c], cand.Raw[c])
		}
	}

	out := make([]Vector, len(candidates))
	for i, cand := range candidates {
		for _, c := range AllCriteria {
			if spread := hi[c] - lo[c]; spread > 0 {
				out[i][c] = (cand.Raw[c] - lo[c]) / spread
			} else {
				out[i][c] = 0.5
			}
		}
	}
	return out
}
