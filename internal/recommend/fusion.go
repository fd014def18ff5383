package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// Fuse blends the two scores, orders the candidates best first and keeps the top limit.
// Candidates with equal final scores keep their input order.
func Fuse(candidates []*ItemCandidate, topsisWeight, todimWeight float64, limit int) []*ItemCandidate {
	for _, cand := range candidates {
		cand.FinalScore = topsisWeight*cand.TOPSISScore + todimWeight*cand.TODIMScore
	}

	ranked := make([]*ItemCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// topCriteria returns up to n criteria with the largest positive values, enumeration
// order breaking ties.
func topCriteria(v Vector, n int) []Criterion {
	crits := make([]Criterion, 0, NumCriteria)
	for _, c := range AllCriteria {
		if v[c] > 0 {
			crits = append(crits, c)
		}
	}
	sort.SliceStable(crits, func(i, j int) bool {
		return v[crits[i]] > v[crits[j]]
	})
	if len(crits) > n {
		crits = crits[:n]
	}
	return crits
}

// Explain describes why a candidate was picked, from its weighted criteria, the champion's
// classification and the enemy threats.
func Explain(cand *ItemCandidate, profile ChampionProfile, enemy EnemyComposition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recommended for %s champions. ", profile.ScalingType.Label())

	if top := topCriteria(cand.Weighted, 3); len(top) > 0 {
		parts := make([]string, 0, len(top))
		for _, c := range top {
			parts = append(parts, fmt.Sprintf("%s (%.3f)", c.DisplayName(), cand.Weighted[c]))
		}
		b.WriteString("Provides: ")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(". ")
	}

	if enemy.PhysicalThreat > 0.6 {
		b.WriteString("Armor recommended against physical damage. ")
	}
	if enemy.MagicalThreat > 0.6 {
		b.WriteString("Magic resist recommended against magic damage. ")
	}

	fmt.Fprintf(&b, "Gold efficiency: %.1f%%.", cand.GoldEfficiency)
	return b.String()
}
