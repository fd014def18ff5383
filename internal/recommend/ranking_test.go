package recommend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(pairs ...any) Vector {
	var v Vector
	for i := 0; i < len(pairs); i += 2 {
		v[pairs[i].(Criterion)] = pairs[i+1].(float64)
	}
	return v
}

func TestRankTOPSIS_DominanceExtremes(t *testing.T) {
	candidates := candidatesFromRaw(
		vec(AttackDamage, 60.0, Health, 400.0),
		vec(AttackDamage, 40.0, Health, 250.0),
		vec(AttackDamage, 20.0, Health, 100.0),
	)
	raw := candidates[1].Raw

	RankTOPSIS(candidates, uniformWeights())

	assert.InDelta(t, 1.0, candidates[0].TOPSISScore, 1e-9)
	assert.InDelta(t, 0.0, candidates[2].TOPSISScore, 1e-9)
	assert.Greater(t, candidates[1].TOPSISScore, 0.0)
	assert.Less(t, candidates[1].TOPSISScore, 1.0)
	assert.Equal(t, raw, candidates[1].Raw, "raw criteria are not overwritten")
	assert.Greater(t, candidates[0].Normalized[AttackDamage], 0.0)
	assert.Zero(t, candidates[0].Normalized[Armor], "all-zero columns normalize to zero")
	assert.InDelta(t, candidates[0].Normalized[Health]/float64(NumCriteria), candidates[0].Weighted[Health], 1e-12)
}

func TestRankTOPSIS_Bounds(t *testing.T) {
	candidates := candidatesFromRaw(
		vec(AttackDamage, 70.0, CriticalChance, 25.0),
		vec(AbilityPower, 90.0, MagicPenetration, 0.1),
		vec(Armor, 60.0, Health, 350.0),
		vec(AttackSpeed, 40.0, MovementSpeed, 7.07),
	)

	RankTOPSIS(candidates, CalculateWeights(ChampionProfile{ScalingType: Mixed}, DefaultEnemyComposition()))

	for _, c := range candidates {
		assert.GreaterOrEqual(t, c.TOPSISScore, 0.0)
		assert.LessOrEqual(t, c.TOPSISScore, 1.0)
	}
}

func TestRankTOPSIS_IdenticalCandidates(t *testing.T) {
	candidates := candidatesFromRaw(vec(Armor, 40.0), vec(Armor, 40.0))

	RankTOPSIS(candidates, uniformWeights())

	assert.Equal(t, 0.5, candidates[0].TOPSISScore)
	assert.Equal(t, 0.5, candidates[1].TOPSISScore)

	RankTOPSIS(nil, uniformWeights())
}

func TestRankTODIM(t *testing.T) {
	t.Run("single candidate", func(t *testing.T) {
		candidates := candidatesFromRaw(vec(Armor, 40.0))
		RankTODIM(candidates, uniformWeights(), 2.25)
		assert.Equal(t, 0.5, candidates[0].TODIMScore)
	})

	t.Run("dominating candidate scores one", func(t *testing.T) {
		candidates := candidatesFromRaw(
			vec(AttackDamage, 20.0, Health, 100.0),
			vec(AttackDamage, 60.0, Health, 400.0),
			vec(AttackDamage, 40.0, Health, 150.0),
		)
		RankTODIM(candidates, uniformWeights(), 2.25)

		assert.Equal(t, 0.0, candidates[0].TODIMScore)
		assert.Equal(t, 1.0, candidates[1].TODIMScore)
		assert.Greater(t, candidates[2].TODIMScore, 0.0)
		assert.Less(t, candidates[2].TODIMScore, 1.0)
	})

	t.Run("scores stay in range", func(t *testing.T) {
		candidates := candidatesFromRaw(
			vec(AttackDamage, 70.0, CriticalChance, 25.0),
			vec(AbilityPower, 90.0),
			vec(Armor, 60.0, Health, 350.0),
			vec(Armor, 60.0, Health, 350.0),
		)
		RankTODIM(candidates, CalculateWeights(ChampionProfile{ScalingType: Tank}, DefaultEnemyComposition()), 2.25)
		for _, c := range candidates {
			assert.GreaterOrEqual(t, c.TODIMScore, 0.0)
			assert.LessOrEqual(t, c.TODIMScore, 1.0)
		}
		assert.Equal(t, candidates[2].TODIMScore, candidates[3].TODIMScore)
	})

	t.Run("independent of TOPSIS", func(t *testing.T) {
		rows := []Vector{vec(Armor, 10.0, Health, 500.0), vec(Armor, 80.0), vec(MagicResist, 50.0, Health, 200.0)}
		weights := CalculateWeights(ChampionProfile{ScalingType: Tank}, DefaultEnemyComposition())

		before := candidatesFromRaw(rows...)
		RankTODIM(before, weights, 2.25)

		after := candidatesFromRaw(rows...)
		RankTOPSIS(after, weights)
		RankTODIM(after, weights, 2.25)

		for i := range before {
			assert.Equal(t, before[i].TODIMScore, after[i].TODIMScore)
		}
	})

	t.Run("equal dominance", func(t *testing.T) {
		candidates := candidatesFromRaw(vec(Armor, 40.0), vec(Armor, 40.0), vec(Armor, 40.0))
		RankTODIM(candidates, uniformWeights(), 2.25)
		for _, c := range candidates {
			assert.Equal(t, 0.5, c.TODIMScore)
		}
	})
}

func TestPhi(t *testing.T) {
	assert.InDelta(t, 0.5, phi(0.25, 1, 2.25), 1e-12)
	assert.InDelta(t, -1.125, phi(-0.25, 1, 2.25), 1e-12)
	assert.Zero(t, phi(0, 1, 2.25))
}

func TestFuse(t *testing.T) {
	candidates := candidatesFromRaw(Vector{}, Vector{}, Vector{}, Vector{}, Vector{}, Vector{}, Vector{})
	scores := [][2]float64{{0.2, 0.9}, {0.8, 0.1}, {0.5, 0.5}, {0.8, 0.1}, {1, 1}, {0, 0}, {0.5, 0.5}}
	for i, s := range scores {
		candidates[i].TOPSISScore = s[0]
		candidates[i].TODIMScore = s[1]
	}

	ranked := Fuse(candidates, 0.7, 0.3, 5)

	require.Len(t, ranked, 5)
	for _, c := range candidates {
		assert.InDelta(t, 0.7*c.TOPSISScore+0.3*c.TODIMScore, c.FinalScore, 1e-12)
	}
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].FinalScore, ranked[i].FinalScore)
	}

	var ids []string
	for _, c := range ranked {
		ids = append(ids, c.Item.ID)
	}
	// B and D tie at 0.59, C and G at 0.5; ties keep input order.
	assert.Equal(t, []string{"E", "B", "D", "C", "G"}, ids)

	assert.Len(t, Fuse(candidates, 0.7, 0.3, 10), 7)
}

func TestExplain(t *testing.T) {
	cand := &ItemCandidate{GoldEfficiency: 112.34}
	cand.Weighted[AttackDamage] = 0.25
	cand.Weighted[CriticalChance] = 0.125
	cand.Weighted[AttackSpeed] = 0.125
	cand.Weighted[LifeSteal] = 0.01

	profile := ChampionProfile{ScalingType: ADFocused}
	enemy := EnemyComposition{PhysicalThreat: 0.8, MagicalThreat: 0.2}

	got := Explain(cand, profile, enemy)

	assert.Equal(t, "Recommended for ad focused champions. "+
		"Provides: Attack damage (0.250), Attack speed (0.125), Critical chance (0.125). "+
		"Armor recommended against physical damage. "+
		"Gold efficiency: 112.3%.", got)

	bare := Explain(&ItemCandidate{}, ChampionProfile{ScalingType: Tank}, EnemyComposition{MagicalThreat: 0.9})
	assert.False(t, strings.Contains(bare, "Provides"))
	assert.Equal(t, "Recommended for tank champions. Magic resist recommended against magic damage. Gold efficiency: 0.0%.", bare)
}
