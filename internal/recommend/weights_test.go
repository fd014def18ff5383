package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateWeights_SumToOne(t *testing.T) {
	enemies := []EnemyComposition{
		DefaultEnemyComposition(),
		{AverageArmor: 120, AverageMagicResist: 90, PhysicalThreat: 0.5, MagicalThreat: 0.5, CCThreat: 1},
		{PhysicalThreat: 1},
	}
	tags := [][]string{nil, {"Damage", "Cooldown", "Bonus Armor", "Armor Penetration", "HP Cost", "Magic Damage"}}

	for _, st := range AllScalingTypes {
		for _, enemy := range enemies {
			for _, tagSet := range tags {
				profile := ChampionProfile{ScalingType: st, TotalADRatio: 4, TotalAPRatio: 1, AbilityTags: tagSet}
				w := CalculateWeights(profile, enemy)

				assert.InDelta(t, 1.0, w.Weights.Sum(), 1e-9, "%s", st)
				assert.Equal(t, 1.0, w.Total)
				for _, c := range AllCriteria {
					assert.Greater(t, w.Weight(c), 0.0)
				}
			}
		}
	}
}

func TestCalculateWeights_ADFocusedScenario(t *testing.T) {
	profile := ChampionProfile{ScalingType: ADFocused, TotalADRatio: 3.5}

	w := CalculateWeights(profile, DefaultEnemyComposition())

	// AD: 1 + 5 class + 2 ratio = 8; AS 4, crit 4, armor pen 3, life steal 3, seven others at 1.
	total := 8.0 + 4 + 4 + 3 + 3 + 7
	assert.InDelta(t, 8/total, w.Weight(AttackDamage), 1e-9)
	assert.InDelta(t, 4/total, w.Weight(AttackSpeed), 1e-9)
	assert.InDelta(t, 1/total, w.Weight(MovementSpeed), 1e-9)
	assert.Equal(t, AttackDamage, w.Heaviest())
}

func TestCalculateWeights_AbilityTags(t *testing.T) {
	base := CalculateWeights(ChampionProfile{ScalingType: Utility}, DefaultEnemyComposition())
	tagged := CalculateWeights(ChampionProfile{
		ScalingType: Utility,
		AbilityTags: []string{"Armor Penetration"},
	}, DefaultEnemyComposition())

	// "armor penetration" adds nothing, so the profile is unchanged.
	assert.Equal(t, base.Weights, tagged.Weights)

	hp := CalculateWeights(ChampionProfile{
		ScalingType: Utility,
		AbilityTags: []string{"Shield Health"},
	}, DefaultEnemyComposition())
	assert.Greater(t, hp.Weight(Health), base.Weight(Health))
}

func TestWeightProfile_Heaviest_TieBreak(t *testing.T) {
	var w WeightProfile
	w.Weights[Armor] = 2
	w.Weights[Health] = 2
	assert.Equal(t, Armor, w.Heaviest())

	var flat WeightProfile
	assert.Equal(t, AttackDamage, flat.Heaviest())
}

func TestWeightProfile_Normalize(t *testing.T) {
	var w WeightProfile
	w.Normalize()
	assert.Equal(t, Vector{}, w.Weights)

	w.Weights[AbilityPower] = 3
	w.Weights[MagicPenetration] = 1
	w.Normalize()
	assert.Equal(t, 0.75, w.Weight(AbilityPower))
	assert.Equal(t, 0.25, w.Weight(MagicPenetration))
	assert.Equal(t, 1.0, w.Total)
}
