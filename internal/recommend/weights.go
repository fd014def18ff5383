package recommend

import (
	"strings"
)

// WeightProfile holds one importance weight per criterion.
type WeightProfile struct {
	Weights Vector
	Total   float64
}

// Normalize scales the weights to sum to 1. An all-zero profile is left untouched.
func (w *WeightProfile) Normalize() {
	sum := w.Weights.Sum()
	if sum == 0 {
		return
	}
	for _, c := range AllCriteria {
		w.Weights[c] /= sum
	}
	w.Total = 1.0
}

func (w WeightProfile) Weight(c Criterion) float64 {
	return w.Weights[c]
}

// Heaviest returns the criterion with the largest weight, the earliest one on ties.
func (w WeightProfile) Heaviest() Criterion {
	best := AllCriteria[0]
	for _, c := range AllCriteria[1:] {
		if w.Weights[c] > w.Weights[best] {
			best = c
		}
	}
	return best
}

type bonus struct {
	criterion Criterion
	amount    float64
}

var classBonuses = map[ScalingType][]bonus{
	ADFocused: {{AttackDamage, 5}, {AttackSpeed, 3}, {CriticalChance, 3}, {ArmorPenetration, 2}, {LifeSteal, 2}},
	APFocused: {{AbilityPower, 5}, {MagicPenetration, 3}, {CooldownReduction, 3}},
	Tank:      {{Health, 5}, {Armor, 4}, {MagicResist, 4}},
	Mixed:     {{AttackDamage, 3}, {AbilityPower, 3}, {Health, 2}},
	Utility:   {{CooldownReduction, 4}, {MovementSpeed, 3}, {Health, 2}},
}

// CalculateWeights starts every criterion at 1 and layers the champion, enemy and
// ability-tag adjustments before normalizing.
func CalculateWeights(profile ChampionProfile, enemy EnemyComposition) WeightProfile {
	w := WeightProfile{}
	for _, c := range AllCriteria {
		w.Weights[c] = 1.0
	}

	adjustForChampion(&w.Weights, profile)
	adjustForEnemies(&w.Weights, enemy)
	adjustForAbilityTags(&w.Weights, profile.AbilityTags)

	w.Total = w.Weights.Sum()
	w.Normalize()
	return w
}

func adjustForChampion(w *Vector, profile ChampionProfile) {
	for _, b := range classBonuses[profile.ScalingType] {
		w[b.criterion] += b.amount
	}
	if profile.TotalADRatio > 3.0 {
		w[AttackDamage] += 2
	}
	if profile.TotalAPRatio > 3.0 {
		w[AbilityPower] += 2
	}
}

func adjustForEnemies(w *Vector, enemy EnemyComposition) {
	if enemy.AverageArmor > 80 {
		w[ArmorPenetration] += 3
	}
	if enemy.AverageMagicResist > 60 {
		w[MagicPenetration] += 3
	}
	if enemy.PhysicalThreat > 0.6 {
		w[Armor] += 3
	}
	if enemy.MagicalThreat > 0.6 {
		w[MagicResist] += 3
	}
	if enemy.CCThreat > 0.6 {
		w[Health] += 2
		w[MagicResist] += 1.5
	}
	if enemy.PhysicalThreat > 0.4 && enemy.MagicalThreat > 0.4 {
		w[Health] += 2
	}
}

func adjustForAbilityTags(w *Vector, tags []string) {
	for _, tag := range tags {
		t := strings.ToLower(tag)
		if strings.Contains(t, "damage") || strings.Contains(t, "ad ratio") {
			w[AttackDamage] += 1
		}
		if strings.Contains(t, "ap ratio") || strings.Contains(t, "magic") {
			w[AbilityPower] += 1
		}
		if strings.Contains(t, "cooldown") || strings.Contains(t, "cdr") {
			w[CooldownReduction] += 1.5
		}
		if strings.Contains(t, "attack speed") {
			w[AttackSpeed] += 1
		}
		if strings.Contains(t, "armor") && !strings.Contains(t, "penetration") {
			w[Armor] += 1
		}
		if strings.Contains(t, "health") || strings.Contains(t, "hp") {
			w[Health] += 1
		}
	}
}
