package recommend

import (
	"github.com/dom/league-item-advisor/internal/domain"
)

// ItemCandidate is one row of the decision matrix. Raw never changes after extraction;
// Normalized and Weighted are filled by TOPSIS.
type ItemCandidate struct {
	Item *domain.Item

	Raw        Vector
	Normalized Vector
	Weighted   Vector

	TOPSISScore float64
	TODIMScore  float64
	FinalScore  float64

	GoldEfficiency float64
	BuildDepth     int
	Purchasable    bool
}

// ExtractCriteria maps an item's stat block onto the criteria vector. Percent stats are
// scaled to points. Ability haste is not in the stat block, so cooldownReduction is 0.
func ExtractCriteria(item *domain.Item) Vector {
	var v Vector
	v[AttackDamage] = item.FlatPhysicalDamageMod
	v[AbilityPower] = item.FlatMagicDamageMod
	v[AttackSpeed] = item.PercentAttackSpeedMod * 100
	v[CriticalChance] = item.FlatCritChanceMod * 100
	v[Armor] = item.FlatArmorMod
	v[MagicResist] = item.FlatSpellBlockMod
	v[Health] = item.FlatHPPoolMod
	v[CooldownReduction] = 0
	// Stand-ins: the stat block has no penetration fields.
	v[ArmorPenetration] = item.PercentArmorMod
	v[MagicPenetration] = item.PercentMPPoolMod
	v[LifeSteal] = item.PercentLifeStealMod * 100
	// Flat movement speed is counted both as flat and as a percentage.
	v[MovementSpeed] = item.FlatMovementSpeedMod + item.FlatMovementSpeedMod*100
	return v
}

// GoldEfficiency is the gold value of the stats as a percentage of the item's cost.
func GoldEfficiency(raw Vector, goldTotal int, goldValues Vector) float64 {
	if goldTotal == 0 {
		return 0
	}
	var worth float64
	for _, c := range AllCriteria {
		worth += raw[c] * goldValues[c]
	}
	return worth / float64(goldTotal) * 100
}

// BuildCandidates extracts criteria for every item, preserving order.
func BuildCandidates(items []*domain.Item, goldValues Vector) []*ItemCandidate {
	candidates := make([]*ItemCandidate, 0, len(items))
	for _, item := range items {
		raw := ExtractCriteria(item)
		candidates = append(candidates, &ItemCandidate{
			Item:           item,
			Raw:            raw,
			GoldEfficiency: GoldEfficiency(raw, item.GoldTotal, goldValues),
			BuildDepth:     item.Depth,
			Purchasable:    item.Purchasable,
		})
	}
	return candidates
}
