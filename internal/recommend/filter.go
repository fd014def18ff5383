package recommend

import (
	"context"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/logging"
)

// relevanceRules decides whether an item's stats suit each scaling type. Types without a
// rule accept every item.
var relevanceRules = map[ScalingType]func(*domain.Item) bool{
	ADFocused: func(i *domain.Item) bool { return hasADStats(i) || hasPhysicalStats(i) },
	APFocused: func(i *domain.Item) bool { return hasAPStats(i) || hasMagicStats(i) },
	Tank:      hasTankStats,
	Mixed:     func(i *domain.Item) bool { return hasADStats(i) || hasAPStats(i) || hasHybridStats(i) },
	Utility:   hasUtilityStats,
}

// FilterCandidates keeps complete, purchasable, relevant items the player does not own.
// The catalog order is preserved; an empty result is not an error.
func FilterCandidates(ctx context.Context, items []*domain.Item, profile ChampionProfile, owned map[string]struct{}, currentGold float64) []*domain.Item {
	logging.Ctx(ctx).Debug().
		Int("owned", len(owned)).
		Float64("current_gold", currentGold).
		Str("scaling_type", string(profile.ScalingType)).
		Msg("filtering candidate items")

	candidates := make([]*domain.Item, 0, len(items))
	for _, item := range items {
		if !isComplete(item) || !isPurchasable(item) {
			continue
		}
		if !IsRelevant(item, profile.ScalingType) {
			continue
		}
		if _, ok := owned[item.ID]; ok {
			continue
		}
		candidates = append(candidates, item)
	}

	logging.Ctx(ctx).Info().
		Int("catalog", len(items)).
		Int("candidates", len(candidates)).
		Msg("candidate items filtered")
	return candidates
}

// IsRelevant applies the relevance rule for the scaling type.
func IsRelevant(item *domain.Item, scaling ScalingType) bool {
	rule, ok := relevanceRules[scaling]
	if !ok {
		return true
	}
	return rule(item)
}

// isComplete treats items with no upgrade path, or deep in the build tree, as finished.
func isComplete(item *domain.Item) bool {
	return len(item.UpgradesInto()) == 0 || item.Depth >= 3
}

func isPurchasable(item *domain.Item) bool {
	return item.InStore && item.Purchasable
}

func hasADStats(i *domain.Item) bool {
	return i.FlatPhysicalDamageMod > 0 || i.PercentAttackSpeedMod > 0 || i.FlatCritChanceMod > 0
}

func hasAPStats(i *domain.Item) bool {
	return i.FlatMagicDamageMod > 0
}

func hasPhysicalStats(i *domain.Item) bool {
	return hasADStats(i) || i.PercentArmorMod > 0 || i.PercentLifeStealMod > 0
}

func hasMagicStats(i *domain.Item) bool {
	return hasAPStats(i) || i.PercentMPPoolMod > 0
}

func hasTankStats(i *domain.Item) bool {
	return i.FlatHPPoolMod > 0 || i.FlatArmorMod > 0 || i.FlatSpellBlockMod > 0
}

// hasHybridStats reports any two of AD, AP and tank stats.
func hasHybridStats(i *domain.Item) bool {
	ad, ap, tank := hasADStats(i), hasAPStats(i), hasTankStats(i)
	return (ad && ap) || (ad && tank) || (ap && tank)
}

func hasUtilityStats(i *domain.Item) bool {
	return i.FlatMovementSpeedMod > 0
}
