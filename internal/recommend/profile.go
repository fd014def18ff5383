package recommend

import (
	"context"
	"strings"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/logging"
)

// ScalingType classifies what a champion's kit rewards.
type ScalingType string

const (
	ADFocused ScalingType = "AD_FOCUSED"
	APFocused ScalingType = "AP_FOCUSED"
	Tank      ScalingType = "TANK"
	Mixed     ScalingType = "MIXED"
	Utility   ScalingType = "UTILITY"
)

// AllScalingTypes is the closed set of classifications. Every consumer that switches on
// ScalingType is tested against this list.
var AllScalingTypes = []ScalingType{ADFocused, APFocused, Tank, Mixed, Utility}

// Label renders the type for prose: AD_FOCUSED -> "ad focused".
func (t ScalingType) Label() string {
	return strings.ReplaceAll(strings.ToLower(string(t)), "_", " ")
}

// ChampionProfile summarizes how the active champion scales. Built once per request.
type ChampionProfile struct {
	ChampionName  string `json:"championName"`
	ChampionID    string `json:"championId"`
	ChampionLevel int    `json:"championLevel"`

	TotalADRatio      float64 `json:"totalAdRatio"`
	TotalBonusADRatio float64 `json:"totalBonusAdRatio"`
	TotalAPRatio      float64 `json:"totalApRatio"`
	TotalHealthRatio  float64 `json:"totalHealthRatio"`
	TotalArmorRatio   float64 `json:"totalArmorRatio"`
	TotalMRRatio      float64 `json:"totalMrRatio"`

	AbilitiesWithADScaling int `json:"abilitiesWithAdScaling"`
	AbilitiesWithAPScaling int `json:"abilitiesWithApScaling"`
	TotalAbilities         int `json:"totalAbilities"`

	AbilityTags []string    `json:"abilityTags"`
	ScalingType ScalingType `json:"scalingType"`

	CurrentAD           float64 `json:"currentAd"`
	CurrentAP           float64 `json:"currentAp"`
	CurrentAttackSpeed  float64 `json:"currentAttackSpeed"`
	CurrentAbilityHaste float64 `json:"currentAbilityHaste"`
}

// DetermineScalingType classifies from the live AD/AP readings and the defensive ratios.
func DetermineScalingType(currentAD, currentAP, healthRatio, armorRatio, mrRatio float64) ScalingType {
	total := currentAD + currentAP
	if total == 0 {
		return Utility
	}

	adPct := currentAD / total
	apPct := currentAP / total

	switch {
	case adPct > 0.6:
		return ADFocused
	case apPct > 0.6:
		return APFocused
	case healthRatio+armorRatio+mrRatio > total:
		return Tank
	case adPct > 0.3 && apPct > 0.3:
		return Mixed
	default:
		return Utility
	}
}

// ChampionProfiler builds the active champion's profile from its catalog abilities.
type ChampionProfiler struct {
	catalog Catalog
}

func NewChampionProfiler(catalog Catalog) *ChampionProfiler {
	return &ChampionProfiler{catalog: catalog}
}

// Profile never fails: a failed or empty ability lookup yields the default profile.
func (p *ChampionProfiler) Profile(ctx context.Context, championName string, level int, stats domain.ChampionStats) ChampionProfile {
	log := logging.Ctx(ctx)

	abilities, err := p.catalog.FindAbilities(ctx, championName)
	if err != nil {
		log.Warn().Err(err).Str("champion", championName).Msg("ability lookup failed, using default profile")
		return defaultProfile(championName, level, stats)
	}
	if len(abilities) == 0 {
		log.Warn().Str("champion", championName).Msg("no abilities found, using default profile")
		return defaultProfile(championName, level, stats)
	}

	profile := BuildProfile(ctx, championName, level, stats, abilities)
	log.Info().
		Str("champion", championName).
		Str("scaling_type", string(profile.ScalingType)).
		Float64("ad_ratio", profile.TotalADRatio).
		Float64("ap_ratio", profile.TotalAPRatio).
		Msg("champion profile created")
	return profile
}

// BuildProfile accumulates scaling ratios and level-tip tags over the given abilities.
// Abilities whose metadata cannot be decoded contribute nothing.
func BuildProfile(ctx context.Context, championName string, level int, stats domain.ChampionStats, abilities []*domain.Ability) ChampionProfile {
	if len(abilities) == 0 {
		return defaultProfile(championName, level, stats)
	}

	log := logging.Ctx(ctx)
	profile := newProfile(championName, level, stats)
	profile.TotalAbilities = len(abilities)

	var tags []string
	for _, ability := range abilities {
		labels, err := parseLevelTips(ability.LevelTipLabels)
		if err != nil {
			log.Warn().Err(err).Str("ability", ability.ID).Msg("malformed level tips")
		}
		tags = append(tags, labels...)

		links, err := parseScalingLinks(ability.Vars)
		if err != nil {
			log.Warn().Err(err).Str("ability", ability.ID).Msg("malformed scaling metadata")
			continue
		}

		if v, ok := links.value(adLinks); ok {
			profile.TotalADRatio += v
			if v > 0 {
				profile.AbilitiesWithADScaling++
			}
		}
		if v, ok := links.value(bonusADLinks); ok {
			profile.TotalBonusADRatio += v
		}
		if v, ok := links.value(apLinks); ok {
			profile.TotalAPRatio += v
			if v > 0 {
				profile.AbilitiesWithAPScaling++
			}
		}
		if v, ok := links.value(healthLinks); ok {
			profile.TotalHealthRatio += v
		}
		if v, ok := links.value(armorLinks); ok {
			profile.TotalArmorRatio += v
		}
		if v, ok := links.value(mrLinks); ok {
			profile.TotalMRRatio += v
		}
	}

	profile.AbilityTags = dedupe(tags)
	profile.ScalingType = DetermineScalingType(
		profile.CurrentAD, profile.CurrentAP,
		profile.TotalHealthRatio, profile.TotalArmorRatio, profile.TotalMRRatio,
	)
	return profile
}

func newProfile(championName string, level int, stats domain.ChampionStats) ChampionProfile {
	return ChampionProfile{
		ChampionName:        championName,
		ChampionID:          championName,
		ChampionLevel:       level,
		AbilityTags:         []string{},
		CurrentAD:           stats.AttackDamage,
		CurrentAP:           stats.AbilityPower,
		CurrentAttackSpeed:  stats.AttackSpeed,
		CurrentAbilityHaste: stats.AbilityHaste,
	}
}

func defaultProfile(championName string, level int, stats domain.ChampionStats) ChampionProfile {
	profile := newProfile(championName, level, stats)
	profile.ScalingType = Utility
	return profile
}

// dedupe drops repeated strings, keeping first occurrences in order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
