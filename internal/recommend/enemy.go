package recommend

import (
	"context"
	"math"
	"strings"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/logging"
)

// Fallbacks for enemies the catalog does not know, roughly an average champion.
const (
	genericArmor          = 30.0
	genericMagicResist    = 30.0
	genericHealth         = 600.0
	genericArmorPerLevel  = 4.0
	genericMRPerLevel     = 1.25
	genericHealthPerLevel = 95.0
)

// EnemyComposition aggregates the opposing team's defenses, damage profile and CC.
type EnemyComposition struct {
	EnemyChampionNames []string `json:"enemyChampions"`
	EnemyTeamSize      int      `json:"enemyTeamSize"`

	AverageArmor       float64 `json:"averageArmor"`
	AverageMagicResist float64 `json:"averageMagicResist"`
	AverageHealth      float64 `json:"averageHealth"`

	PhysicalDamageChampions int `json:"physicalDamageChampions"`
	MagicDamageChampions    int `json:"magicDamageChampions"`
	MixedDamageChampions    int `json:"mixedDamageChampions"`
	ChampionsWithHardCC     int `json:"ccChampions"`
	ChampionsWithSlows      int `json:"championsWithSlows"`
	TotalCCAbilities        int `json:"totalCcAbilities"`

	PhysicalThreat float64 `json:"physicalThreat"`
	MagicalThreat  float64 `json:"magicalThreat"`
	CCThreat       float64 `json:"ccThreat"`
}

// DefaultEnemyComposition is used when no enemies are visible.
func DefaultEnemyComposition() EnemyComposition {
	return EnemyComposition{
		EnemyChampionNames: []string{},
		AverageArmor:       50.0,
		AverageMagicResist: 40.0,
		AverageHealth:      1500.0,
	}
}

// EnemyAnalyzer estimates the enemy team from the roster and catalog data.
type EnemyAnalyzer struct {
	catalog Catalog
}

func NewEnemyAnalyzer(catalog Catalog) *EnemyAnalyzer {
	return &EnemyAnalyzer{catalog: catalog}
}

// Analyze considers every player whose team differs from activeTeam.
func (a *EnemyAnalyzer) Analyze(ctx context.Context, players []domain.Player, activeTeam string) EnemyComposition {
	log := logging.Ctx(ctx)

	var enemies []domain.Player
	for _, p := range players {
		if p.Team != activeTeam {
			enemies = append(enemies, p)
		}
	}
	if len(enemies) == 0 {
		log.Warn().Str("team", activeTeam).Msg("no enemy players found")
		return DefaultEnemyComposition()
	}

	comp := EnemyComposition{
		EnemyChampionNames: make([]string, 0, len(enemies)),
		EnemyTeamSize:      len(enemies),
	}

	var totalArmor, totalMR, totalHP float64
	for _, enemy := range enemies {
		comp.EnemyChampionNames = append(comp.EnemyChampionNames, enemy.ChampionName)

		champion, err := a.catalog.FindChampion(ctx, enemy.ChampionName)
		if err != nil {
			log.Warn().Err(err).Str("champion", enemy.ChampionName).Msg("champion lookup failed")
			champion = nil
		}

		armor, mr, hp := estimateStats(champion, enemy.Level)
		if champion == nil {
			log.Warn().Str("champion", enemy.ChampionName).Msg("champion not found, using generic stats")
		}
		totalArmor += armor
		totalMR += mr
		totalHP += hp

		abilities, err := a.catalog.FindAbilities(ctx, enemy.ChampionName)
		if err != nil {
			log.Warn().Err(err).Str("champion", enemy.ChampionName).Msg("ability lookup failed")
			abilities = nil
		}

		switch enemyDamageType(champion, abilities) {
		case PhysicalDamage:
			comp.PhysicalDamageChampions++
		case MagicalDamage:
			comp.MagicDamageChampions++
		case MixedDamage:
			comp.MixedDamageChampions++
		}

		cc := ClassifyCrowdControl(abilityTexts(abilities), HardCCKeywords, SlowKeywords)
		if cc.HasHardCC {
			comp.ChampionsWithHardCC++
		}
		if cc.HasSlow {
			comp.ChampionsWithSlows++
		}
		comp.TotalCCAbilities += cc.HardCCAbilities
	}

	size := float64(comp.EnemyTeamSize)
	comp.AverageArmor = totalArmor / size
	comp.AverageMagicResist = totalMR / size
	comp.AverageHealth = totalHP / size
	comp.PhysicalThreat = float64(comp.PhysicalDamageChampions) / size
	comp.MagicalThreat = float64(comp.MagicDamageChampions) / size
	comp.CCThreat = math.Min(1.0, float64(comp.ChampionsWithHardCC)/size)

	log.Info().
		Float64("avg_armor", comp.AverageArmor).
		Float64("avg_mr", comp.AverageMagicResist).
		Int("physical", comp.PhysicalDamageChampions).
		Int("magical", comp.MagicDamageChampions).
		Int("mixed", comp.MixedDamageChampions).
		Int("hard_cc", comp.ChampionsWithHardCC).
		Msg("enemy composition analyzed")

	return comp
}

// estimateStats grows base stats to the given level. Levels below 1 count as 1.
func estimateStats(champion *domain.Champion, level int) (armor, mr, hp float64) {
	if level < 1 {
		level = 1
	}
	if champion != nil {
		return champion.StatsAtLevel(level)
	}
	growth := float64(level - 1)
	return genericArmor + genericArmorPerLevel*growth,
		genericMagicResist + genericMRPerLevel*growth,
		genericHealth + genericHealthPerLevel*growth
}

// enemyDamageType reads the scaling metadata of each ability. Without abilities it falls
// back to the champion's class tags, and to PHYSICAL when those say nothing.
func enemyDamageType(champion *domain.Champion, abilities []*domain.Ability) DamageType {
	if len(abilities) == 0 {
		if champion != nil {
			switch {
			case champion.HasTag(domain.TagMage), champion.HasTag(domain.TagSupport):
				return MagicalDamage
			case champion.HasTag(domain.TagMarksman), champion.HasTag(domain.TagAssassin), champion.HasTag(domain.TagFighter):
				return PhysicalDamage
			}
		}
		return PhysicalDamage
	}

	vars := make([]string, 0, len(abilities))
	for _, ability := range abilities {
		if s := strings.TrimSpace(string(ability.Vars)); s != "" {
			vars = append(vars, s)
		}
	}
	return ClassifyDamage(vars, ADMarkers, APMarkers)
}

func abilityTexts(abilities []*domain.Ability) []string {
	texts := make([]string, 0, len(abilities))
	for _, ability := range abilities {
		texts = append(texts, ability.Description+" "+ability.Tooltip)
	}
	return texts
}
