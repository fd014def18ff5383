package recommend

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/logging"
)

// Recommendation is the engine's answer for one game state.
type Recommendation struct {
	ChampionName     string            `json:"championName"`
	ChampionLevel    int               `json:"championLevel"`
	CurrentGold      float64           `json:"currentGold"`
	ChampionProfile  ScalingType       `json:"championProfile"`
	Profile          ChampionProfile   `json:"profileDetails"`
	EnemyAnalysis    EnemyAnalysis     `json:"enemyAnalysis"`
	Recommendations  []RecommendedItem `json:"recommendations"`
	CandidateCount   int               `json:"candidateCount"`
	ProcessingTimeMs int64             `json:"processingTimeMs"`
}

// EnemyAnalysis is the client-facing summary of an EnemyComposition.
type EnemyAnalysis struct {
	AverageArmor            float64  `json:"averageArmor"`
	AverageMagicResist      float64  `json:"averageMagicResist"`
	PhysicalDamageChampions int      `json:"physicalDamageChampions"`
	MagicDamageChampions    int      `json:"magicDamageChampions"`
	MixedDamageChampions    int      `json:"mixedDamageChampions"`
	CCChampions             int      `json:"ccChampions"`
	EnemyChampions          []string `json:"enemyChampions"`
}

type RecommendedItem struct {
	Rank           int                `json:"rank"`
	ItemID         string             `json:"itemId"`
	ItemName       string             `json:"itemName"`
	FinalScore     float64            `json:"finalScore"`
	TopsisScore    float64            `json:"topsisScore"`
	TodimScore     float64            `json:"todimScore"`
	GoldTotal      float64            `json:"goldTotal"`
	Purchasable    bool               `json:"purchasable"`
	CriteriaScores map[string]float64 `json:"criteriaScores"`
	RawCriteria    map[string]float64 `json:"rawCriteria"`
	GoldEfficiency float64            `json:"goldEfficiency"`
	Explanation    string             `json:"explanation"`
}

func summarizeEnemies(e EnemyComposition) EnemyAnalysis {
	names := e.EnemyChampionNames
	if names == nil {
		names = []string{}
	}
	return EnemyAnalysis{
		AverageArmor:            e.AverageArmor,
		AverageMagicResist:      e.AverageMagicResist,
		PhysicalDamageChampions: e.PhysicalDamageChampions,
		MagicDamageChampions:    e.MagicDamageChampions,
		MixedDamageChampions:    e.MixedDamageChampions,
		CCChampions:             e.ChampionsWithHardCC,
		EnemyChampions:          names,
	}
}

// Engine runs the full recommendation pipeline. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	catalog  Catalog
	config   Config
	profiler *ChampionProfiler
	enemies  *EnemyAnalyzer
}

func NewEngine(catalog Catalog, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Engine{
		catalog:  catalog,
		config:   cfg,
		profiler: NewChampionProfiler(catalog),
		enemies:  NewEnemyAnalyzer(catalog),
	}, nil
}

func (e *Engine) Config() Config {
	return e.config
}

// Profiler exposes the engine's champion profiler for previews.
func (e *Engine) Profiler() *ChampionProfiler {
	return e.profiler
}

// Recommend ranks the items the active player should buy next. Missing catalog data is
// absorbed with defaults; only a failed item listing or a broken score is returned as an
// error.
func (e *Engine) Recommend(ctx context.Context, state *domain.GameState) (*Recommendation, error) {
	start := time.Now()
	log := logging.Ctx(ctx)

	if state == nil || state.ActivePlayer == nil {
		return nil, domain.ErrMissingActivePlayer
	}
	active := state.ActivePlayer
	championName := state.ActiveChampion()
	team := state.ActiveTeam()

	log.Info().
		Str("summoner", active.SummonerName).
		Str("champion", championName).
		Str("team", team).
		Msg("starting item recommendation")

	profile := e.profiler.Profile(ctx, championName, active.Level, active.ChampionStats)
	enemy := e.enemies.Analyze(ctx, state.AllPlayers, team)

	items, err := e.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	result := &Recommendation{
		ChampionName:    championName,
		ChampionLevel:   active.Level,
		CurrentGold:     active.CurrentGold,
		ChampionProfile: profile.ScalingType,
		Profile:         profile,
		EnemyAnalysis:   summarizeEnemies(enemy),
		Recommendations: []RecommendedItem{},
	}

	filtered := FilterCandidates(ctx, items, profile, state.OwnedItemIDs(), active.CurrentGold)
	result.CandidateCount = len(filtered)
	if len(filtered) == 0 {
		log.Warn().Str("champion", championName).Msg("no candidate items found")
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
		return result, nil
	}

	candidates := BuildCandidates(filtered, e.config.GoldValues)
	weights := CalculateWeights(profile, enemy)
	log.Debug().Interface("weights", weights.Weights.Map()).Msg("criteria weights computed")

	RankTOPSIS(candidates, weights)
	RankTODIM(candidates, weights, e.config.LossAversion)
	top := Fuse(candidates, e.config.TopsisWeight, e.config.TodimWeight, e.config.MaxRecommendations)

	for i, cand := range top {
		if math.IsNaN(cand.FinalScore) || math.IsInf(cand.FinalScore, 0) {
			return nil, fmt.Errorf("non-finite score for item %s", cand.Item.ID)
		}
		result.Recommendations = append(result.Recommendations, RecommendedItem{
			Rank:           i + 1,
			ItemID:         cand.Item.ID,
			ItemName:       cand.Item.Name,
			FinalScore:     cand.FinalScore,
			TopsisScore:    cand.TOPSISScore,
			TodimScore:     cand.TODIMScore,
			GoldTotal:      float64(cand.Item.GoldTotal),
			Purchasable:    cand.Purchasable,
			CriteriaScores: cand.Weighted.Map(),
			RawCriteria:    cand.Raw.Map(),
			GoldEfficiency: cand.GoldEfficiency,
			Explanation:    Explain(cand, profile, enemy),
		})
	}

	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	log.Info().
		Int("candidates", len(candidates)).
		Str("top_item", result.Recommendations[0].ItemName).
		Int64("duration_ms", result.ProcessingTimeMs).
		Msg("item recommendation completed")
	return result, nil
}
