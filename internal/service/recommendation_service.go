package service

import (
	"context"
	"time"

	"github.com/dom/league-item-advisor/internal/config"
	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/logging"
	"github.com/dom/league-item-advisor/internal/metrics"
	"github.com/dom/league-item-advisor/internal/recommend"
)

type RecommendationService struct {
	engine *recommend.Engine
}

func NewRecommendationService(engine *recommend.Engine) *RecommendationService {
	return &RecommendationService{engine: engine}
}

// EngineConfig converts the application's engine settings.
func EngineConfig(cfg *config.Config) (recommend.Config, error) {
	ec := recommend.DefaultConfig()
	ec.LossAversion = cfg.Engine.LossAversion
	ec.TopsisWeight = cfg.Engine.TopsisWeight
	ec.TodimWeight = cfg.Engine.TodimWeight
	ec.MaxRecommendations = cfg.Engine.MaxRecommendations

	ec, err := ec.WithGoldValues(cfg.Engine.GoldValues)
	if err != nil {
		return recommend.Config{}, err
	}
	return ec, ec.Validate()
}

// Recommend runs the pipeline for one game state. A request ID is attached to ctx for
// log correlation when the caller has not set one.
func (s *RecommendationService) Recommend(ctx context.Context, state *domain.GameState) (*recommend.Recommendation, error) {
	if logging.RequestIDFromContext(ctx) == "" {
		ctx = logging.ContextWithRequestID(ctx, logging.NewRequestID())
	}

	start := time.Now()
	rec, err := s.engine.Recommend(ctx, state)
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start), 0, "")
		logging.Ctx(ctx).Error().Err(err).Msg("item recommendation failed")
		return nil, err
	}

	outcome := metrics.OutcomeOK
	if len(rec.Recommendations) == 0 {
		outcome = metrics.OutcomeEmpty
	}
	metrics.RecordRecommendation(outcome, time.Since(start), rec.CandidateCount, string(rec.ChampionProfile))
	return rec, nil
}
