package service

import (
	"fmt"

	"github.com/dom/league-item-advisor/internal/config"
	"github.com/dom/league-item-advisor/internal/recommend"
	"github.com/dom/league-item-advisor/internal/repository"
)

type Services struct {
	Champion       *ChampionService
	Recommendation *RecommendationService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) (*Services, error) {
	engineCfg, err := EngineConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}

	engine, err := recommend.NewEngine(newRepoCatalog(repos), engineCfg)
	if err != nil {
		return nil, err
	}

	return &Services{
		Champion:       NewChampionService(repos.Champion, engine.Profiler()),
		Recommendation: NewRecommendationService(engine),
	}, nil
}
