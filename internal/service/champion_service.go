package service

import (
	"context"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/recommend"
	"github.com/dom/league-item-advisor/internal/repository"
)

type ChampionService struct {
	championRepo repository.ChampionRepository
	profiler     *recommend.ChampionProfiler
}

func NewChampionService(championRepo repository.ChampionRepository, profiler *recommend.ChampionProfiler) *ChampionService {
	return &ChampionService{
		championRepo: championRepo,
		profiler:     profiler,
	}
}

func (s *ChampionService) GetAllChampions(ctx context.Context) ([]*domain.Champion, error) {
	return s.championRepo.GetAll(ctx)
}

func (s *ChampionService) GetChampion(ctx context.Context, id string) (*domain.Champion, error) {
	return s.championRepo.GetByID(ctx, id)
}

// ProfileChampion previews the scaling profile the engine would build for the champion
// at the given level and live stats.
func (s *ChampionService) ProfileChampion(ctx context.Context, id string, level int, stats domain.ChampionStats) (*recommend.ChampionProfile, error) {
	champion, err := s.championRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := s.profiler.Profile(ctx, champion.ID, level, stats)
	return &profile, nil
}
