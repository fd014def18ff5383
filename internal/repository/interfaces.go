package repository

import (
	"context"

	"github.com/dom/league-item-advisor/internal/domain"
)

type ChampionRepository interface {
	Upsert(ctx context.Context, champion *domain.Champion) error
	UpsertMany(ctx context.Context, champions []*domain.Champion) error
	GetAll(ctx context.Context) ([]*domain.Champion, error)
	GetByID(ctx context.Context, id string) (*domain.Champion, error)
}

type ItemRepository interface {
	UpsertMany(ctx context.Context, items []*domain.Item) error
	GetAll(ctx context.Context) ([]*domain.Item, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
}

type AbilityRepository interface {
	UpsertMany(ctx context.Context, abilities []*domain.Ability) error
	GetByChampionID(ctx context.Context, championID string) ([]*domain.Ability, error)
}

type Repositories struct {
	Champion ChampionRepository
	Item     ItemRepository
	Ability  AbilityRepository
}
