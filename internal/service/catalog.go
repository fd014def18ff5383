package service

import (
	"context"
	"errors"
	"time"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/dom/league-item-advisor/internal/metrics"
	"github.com/dom/league-item-advisor/internal/repository"
)

// repoCatalog serves the engine's catalog reads from the repositories and times each one.
type repoCatalog struct {
	items     repository.ItemRepository
	abilities repository.AbilityRepository
	champions repository.ChampionRepository
}

func newRepoCatalog(repos *repository.Repositories) *repoCatalog {
	return &repoCatalog{
		items:     repos.Item,
		abilities: repos.Ability,
		champions: repos.Champion,
	}
}

func (c *repoCatalog) ListItems(ctx context.Context) ([]*domain.Item, error) {
	start := time.Now()
	items, err := c.items.GetAll(ctx)
	metrics.RecordCatalogQuery("list_items", time.Since(start), err)
	return items, err
}

func (c *repoCatalog) FindAbilities(ctx context.Context, championID string) ([]*domain.Ability, error) {
	start := time.Now()
	abilities, err := c.abilities.GetByChampionID(ctx, championID)
	metrics.RecordCatalogQuery("find_abilities", time.Since(start), err)
	return abilities, err
}

// FindChampion returns (nil, nil) for champions missing from the catalog.
func (c *repoCatalog) FindChampion(ctx context.Context, championID string) (*domain.Champion, error) {
	start := time.Now()
	champion, err := c.champions.GetByID(ctx, championID)
	if errors.Is(err, domain.ErrChampionNotFound) {
		metrics.RecordCatalogQuery("find_champion", time.Since(start), nil)
		return nil, nil
	}
	metrics.RecordCatalogQuery("find_champion", time.Since(start), err)
	return champion, err
}
