package recommend

import (
	"context"

	"github.com/dom/league-item-advisor/internal/domain"
)

// Catalog is the read-only static game data the engine consults. Lookups may return
// empty results; FindChampion returns (nil, nil) when the champion is unknown.
type Catalog interface {
	ListItems(ctx context.Context) ([]*domain.Item, error)
	FindAbilities(ctx context.Context, championID string) ([]*domain.Ability, error)
	FindChampion(ctx context.Context, championID string) (*domain.Champion, error)
}
