package recommend

import (
	"context"
	"errors"

	"github.com/dom/league-item-advisor/internal/domain"
	"gorm.io/datatypes"
)

// fakeCatalog is an in-memory Catalog keyed by champion ID.
type fakeCatalog struct {
	items     []*domain.Item
	abilities map[string][]*domain.Ability
	champions map[string]*domain.Champion

	itemsErr     error
	abilitiesErr error
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		abilities: map[string][]*domain.Ability{},
		champions: map[string]*domain.Champion{},
	}
}

func (f *fakeCatalog) ListItems(ctx context.Context) ([]*domain.Item, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items, nil
}

func (f *fakeCatalog) FindAbilities(ctx context.Context, championID string) ([]*domain.Ability, error) {
	if f.abilitiesErr != nil {
		return nil, f.abilitiesErr
	}
	return f.abilities[championID], nil
}

func (f *fakeCatalog) FindChampion(ctx context.Context, championID string) (*domain.Champion, error) {
	return f.champions[championID], nil
}

var errCatalogDown = errors.New("catalog unavailable")

func ability(id, vars, text string, tips ...string) *domain.Ability {
	labels := `[]`
	if len(tips) > 0 {
		labels = `["` + tips[0] + `"`
		for _, t := range tips[1:] {
			labels += `,"` + t + `"`
		}
		labels += `]`
	}
	return &domain.Ability{
		ID:             id,
		Name:           id,
		Description:    text,
		LevelTipLabels: datatypes.JSON(labels),
		Vars:           datatypes.JSON(vars),
	}
}

// completeItem is an in-store, purchasable, fully built item.
func completeItem(id, name string, gold int) *domain.Item {
	return &domain.Item{
		ID:          id,
		Name:        name,
		GoldTotal:   gold,
		Purchasable: true,
		InStore:     true,
		Depth:       3,
	}
}

func candidatesFromRaw(rows ...Vector) []*ItemCandidate {
	out := make([]*ItemCandidate, 0, len(rows))
	for i, raw := range rows {
		out = append(out, &ItemCandidate{
			Item: &domain.Item{ID: string(rune('A' + i))},
			Raw:  raw,
		})
	}
	return out
}

func uniformWeights() WeightProfile {
	w := WeightProfile{}
	for _, c := range AllCriteria {
		w.Weights[c] = 1
	}
	w.Normalize()
	return w
}
