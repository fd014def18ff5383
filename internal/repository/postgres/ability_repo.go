package postgres

import (
	"context"

	"github.com/dom/league-item-advisor/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type abilityRepository struct {
	db *gorm.DB
}

func NewAbilityRepository(db *gorm.DB) *abilityRepository {
	return &abilityRepository{db: db}
}

func (r *abilityRepository) UpsertMany(ctx context.Context, abilities []*domain.Ability) error {
	if len(abilities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(abilities).Error
}

// GetByChampionID returns the champion's abilities in ID order; none is not an error.
func (r *abilityRepository) GetByChampionID(ctx context.Context, championID string) ([]*domain.Ability, error) {
	var abilities []*domain.Ability
	err := r.db.WithContext(ctx).
		Where("champion_id = ?", championID).
		Order("id ASC").
		Find(&abilities).Error
	if err != nil {
		return nil, err
	}
	return abilities, nil
}
