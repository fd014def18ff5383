package recommend

import (
	"context"
	"testing"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestAllScalingTypesHaveRules(t *testing.T) {
	for _, st := range AllScalingTypes {
		_, hasRule := relevanceRules[st]
		assert.True(t, hasRule, "%s has no relevance rule", st)

		bonuses, hasBonus := classBonuses[st]
		assert.True(t, hasBonus, "%s has no class bonus", st)
		assert.NotEmpty(t, bonuses)
	}
	assert.Len(t, relevanceRules, len(AllScalingTypes))
	assert.Len(t, classBonuses, len(AllScalingTypes))
}

func TestIsRelevant(t *testing.T) {
	bladeOfTheRuinedKing := &domain.Item{PercentLifeStealMod: 0.1}
	ludensEcho := &domain.Item{FlatMagicDamageMod: 90}
	tearOfTheGoddess := &domain.Item{PercentMPPoolMod: 0.1}
	sunfireAegis := &domain.Item{FlatHPPoolMod: 450, FlatArmorMod: 35}
	boots := &domain.Item{FlatMovementSpeedMod: 25}
	gunblade := &domain.Item{FlatPhysicalDamageMod: 40, FlatMagicDamageMod: 80}
	empty := &domain.Item{}

	tests := []struct {
		scaling ScalingType
		item    *domain.Item
		want    bool
	}{
		{ADFocused, bladeOfTheRuinedKing, true},
		{ADFocused, ludensEcho, false},
		{APFocused, ludensEcho, true},
		{APFocused, tearOfTheGoddess, true},
		{APFocused, sunfireAegis, false},
		{Tank, sunfireAegis, true},
		{Tank, boots, false},
		{Mixed, gunblade, true},
		{Mixed, ludensEcho, true},
		{Mixed, sunfireAegis, false},
		{Utility, boots, true},
		{Utility, sunfireAegis, false},
		{ScalingType("SUPPORT"), empty, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRelevant(tt.item, tt.scaling), "%s", tt.scaling)
	}
}

func TestFilterCandidates(t *testing.T) {
	infinityEdge := completeItem("3031", "Infinity Edge", 3400)
	infinityEdge.FlatPhysicalDamageMod = 65

	longSword := completeItem("1036", "Long Sword", 350)
	longSword.FlatPhysicalDamageMod = 10
	longSword.Depth = 1
	longSword.Into = datatypes.JSON(`["3031"]`)

	doran := completeItem("1055", "Doran's Blade", 450)
	doran.FlatPhysicalDamageMod = 8
	doran.Depth = 1 // no upgrade path, so still complete

	notInStore := completeItem("3400", "Your Cut", 0)
	notInStore.FlatPhysicalDamageMod = 30
	notInStore.InStore = false

	owned := completeItem("3072", "Bloodthirster", 3400)
	owned.FlatPhysicalDamageMod = 55

	rabadon := completeItem("3089", "Rabadon's Deathcap", 3600)
	rabadon.FlatMagicDamageMod = 120

	items := []*domain.Item{infinityEdge, longSword, doran, notInStore, owned, rabadon}
	profile := ChampionProfile{ScalingType: ADFocused}

	got := FilterCandidates(context.Background(), items, profile, map[string]struct{}{"3072": {}}, 1200)

	var ids []string
	for _, item := range got {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"3031", "1055"}, ids)

	none := FilterCandidates(context.Background(), []*domain.Item{rabadon}, profile, nil, 0)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
