package recommend

import (
	"context"
	"testing"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDetermineScalingType(t *testing.T) {
	tests := []struct {
		name                  string
		ad, ap, hp, armor, mr float64
		want                  ScalingType
	}{
		{name: "no offensive stats", want: Utility},
		{name: "attack damage dominant", ad: 180, ap: 20, want: ADFocused},
		{name: "ability power dominant", ad: 60, ap: 300, want: APFocused},
		{name: "defensive ratios outweigh stats", ad: 50, ap: 50, hp: 80, armor: 20, mr: 10, want: Tank},
		{name: "even split", ad: 100, ap: 80, want: Mixed},
		{name: "exactly sixty percent is not focused", ad: 60, ap: 40, want: Mixed},
		{name: "seventy thirty split", ad: 70, ap: 30, want: ADFocused},
		{name: "tank check runs before mixed", ad: 100, ap: 100, armor: 150, mr: 60, want: Tank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineScalingType(tt.ad, tt.ap, tt.hp, tt.armor, tt.mr))
		})
	}
}

func TestScalingType_Label(t *testing.T) {
	assert.Equal(t, "ad focused", ADFocused.Label())
	assert.Equal(t, "tank", Tank.Label())
}

func TestBuildProfile_AccumulatesRatios(t *testing.T) {
	abilities := []*domain.Ability{
		ability("JinxQ", `[{"link":"TotalAD","coeff":1.1},{"link":"bonusad","coeff":[0.4,0.5]}]`, "", "Damage", "Attack Speed"),
		ability("JinxW", `[{"link":"attackdamage","coeff":1.6},{"link":"spelldamage","coeff":0}]`, "", "Damage", "Cooldown"),
		ability("JinxE", `[{"link":"spelldamage","coeff":1.0},{"link":"bonushealth","coeff":0.05}]`, ""),
	}
	stats := domain.ChampionStats{AttackDamage: 150, AbilityPower: 10, AttackSpeed: 1.1, AbilityHaste: 5}

	profile := BuildProfile(context.Background(), "Jinx", 9, stats, abilities)

	assert.Equal(t, "Jinx", profile.ChampionName)
	assert.Equal(t, 9, profile.ChampionLevel)
	assert.Equal(t, 3, profile.TotalAbilities)
	assert.InDelta(t, 2.7, profile.TotalADRatio, 1e-9)
	assert.InDelta(t, 0.4, profile.TotalBonusADRatio, 1e-9)
	assert.InDelta(t, 1.0, profile.TotalAPRatio, 1e-9)
	assert.InDelta(t, 0.05, profile.TotalHealthRatio, 1e-9)
	assert.Equal(t, 2, profile.AbilitiesWithADScaling)
	assert.Equal(t, 1, profile.AbilitiesWithAPScaling, "a zero AP coefficient does not count")
	assert.Equal(t, []string{"Damage", "Attack Speed", "Cooldown"}, profile.AbilityTags)
	assert.Equal(t, ADFocused, profile.ScalingType)
	assert.Equal(t, 1.1, profile.CurrentAttackSpeed)
	assert.Equal(t, 5.0, profile.CurrentAbilityHaste)
}

func TestBuildProfile_MalformedAbilityContributesNothing(t *testing.T) {
	abilities := []*domain.Ability{
		ability("Broken", `{"link":`, ""),
		ability("Fine", `[{"link":"ap","coeff":0.6}]`, ""),
	}

	profile := BuildProfile(context.Background(), "Lux", 6, domain.ChampionStats{AbilityPower: 200}, abilities)

	assert.Equal(t, 2, profile.TotalAbilities)
	assert.InDelta(t, 0.6, profile.TotalAPRatio, 1e-9)
	assert.Equal(t, 1, profile.AbilitiesWithAPScaling)
	assert.Equal(t, APFocused, profile.ScalingType)
}

func TestChampionProfiler_DefaultProfile(t *testing.T) {
	stats := domain.ChampionStats{AttackDamage: 200, AbilityPower: 0, AttackSpeed: 0.9}

	t.Run("no abilities", func(t *testing.T) {
		profiler := NewChampionProfiler(newFakeCatalog())
		profile := profiler.Profile(context.Background(), "Nobody", 3, stats)

		assert.Equal(t, Utility, profile.ScalingType)
		assert.Zero(t, profile.TotalADRatio)
		assert.Zero(t, profile.TotalAbilities)
		assert.Equal(t, 200.0, profile.CurrentAD)
		assert.NotNil(t, profile.AbilityTags)
	})

	t.Run("lookup failure", func(t *testing.T) {
		catalog := newFakeCatalog()
		catalog.abilitiesErr = errCatalogDown
		profile := NewChampionProfiler(catalog).Profile(context.Background(), "Jinx", 3, stats)

		assert.Equal(t, Utility, profile.ScalingType)
	})
}

func TestParseScalingLinks(t *testing.T) {
	links, err := parseScalingLinks(datatypes.JSON(`[
		{"link":"SpellDamage","coeff":[0.75,0.8]},
		{"link":"spelldamage","coeff":9},
		{"link":"armor","coeff":null},
		{"link":"mr","coeff":"high"}
	]`))
	require.NoError(t, err)

	v, ok := links.value(apLinks)
	assert.True(t, ok)
	assert.Equal(t, 0.75, v, "first coefficient per link wins")

	_, ok = links.value(armorLinks)
	assert.False(t, ok, "null coefficients are skipped")

	v, ok = links.value(mrLinks)
	assert.True(t, ok)
	assert.Zero(t, v)

	empty, err := parseScalingLinks(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = parseScalingLinks(datatypes.JSON(`not json`))
	assert.Error(t, err)
}
