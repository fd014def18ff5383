package main

import (
	"bytes"
	"testing"

	"github.com/dom/league-item-advisor/internal/recommend"
	"github.com/stretchr/testify/assert"
)

func TestPrintRecommendation(t *testing.T) {
	rec := &recommend.Recommendation{
		ChampionName:    "Jinx",
		ChampionLevel:   9,
		CurrentGold:     1450,
		ChampionProfile: recommend.ADFocused,
		EnemyAnalysis: recommend.EnemyAnalysis{
			EnemyChampions:          []string{"Darius", "Lux"},
			PhysicalDamageChampions: 1,
			MagicDamageChampions:    1,
		},
		Recommendations: []recommend.RecommendedItem{
			{Rank: 1, ItemName: "Infinity Edge", GoldTotal: 3400, FinalScore: 0.81, Explanation: "Recommended for ad focused champions."},
			{Rank: 2, ItemName: "Berserker's Greaves", GoldTotal: 1100, FinalScore: 0.42, Purchasable: true},
		},
		CandidateCount: 2,
	}

	var out bytes.Buffer
	printRecommendation(&out, rec, false)

	assert.Contains(t, out.String(), "Jinx level 9, 1450 gold, profile AD_FOCUSED")
	assert.Contains(t, out.String(), "Enemies: Darius, Lux")
	assert.Contains(t, out.String(), "Infinity Edge *")
	assert.NotContains(t, out.String(), "Berserker's Greaves *")
	assert.NotContains(t, out.String(), "Recommended for")

	out.Reset()
	printRecommendation(&out, rec, true)
	assert.Contains(t, out.String(), "TOPSIS")
	assert.Contains(t, out.String(), "1. Recommended for ad focused champions.")

	out.Reset()
	printRecommendation(&out, &recommend.Recommendation{ChampionName: "Unknown"}, false)
	assert.Contains(t, out.String(), "No items to recommend.")
}
