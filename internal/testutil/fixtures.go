package testutil

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dom/league-item-advisor/internal/domain"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func mustJSON(t *testing.T, v any) datatypes.JSON {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	return datatypes.JSON(b)
}

// ChampionBuilder creates test champions
type ChampionBuilder struct {
	champion domain.Champion
	tags     []string
}

// NewChampionBuilder creates a new ChampionBuilder with default values
func NewChampionBuilder() *ChampionBuilder {
	id := fmt.Sprintf("Champion%s", uuid.New().String()[:8])
	return &ChampionBuilder{
		champion: domain.Champion{
			ID:                 id,
			Key:                id,
			Name:               id,
			Title:              "The Test Champion",
			HP:                 600,
			HPPerLevel:         100,
			Armor:              30,
			ArmorPerLevel:      4,
			SpellBlock:         30,
			SpellBlockPerLevel: 1.3,
		},
		tags: []string{"Fighter"},
	}
}

// WithID sets the champion ID, key and name
func (b *ChampionBuilder) WithID(id string) *ChampionBuilder {
	b.champion.ID = id
	b.champion.Key = id
	b.champion.Name = id
	return b
}

// WithName sets the champion name
func (b *ChampionBuilder) WithName(name string) *ChampionBuilder {
	b.champion.Name = name
	return b
}

// WithTags sets the champion tags
func (b *ChampionBuilder) WithTags(tags ...string) *ChampionBuilder {
	b.tags = tags
	return b
}

// WithDefenses sets level 1 armor, magic resist and health with their growth
func (b *ChampionBuilder) WithDefenses(armor, armorPerLevel, mr, mrPerLevel, hp, hpPerLevel float64) *ChampionBuilder {
	b.champion.Armor = armor
	b.champion.ArmorPerLevel = armorPerLevel
	b.champion.SpellBlock = mr
	b.champion.SpellBlockPerLevel = mrPerLevel
	b.champion.HP = hp
	b.champion.HPPerLevel = hpPerLevel
	return b
}

// Model returns the champion without persisting it
func (b *ChampionBuilder) Model(t *testing.T) *domain.Champion {
	t.Helper()
	champion := b.champion
	champion.Tags = mustJSON(t, b.tags)
	champion.LastSyncedAt = time.Now()
	return &champion
}

// Build creates the champion in the database
func (b *ChampionBuilder) Build(t *testing.T, db *gorm.DB) *domain.Champion {
	t.Helper()

	champion := b.Model(t)
	if err := db.Create(champion).Error; err != nil {
		t.Fatalf("failed to create champion: %v", err)
	}
	return champion
}

// ItemBuilder creates test items. Defaults describe a finished, purchasable item.
type ItemBuilder struct {
	item domain.Item
	into []string
}

func NewItemBuilder(id, name string) *ItemBuilder {
	return &ItemBuilder{
		item: domain.Item{
			ID:          id,
			Name:        name,
			GoldTotal:   3000,
			GoldBase:    800,
			GoldSell:    2100,
			Purchasable: true,
			InStore:     true,
			Depth:       3,
		},
	}
}

func (b *ItemBuilder) WithGold(total int) *ItemBuilder {
	b.item.GoldTotal = total
	b.item.GoldSell = total * 7 / 10
	return b
}

// AsComponent marks the item as building into the given upgrades
func (b *ItemBuilder) AsComponent(into ...string) *ItemBuilder {
	b.item.Depth = 1
	b.into = into
	return b
}

func (b *ItemBuilder) NotInStore() *ItemBuilder {
	b.item.InStore = false
	return b
}

// With applies arbitrary stat edits
func (b *ItemBuilder) With(fn func(*domain.Item)) *ItemBuilder {
	fn(&b.item)
	return b
}

func (b *ItemBuilder) Model(t *testing.T) *domain.Item {
	t.Helper()
	item := b.item
	if b.into != nil {
		item.Into = mustJSON(t, b.into)
	}
	return &item
}

func (b *ItemBuilder) Build(t *testing.T, db *gorm.DB) *domain.Item {
	t.Helper()

	item := b.Model(t)
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create item: %v", err)
	}
	return item
}

// AbilityBuilder creates champion abilities with scaling links and level tips
type AbilityBuilder struct {
	ability domain.Ability
	vars    []map[string]any
	tips    []string
}

func NewAbilityBuilder(championID, id string) *AbilityBuilder {
	return &AbilityBuilder{
		ability: domain.Ability{
			ID:         id,
			ChampionID: championID,
			Name:       id,
		},
	}
}

// WithScaling appends one {"link", "coeff"} entry
func (b *AbilityBuilder) WithScaling(link string, coeff float64) *AbilityBuilder {
	b.vars = append(b.vars, map[string]any{"link": link, "coeff": coeff})
	return b
}

func (b *AbilityBuilder) WithText(description string) *AbilityBuilder {
	b.ability.Description = description
	return b
}

func (b *AbilityBuilder) WithLevelTips(labels ...string) *AbilityBuilder {
	b.tips = labels
	return b
}

func (b *AbilityBuilder) Model(t *testing.T) *domain.Ability {
	t.Helper()
	ability := b.ability
	if b.vars != nil {
		ability.Vars = mustJSON(t, b.vars)
	}
	if b.tips != nil {
		ability.LevelTipLabels = mustJSON(t, b.tips)
	}
	return &ability
}

func (b *AbilityBuilder) Build(t *testing.T, db *gorm.DB) *domain.Ability {
	t.Helper()

	ability := b.Model(t)
	if err := db.Create(ability).Error; err != nil {
		t.Fatalf("failed to create ability: %v", err)
	}
	return ability
}

// SeedChampions creates N test champions in the database
func SeedChampions(t *testing.T, db *gorm.DB, count int) []*domain.Champion {
	t.Helper()

	champions := make([]*domain.Champion, count)
	for i := 0; i < count; i++ {
		champions[i] = NewChampionBuilder().
			WithID(fmt.Sprintf("TestChampion%d", i)).
			WithName(fmt.Sprintf("Test Champion %d", i)).
			Build(t, db)
	}
	return champions
}

// SeedBotLane loads a small catalog: Jinx (AD scaling) against Darius and Lux, plus a
// handful of AD, AP, tank and component items.
func SeedBotLane(t *testing.T, db *gorm.DB) {
	t.Helper()

	NewChampionBuilder().WithID("Jinx").WithTags("Marksman").
		WithDefenses(26, 4.7, 30, 1.3, 630, 105).Build(t, db)
	NewChampionBuilder().WithID("Darius").WithTags("Fighter", "Tank").
		WithDefenses(39, 5.2, 32, 2.05, 652, 114).Build(t, db)
	NewChampionBuilder().WithID("Lux").WithTags("Mage", "Support").
		WithDefenses(21, 5.2, 30, 1.3, 580, 99).Build(t, db)

	NewAbilityBuilder("Jinx", "JinxQ").WithScaling("attackdamage", 1.4).
		WithText("Jinx swaps weapons.").WithLevelTips("Attack Speed").Build(t, db)
	NewAbilityBuilder("Jinx", "JinxW").WithScaling("totalad", 1.6).
		WithText("Fires a shock blast that slows the first enemy hit.").WithLevelTips("Damage", "Cooldown").Build(t, db)
	NewAbilityBuilder("Jinx", "JinxE").WithScaling("spelldamage", 1.0).
		WithText("Throws chompers that root enemies.").Build(t, db)
	NewAbilityBuilder("Darius", "DariusE").WithScaling("bonusattackdamage", 0.5).
		WithText("Pulls in and slows enemies.").Build(t, db)
	NewAbilityBuilder("Lux", "LuxQ").WithScaling("spelldamage", 0.65).
		WithText("Binds up to two enemies, dealing magic damage.").Build(t, db)

	NewItemBuilder("3031", "Infinity Edge").WithGold(3400).With(func(i *domain.Item) {
		i.FlatPhysicalDamageMod = 65
		i.FlatCritChanceMod = 0.25
	}).Build(t, db)
	NewItemBuilder("3072", "Bloodthirster").WithGold(3400).With(func(i *domain.Item) {
		i.FlatPhysicalDamageMod = 55
		i.PercentLifeStealMod = 0.15
	}).Build(t, db)
	NewItemBuilder("3006", "Berserker's Greaves").WithGold(1100).With(func(i *domain.Item) {
		i.Depth = 2
		i.PercentAttackSpeedMod = 0.35
		i.FlatMovementSpeedMod = 45
	}).Build(t, db)
	NewItemBuilder("1036", "Long Sword").WithGold(350).AsComponent("3031", "3072").With(func(i *domain.Item) {
		i.FlatPhysicalDamageMod = 10
	}).Build(t, db)
	NewItemBuilder("3089", "Rabadon's Deathcap").WithGold(3600).With(func(i *domain.Item) {
		i.FlatMagicDamageMod = 120
	}).Build(t, db)
	NewItemBuilder("3068", "Sunfire Aegis").WithGold(2700).With(func(i *domain.Item) {
		i.FlatHPPoolMod = 450
		i.FlatArmorMod = 35
	}).Build(t, db)
}

// GameStateBuilder assembles live client snapshots
type GameStateBuilder struct {
	state domain.GameState
}

// NewGameStateBuilder starts a snapshot for the named active summoner
func NewGameStateBuilder(summoner string) *GameStateBuilder {
	return &GameStateBuilder{
		state: domain.GameState{
			ActivePlayer: &domain.ActivePlayer{
				SummonerName: summoner,
				Level:        1,
			},
			GameData: domain.GameData{GameMode: "CLASSIC", MapNumber: 11},
		},
	}
}

func (b *GameStateBuilder) WithLevel(level int) *GameStateBuilder {
	b.state.ActivePlayer.Level = level
	return b
}

func (b *GameStateBuilder) WithGold(gold float64) *GameStateBuilder {
	b.state.ActivePlayer.CurrentGold = gold
	return b
}

func (b *GameStateBuilder) WithStats(ad, ap float64) *GameStateBuilder {
	b.state.ActivePlayer.ChampionStats.AttackDamage = ad
	b.state.ActivePlayer.ChampionStats.AbilityPower = ap
	return b
}

// WithPlayer adds a roster entry. itemIDs are the items the player holds.
func (b *GameStateBuilder) WithPlayer(summoner, champion, team string, level int, itemIDs ...int) *GameStateBuilder {
	p := domain.Player{
		SummonerName: summoner,
		ChampionName: champion,
		Team:         team,
		Level:        level,
	}
	for slot, id := range itemIDs {
		p.Items = append(p.Items, domain.HeldItem{ItemID: id, Slot: slot, Count: 1})
	}
	b.state.AllPlayers = append(b.state.AllPlayers, p)
	return b
}

func (b *GameStateBuilder) Build() *domain.GameState {
	state := b.state
	active := *b.state.ActivePlayer
	state.ActivePlayer = &active
	state.AllPlayers = append([]domain.Player(nil), b.state.AllPlayers...)
	return &state
}

// BotLaneGameState matches SeedBotLane: Jinx holding a Bloodthirster against Darius and Lux.
func BotLaneGameState() *domain.GameState {
	return NewGameStateBuilder("Faker").
		WithLevel(9).
		WithGold(1450).
		WithStats(140, 0).
		WithPlayer("Faker", "Jinx", domain.TeamOrder, 9, 3072).
		WithPlayer("Enemy1", "Darius", domain.TeamChaos, 10).
		WithPlayer("Enemy2", "Lux", domain.TeamChaos, 8).
		Build()
}

// NewJSONRequest creates an HTTP request with a JSON body
func NewJSONRequest(t *testing.T, method, url string, body any) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return req
}
