package domain

import (
	"strconv"

	"gorm.io/datatypes"
)

// GameState is a snapshot from the League Live Client Data API (/liveclientdata/allgamedata).
// Only a handful of fields drive recommendations; runes, summoner spells and scores are
// carried along untouched.
type GameState struct {
	ActivePlayer *ActivePlayer `json:"activePlayer" validate:"required"`
	AllPlayers   []Player      `json:"allPlayers" validate:"dive"`
	GameData     GameData      `json:"gameData"`
}

type ActivePlayer struct {
	Abilities     map[string]AbilityState `json:"abilities,omitempty"`
	ChampionStats ChampionStats           `json:"championStats"`
	CurrentGold   float64                 `json:"currentGold" validate:"gte=0"`
	FullRunes     datatypes.JSON          `json:"fullRunes,omitempty"`
	Level         int                     `json:"level" validate:"gte=0,lte=30"`
	SummonerName  string                  `json:"summonerName" validate:"required"`
}

type AbilityState struct {
	AbilityLevel   int    `json:"abilityLevel"`
	DisplayName    string `json:"displayName"`
	ID             string `json:"id"`
	RawDescription string `json:"rawDescription"`
	RawDisplayName string `json:"rawDisplayName"`
}

type ChampionStats struct {
	AbilityHaste      float64 `json:"abilityHaste"`
	AbilityPower      float64 `json:"abilityPower"`
	Armor             float64 `json:"armor"`
	AttackDamage      float64 `json:"attackDamage"`
	AttackRange       float64 `json:"attackRange"`
	AttackSpeed       float64 `json:"attackSpeed"`
	CooldownReduction float64 `json:"cooldownReduction"`
	CritChance        float64 `json:"critChance"`
	CritDamage        float64 `json:"critDamage"`
	CurrentHealth     float64 `json:"currentHealth"`
	LifeSteal         float64 `json:"lifeSteal"`
	MagicResist       float64 `json:"magicResist"`
	MaxHealth         float64 `json:"maxHealth"`
	MoveSpeed         float64 `json:"moveSpeed"`
	ResourceType      string  `json:"resourceType"`
	ResourceValue     float64 `json:"resourceValue"`
	ResourceMax       float64 `json:"resourceMax"`
}

type Player struct {
	ChampionName    string         `json:"championName" validate:"required"`
	RawChampionName string         `json:"rawChampionName,omitempty"`
	IsBot           bool           `json:"isBot"`
	IsDead          bool           `json:"isDead"`
	Items           []HeldItem     `json:"items"`
	Level           int            `json:"level" validate:"gte=0,lte=30"`
	Position        string         `json:"position,omitempty"`
	RespawnTimer    float64        `json:"respawnTimer"`
	Runes           datatypes.JSON `json:"runes,omitempty"`
	Scores          Scores         `json:"scores"`
	SkinID          int            `json:"skinID"`
	SummonerName    string         `json:"summonerName"`
	SummonerSpells  datatypes.JSON `json:"summonerSpells,omitempty"`
	Team            string         `json:"team" validate:"required"`
}

type HeldItem struct {
	CanUse      bool   `json:"canUse"`
	Consumable  bool   `json:"consumable"`
	Count       int    `json:"count"`
	DisplayName string `json:"displayName"`
	ItemID      int    `json:"itemID"`
	Price       int    `json:"price"`
	Slot        int    `json:"slot"`
}

type Scores struct {
	Assists    int     `json:"assists"`
	CreepScore int     `json:"creepScore"`
	Deaths     int     `json:"deaths"`
	Kills      int     `json:"kills"`
	WardScore  float64 `json:"wardScore"`
}

type GameData struct {
	GameMode   string  `json:"gameMode"`
	GameTime   float64 `json:"gameTime"`
	MapName    string  `json:"mapName"`
	MapNumber  int     `json:"mapNumber"`
	MapTerrain string  `json:"mapTerrain"`
}

const (
	TeamOrder = "ORDER"
	TeamChaos = "CHAOS"

	UnknownChampion = "Unknown"
)

// ActiveEntry returns the allPlayers entry for the active summoner, if present.
func (g *GameState) ActiveEntry() (*Player, bool) {
	if g.ActivePlayer == nil {
		return nil, false
	}
	for i := range g.AllPlayers {
		if g.AllPlayers[i].SummonerName == g.ActivePlayer.SummonerName {
			return &g.AllPlayers[i], true
		}
	}
	return nil, false
}

// ActiveTeam returns the active player's team, ORDER when the roster does not list them.
func (g *GameState) ActiveTeam() string {
	if p, ok := g.ActiveEntry(); ok {
		return p.Team
	}
	return TeamOrder
}

// ActiveChampion returns the active player's champion name.
func (g *GameState) ActiveChampion() string {
	if p, ok := g.ActiveEntry(); ok {
		return p.ChampionName
	}
	return UnknownChampion
}

// OwnedItemIDs returns the catalog IDs of the items the active player holds.
func (g *GameState) OwnedItemIDs() map[string]struct{} {
	owned := make(map[string]struct{})
	p, ok := g.ActiveEntry()
	if !ok {
		return owned
	}
	for _, item := range p.Items {
		owned[strconv.Itoa(item.ItemID)] = struct{}{}
	}
	return owned
}

// Enemies returns the roster entries that are not on the given team.
func (g *GameState) Enemies(team string) []Player {
	var enemies []Player
	for _, p := range g.AllPlayers {
		if p.Team != team {
			enemies = append(enemies, p)
		}
	}
	return enemies
}
