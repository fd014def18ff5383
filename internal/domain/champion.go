package domain

import (
	"time"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

type Champion struct {
	ID    string         `json:"id" gorm:"primaryKey"`   // e.g., "Aatrox"
	Key   string         `json:"key" gorm:"not null"`    // e.g., "266"
	Name  string         `json:"name" gorm:"not null"`   // Display name
	Title string         `json:"title"`                  // e.g., "the Darkin Blade"
	Tags  datatypes.JSON `json:"tags" gorm:"type:jsonb"` // ["Fighter", "Tank"]

	// Base stats at level 1 and their per-level growth
	HP                 float64 `json:"hp"`
	HPPerLevel         float64 `json:"hpPerLevel"`
	Armor              float64 `json:"armor"`
	ArmorPerLevel      float64 `json:"armorPerLevel"`
	SpellBlock         float64 `json:"spellBlock"`
	SpellBlockPerLevel float64 `json:"spellBlockPerLevel"`

	LastSyncedAt time.Time `json:"lastSyncedAt"`
}

type ChampionTag string

const (
	TagFighter  ChampionTag = "Fighter"
	TagTank     ChampionTag = "Tank"
	TagMage     ChampionTag = "Mage"
	TagAssassin ChampionTag = "Assassin"
	TagSupport  ChampionTag = "Support"
	TagMarksman ChampionTag = "Marksman"
)

// TagList decodes the champion's tags. A malformed column yields no tags.
func (c *Champion) TagList() []string {
	var tags []string
	if len(c.Tags) == 0 {
		return nil
	}
	if err := json.Unmarshal(c.Tags, &tags); err != nil {
		return nil
	}
	return tags
}

// HasTag reports whether the champion carries the given class tag.
func (c *Champion) HasTag(tag ChampionTag) bool {
	for _, t := range c.TagList() {
		if t == string(tag) {
			return true
		}
	}
	return false
}

// StatsAtLevel estimates armor, magic resist and health at the given level.
func (c *Champion) StatsAtLevel(level int) (armor, magicResist, health float64) {
	growth := float64(level - 1)
	armor = c.Armor + c.ArmorPerLevel*growth
	magicResist = c.SpellBlock + c.SpellBlockPerLevel*growth
	health = c.HP + c.HPPerLevel*growth
	return armor, magicResist, health
}
