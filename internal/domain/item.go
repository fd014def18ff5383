package domain

import (
	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

// Item is a shop item as described by Data Dragon's item.json.
type Item struct {
	ID          string `json:"id" gorm:"primaryKey"` // e.g., "3031"
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description"`
	Plaintext   string `json:"plaintext"`

	GoldBase    int  `json:"goldBase"`
	GoldTotal   int  `json:"goldTotal"`
	GoldSell    int  `json:"goldSell"`
	Purchasable bool `json:"purchasable"`
	InStore     bool `json:"inStore"`
	Depth       int  `json:"depth"`

	From datatypes.JSON `json:"from" gorm:"type:jsonb"` // component item IDs
	Into datatypes.JSON `json:"into" gorm:"type:jsonb"` // upgrade item IDs
	Tags datatypes.JSON `json:"tags" gorm:"type:jsonb"`

	FlatHPPoolMod         float64 `json:"flatHPPoolMod"`
	FlatMPPoolMod         float64 `json:"flatMPPoolMod"`
	PercentMPPoolMod      float64 `json:"percentMPPoolMod"`
	FlatArmorMod          float64 `json:"flatArmorMod"`
	PercentArmorMod       float64 `json:"percentArmorMod"`
	FlatSpellBlockMod     float64 `json:"flatSpellBlockMod"`
	PercentAttackSpeedMod float64 `json:"percentAttackSpeedMod"`
	FlatCritChanceMod     float64 `json:"flatCritChanceMod"`
	FlatPhysicalDamageMod float64 `json:"flatPhysicalDamageMod"`
	FlatMagicDamageMod    float64 `json:"flatMagicDamageMod"`
	PercentLifeStealMod   float64 `json:"percentLifeStealMod"`
	FlatMovementSpeedMod  float64 `json:"flatMovementSpeedMod"`
}

// UpgradesInto returns the IDs of items this item builds into.
func (i *Item) UpgradesInto() []string {
	if len(i.Into) == 0 {
		return nil
	}
	var into []string
	if err := json.Unmarshal(i.Into, &into); err != nil {
		return nil
	}
	return into
}
