package domain

import "gorm.io/datatypes"

// Ability is one champion spell (Q/W/E/R) from Data Dragon's per-champion data.
type Ability struct {
	ID          string `json:"id" gorm:"primaryKey"` // e.g., "AatroxQ"
	ChampionID  string `json:"championId" gorm:"index;not null"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Tooltip     string `json:"tooltip"`

	// LevelTipLabels is a JSON string array, e.g. ["Damage", "Cooldown"].
	LevelTipLabels datatypes.JSON `json:"levelTipLabels" gorm:"type:jsonb"`
	// Vars holds scaling coefficients: [{"link": "bonusattackdamage", "coeff": 0.6}, ...].
	Vars datatypes.JSON `json:"vars" gorm:"type:jsonb"`
}
