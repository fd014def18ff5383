package recommend

import "strings"

// KeywordSet is a list of lowercase substrings matched against lowercased text.
type KeywordSet []string

// Matches reports whether text contains any keyword. text must already be lowercased.
func (k KeywordSet) Matches(text string) bool {
	for _, kw := range k {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

var (
	ADMarkers = KeywordSet{"attackdamage", "bonusad", "totalad"}
	APMarkers = KeywordSet{"spelldamage", "ap"}

	HardCCKeywords = KeywordSet{"stun", "root", "knock", "charm", "fear", "taunt", "suppress", "airborne", "sleep"}
	SlowKeywords   = KeywordSet{"slow", "cripple"}
)

// DamageType is the dominant damage an enemy champion deals.
type DamageType string

const (
	PhysicalDamage DamageType = "PHYSICAL"
	MagicalDamage  DamageType = "MAGICAL"
	MixedDamage    DamageType = "MIXED"
)

// ClassifyDamage counts how many ability texts carry an AD and an AP marker and picks the
// dominant side. One side must outnumber the other more than twice over; otherwise MIXED.
// Texts are lowercased before matching.
func ClassifyDamage(texts []string, ad, ap KeywordSet) DamageType {
	var adCount, apCount int
	for _, text := range texts {
		lower := strings.ToLower(text)
		if ad.Matches(lower) {
			adCount++
		}
		if ap.Matches(lower) {
			apCount++
		}
	}

	switch {
	case adCount > 2*apCount:
		return PhysicalDamage
	case apCount > 2*adCount:
		return MagicalDamage
	default:
		return MixedDamage
	}
}

// CrowdControl is the CC footprint of one champion's kit.
type CrowdControl struct {
	HasHardCC       bool
	HasSlow         bool
	HardCCAbilities int
}

// ClassifyCrowdControl scans each ability text once. An ability counts toward
// HardCCAbilities at most once no matter how many hard-CC keywords it mentions.
func ClassifyCrowdControl(texts []string, hard, slow KeywordSet) CrowdControl {
	var cc CrowdControl
	for _, text := range texts {
		lower := strings.ToLower(text)
		if hard.Matches(lower) {
			cc.HasHardCC = true
			cc.HardCCAbilities++
		}
		if slow.Matches(lower) {
			cc.HasSlow = true
		}
	}
	return cc
}
