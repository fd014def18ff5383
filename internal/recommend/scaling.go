package recommend

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gorm.io/datatypes"
)

// scalingVar is one entry of an ability's "vars" payload.
type scalingVar struct {
	Link  string          `json:"link"`
	Coeff json.RawMessage `json:"coeff"`
}

// linkFamily groups the coefficient link names that feed one ratio total.
type linkFamily []string

var (
	adLinks      = linkFamily{"totalad", "attackdamage"}
	bonusADLinks = linkFamily{"bonusad"}
	apLinks      = linkFamily{"spelldamage", "ap"}
	healthLinks  = linkFamily{"health", "bonushealth"}
	armorLinks   = linkFamily{"armor", "bonusarmor"}
	mrLinks      = linkFamily{"mr", "bonusmr"}
)

// scalingLinks maps each lowercased link to its first coefficient in the payload.
type scalingLinks map[string]float64

// value returns the coefficient of the first family member present and whether any was.
func (s scalingLinks) value(family linkFamily) (float64, bool) {
	for _, key := range family {
		if v, ok := s[key]; ok {
			return v, true
		}
	}
	return 0, false
}

// parseScalingLinks decodes a vars payload. Coefficients may be a number or an array
// whose first element is a number; anything else counts as zero.
func parseScalingLinks(raw datatypes.JSON) (scalingLinks, error) {
	links := scalingLinks{}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return links, nil
	}

	var vars []scalingVar
	if err := json.Unmarshal(raw, &vars); err != nil {
		return nil, fmt.Errorf("decode scaling vars: %w", err)
	}

	for _, v := range vars {
		if v.Link == "" || len(v.Coeff) == 0 || string(v.Coeff) == "null" {
			continue
		}
		link := strings.ToLower(v.Link)
		if _, seen := links[link]; seen {
			continue
		}
		links[link] = coefficient(v.Coeff)
	}
	return links, nil
}

func coefficient(raw json.RawMessage) float64 {
	var single float64
	if err := json.Unmarshal(raw, &single); err == nil {
		return single
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		if err := json.Unmarshal(list[0], &single); err == nil {
			return single
		}
	}
	return 0
}

// parseLevelTips decodes an ability's level-tip labels.
func parseLevelTips(raw datatypes.JSON) ([]string, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, nil
	}
	var labels []string
	if err := json.Unmarshal(raw, &labels); err != nil {
		return nil, fmt.Errorf("decode level tip labels: %w", err)
	}
	return labels, nil
}
