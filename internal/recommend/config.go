package recommend

import (
	"fmt"
	"math"
)

// Config carries the tunable constants of the pipeline.
type Config struct {
	// LossAversion is TODIM's lambda; losses weigh this many times more than gains.
	LossAversion float64
	// TopsisWeight and TodimWeight blend the two scores and must sum to 1.
	TopsisWeight float64
	TodimWeight  float64
	// MaxRecommendations truncates the ranked list.
	MaxRecommendations int
	// GoldValues prices one point of each criterion.
	GoldValues Vector
}

func DefaultConfig() Config {
	return Config{
		LossAversion:       2.25,
		TopsisWeight:       0.70,
		TodimWeight:        0.30,
		MaxRecommendations: 5,
		GoldValues:         DefaultGoldValues,
	}
}

// WithGoldValues returns a copy of c with the given per-criterion gold values applied.
// Keys must be criterion keys such as "attackDamage".
func (c Config) WithGoldValues(overrides map[string]float64) (Config, error) {
	for key, v := range overrides {
		crit, ok := ParseCriterion(key)
		if !ok {
			return c, fmt.Errorf("unknown criterion %q in gold values", key)
		}
		c.GoldValues[crit] = v
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.LossAversion <= 0 {
		return fmt.Errorf("loss aversion must be positive, got %v", c.LossAversion)
	}
	if c.TopsisWeight < 0 || c.TodimWeight < 0 {
		return fmt.Errorf("fusion weights must be non-negative")
	}
	if math.Abs(c.TopsisWeight+c.TodimWeight-1.0) > 0.001 {
		return fmt.Errorf("fusion weights sum to %.4f, must sum to 1.0", c.TopsisWeight+c.TodimWeight)
	}
	if c.MaxRecommendations < 1 {
		return fmt.Errorf("max recommendations must be at least 1, got %d", c.MaxRecommendations)
	}
	for _, crit := range AllCriteria {
		if c.GoldValues[crit] < 0 {
			return fmt.Errorf("gold value for %s must be non-negative", crit)
		}
	}
	return nil
}
