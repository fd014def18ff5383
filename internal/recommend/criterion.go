package recommend

import "strings"

// Criterion is one benefit dimension of the decision matrix.
type Criterion int

const (
	AttackDamage Criterion = iota
	AbilityPower
	AttackSpeed
	CriticalChance
	Armor
	MagicResist
	Health
	CooldownReduction
	ArmorPenetration
	MagicPenetration
	LifeSteal
	MovementSpeed
)

// NumCriteria is the fixed width of every criteria vector.
const NumCriteria = 12

// AllCriteria lists the criteria in enumeration order. Ties are always broken in this order.
var AllCriteria = [NumCriteria]Criterion{
	AttackDamage, AbilityPower, AttackSpeed, CriticalChance,
	Armor, MagicResist, Health, CooldownReduction,
	ArmorPenetration, MagicPenetration, LifeSteal, MovementSpeed,
}

var criterionKeys = [NumCriteria]string{
	"attackDamage", "abilityPower", "attackSpeed", "criticalChance",
	"armor", "magicResist", "health", "cooldownReduction",
	"armorPenetration", "magicPenetration", "lifeSteal", "movementSpeed",
}

// DefaultGoldValues is the gold worth of one point of each criterion, used for gold
// efficiency only.
var DefaultGoldValues = Vector{
	AttackDamage:      35.0,
	AbilityPower:      21.75,
	AttackSpeed:       25.0, // per 1%
	CriticalChance:    40.0, // per 1%
	Armor:             20.0,
	MagicResist:       18.0,
	Health:            2.67,
	CooldownReduction: 26.67,
	ArmorPenetration:  30.0,
	MagicPenetration:  31.11,
	LifeSteal:         27.5, // per 1%
	MovementSpeed:     12.0,
}

// Key is the camelCase identifier used in JSON output and configuration.
func (c Criterion) Key() string {
	if c < 0 || int(c) >= NumCriteria {
		return "unknown"
	}
	return criterionKeys[c]
}

func (c Criterion) String() string {
	return c.Key()
}

// DisplayName turns the key into a sentence-case label: "attackDamage" -> "Attack damage".
func (c Criterion) DisplayName() string {
	key := c.Key()
	var b strings.Builder
	for i, r := range key {
		switch {
		case i == 0:
			b.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			b.WriteByte(' ')
			b.WriteString(strings.ToLower(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseCriterion resolves a criterion key, case-sensitively.
func ParseCriterion(key string) (Criterion, bool) {
	for _, c := range AllCriteria {
		if criterionKeys[c] == key {
			return c, true
		}
	}
	return 0, false
}

// Vector holds one value per criterion, indexed by Criterion.
type Vector [NumCriteria]float64

// Map renders the vector keyed by criterion key.
func (v Vector) Map() map[string]float64 {
	m := make(map[string]float64, NumCriteria)
	for _, c := range AllCriteria {
		m[c.Key()] = v[c]
	}
	return m
}

// Sum adds up every entry.
func (v Vector) Sum() float64 {
	var total float64
	for _, x := range v {
		total += x
	}
	return total
}
