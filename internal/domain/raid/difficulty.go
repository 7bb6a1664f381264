package raid

// Difficulty scales the boss and the rewards of a raid
type Difficulty struct {
	Key             string
	Label           string
	Multiplier      float64
	XPMin           int
	XPMax           int
	GoldMin         int
	GoldMax         int
	BonusDropChance float64
}

// DefaultDifficulty is used when an unknown key is requested
const DefaultDifficulty = "normal"

// DifficultyOrder lists the keys from easiest to hardest
var DifficultyOrder = []string{"easy", "normal", "hard", "nightmare"}

// Difficulties is the static difficulty table
var Difficulties = map[string]Difficulty{
	"easy": {
		Key: "easy", Label: "E-Rank Gate", Multiplier: 0.75,
		XPMin: 80, XPMax: 120, GoldMin: 50, GoldMax: 90, BonusDropChance: 0.03,
	},
	"normal": {
		Key: "normal", Label: "C-Rank Gate", Multiplier: 1.0,
		XPMin: 120, XPMax: 180, GoldMin: 80, GoldMax: 140, BonusDropChance: 0.05,
	},
	"hard": {
		Key: "hard", Label: "A-Rank Gate", Multiplier: 1.4,
		XPMin: 200, XPMax: 300, GoldMin: 150, GoldMax: 240, BonusDropChance: 0.10,
	},
	"nightmare": {
		Key: "nightmare", Label: "S-Rank Gate", Multiplier: 1.9,
		XPMin: 340, XPMax: 480, GoldMin: 260, GoldMax: 380, BonusDropChance: 0.18,
	},
}

// LookupDifficulty returns the difficulty for key, falling back to normal
func LookupDifficulty(key string) Difficulty {
	if d, ok := Difficulties[key]; ok {
		return d
	}
	return Difficulties[DefaultDifficulty]
}

// IsDifficulty reports whether key names a known difficulty
func IsDifficulty(key string) bool {
	_, ok := Difficulties[key]
	return ok
}
