package card

// Rarity of a card
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityUnique    Rarity = "unique"
)

// Card is a collectible that adds combat power to its owner
type Card struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
	Power  int    `json:"power"`
}

// IsUnique reports whether the card can only drop from raids
func (c *Card) IsUnique() bool {
	return c.Rarity == RarityUnique
}

// Bonus is the combined contribution of a hunter's cards
type Bonus struct {
	TotalPower int
	CardCount  int
}

// Grant is the outcome of a unique card roll
type Grant struct {
	Granted bool
	Card    *Card
}

// UniqueCatalogue lists the raid-only unique cards
var UniqueCatalogue = []Card{
	{ID: "unique-shadow-monarch", Name: "Shadow Monarch", Rarity: RarityUnique, Power: 260},
	{ID: "unique-demon-king", Name: "Demon King Baran", Rarity: RarityUnique, Power: 230},
	{ID: "unique-frost-monarch", Name: "Monarch of White Flames", Rarity: RarityUnique, Power: 220},
	{ID: "unique-beast-monarch", Name: "Monarch of Fangs", Rarity: RarityUnique, Power: 210},
	{ID: "unique-national-level", Name: "National Level Hunter", Rarity: RarityUnique, Power: 180},
}

// Unique grant odds: base chance plus a small bonus per hunter level, capped
const (
	UniqueBaseChance     = 0.02
	UniqueChancePerLevel = 0.001
	UniqueMaxChance      = 0.06
)

// UniqueChance returns the chance of a unique drop for a hunter of the given level
func UniqueChance(level int) float64 {
	chance := UniqueBaseChance + float64(level)*UniqueChancePerLevel
	if chance > UniqueMaxChance {
		return UniqueMaxChance
	}
	return chance
}
