package shadow

// Rank orders shadows by strength
type Rank string

const (
	RankNormal  Rank = "normal"
	RankElite   Rank = "elite"
	RankKnight  Rank = "knight"
	RankGeneral Rank = "general"
	RankMarshal Rank = "marshal"
)

// Shadow is an extracted ally a hunter can equip for raids
type Shadow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Rank         Rank   `json:"rank"`
	BaseDamage   int    `json:"base_damage"`
	AbilityBonus int    `json:"ability_bonus"`
	Equipped     bool   `json:"equipped"`
}

// MaxEquipped is how many shadows may fight alongside a hunter at once
const MaxEquipped = 3
