package raid

import (
	"math"

	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
)

// BossTemplate is an unscaled boss from the roster
type BossTemplate struct {
	Name   string
	HP     int
	Attack int
}

// BossRoster is the fixed set of raid bosses
var BossRoster = []BossTemplate{
	{Name: "Igris the Blood-Red Commander", HP: 2600, Attack: 70},
	{Name: "Cerberus the Gatekeeper", HP: 3000, Attack: 60},
	{Name: "Baruka the Ice Elf Chief", HP: 2400, Attack: 80},
	{Name: "Kargalgan the High Orc Shaman", HP: 2800, Attack: 75},
	{Name: "Beru the Ant King", HP: 3400, Attack: 90},
}

// Boss is the shared enemy of a raid
type Boss struct {
	Name   string `json:"name"`
	MaxHP  int    `json:"max_hp"`
	HP     int    `json:"hp"`
	Attack int    `json:"attack"`
}

// NewBoss scales a template by the difficulty multiplier
func NewBoss(t BossTemplate, d Difficulty) *Boss {
	maxHP := int(math.Round(float64(t.HP) * d.Multiplier))
	if maxHP < 1 {
		maxHP = 1
	}
	return &Boss{
		Name:   t.Name,
		MaxHP:  maxHP,
		HP:     maxHP,
		Attack: int(math.Round(float64(t.Attack) * d.Multiplier)),
	}
}

// RollBoss picks a roster template uniformly and scales it
func RollBoss(roller dice.Roller, d Difficulty) *Boss {
	t := BossRoster[roller.Between(0, len(BossRoster)-1)]
	return NewBoss(t, d)
}

// TakeDamage reduces HP, never below zero, and returns the HP actually removed
func (b *Boss) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := b.HP
	b.HP = dice.Clamp(b.HP-amount, 0, b.MaxHP)
	return before - b.HP
}

// IsDefeated reports whether the boss has no HP left
func (b *Boss) IsDefeated() bool {
	return b.HP <= 0
}
