package raid

import (
	"math"

	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
)

// Stats is the read-only snapshot of a hunter's attributes taken at join time
type Stats struct {
	Level        int `json:"level"`
	Strength     int `json:"strength"`
	Agility      int `json:"agility"`
	Intelligence int `json:"intelligence"`
	Vitality     int `json:"vitality"`
}

// Ally is an equipped shadow fighting next to the participant
type Ally struct {
	Name         string `json:"name"`
	BaseDamage   int    `json:"base_damage"`
	AbilityBonus int    `json:"ability_bonus"`
}

// Participant is one hunter's combat state inside a session
type Participant struct {
	UserID      string        `json:"user_id"`
	Stats       Stats         `json:"stats"`
	HP          int           `json:"hp"`
	MaxHP       int           `json:"max_hp"`
	Shield      int           `json:"shield"`
	Acted       bool          `json:"acted"`
	Allies      []Ally        `json:"allies"`
	CardPower   int           `json:"card_power"`
	Skills      map[Skill]int `json:"skills"`
	HealKits    int           `json:"heal_kits"`
	TotalDamage int           `json:"total_damage"`
	Dead        bool          `json:"dead"`
}

// MaxHPFor derives the raid HP pool from vitality and level
func MaxHPFor(stats Stats) int {
	hp := 320 + stats.Vitality*42 + stats.Level*24
	if hp < 400 {
		return 400
	}
	return hp
}

// NewParticipant creates a live participant at full HP
func NewParticipant(userID string, stats Stats) *Participant {
	maxHP := MaxHPFor(stats)
	return &Participant{
		UserID: userID,
		Stats:  stats,
		HP:     maxHP,
		MaxHP:  maxHP,
		Skills: make(map[Skill]int),
	}
}

// IsAlive reports whether the participant can still act and be struck
func (p *Participant) IsAlive() bool {
	return !p.Dead
}

// IsLow reports whether the participant is at or below half HP
func (p *Participant) IsLow() bool {
	return p.HP*2 <= p.MaxHP
}

// AddSkillCharge arms one charge of a skill
func (p *Participant) AddSkillCharge(s Skill) {
	if p.Skills == nil {
		p.Skills = make(map[Skill]int)
	}
	p.Skills[s]++
}

// SkillCharges returns the total remaining charges
func (p *Participant) SkillCharges() int {
	total := 0
	for _, n := range p.Skills {
		total += n
	}
	return total
}

// ConsumeSkill spends the first charged skill in SkillOrder.
// ok is false when nothing is charged; the fallback multiplier is returned then.
func (p *Participant) ConsumeSkill() (skill Skill, multiplier float64, ok bool) {
	for _, s := range SkillOrder {
		if p.Skills[s] > 0 {
			p.Skills[s]--
			return s, s.Multiplier(), true
		}
	}
	return "", FallbackSkillMultiplier, false
}

// Power is the pre-variance damage of one hit
func (p *Participant) Power() float64 {
	power := float64(p.Stats.Strength)*2 +
		float64(p.Stats.Agility)*1.5 +
		float64(p.Stats.Intelligence) +
		float64(p.Stats.Level)*4 +
		float64(p.CardPower)*0.25
	for _, a := range p.Allies {
		power += float64(a.BaseDamage)*0.5 + float64(a.AbilityBonus)*0.25
	}
	return power
}

// RollDamage computes one hit with variance and a skill multiplier, floored at MinDamage
func (p *Participant) RollDamage(roller dice.Roller, multiplier float64) int {
	variance := roller.Factor(HitVarianceMin, HitVarianceMax)
	damage := int(math.Floor(p.Power() * variance * multiplier))
	if damage < MinDamage {
		return MinDamage
	}
	return damage
}

// GuardShield is the shield value a guard action grants
func (p *Participant) GuardShield() int {
	return 100 + p.Stats.Vitality*7 + p.Stats.Level*5
}

// Heal restores HealPercent of max HP, capped at max, and returns the amount restored
func (p *Participant) Heal() int {
	amount := p.MaxHP * HealPercent / 100
	before := p.HP
	p.HP = dice.Clamp(p.HP+amount, 0, p.MaxHP)
	return p.HP - before
}

// Strike records one boss hit on a participant
type Strike struct {
	UserID   string `json:"user_id"`
	Raw      int    `json:"raw"`
	Absorbed int    `json:"absorbed"`
	Damage   int    `json:"damage"`
	Died     bool   `json:"died"`
}

// TakeStrike applies a raw boss hit. The shield absorbs up to raw and is always spent.
func (p *Participant) TakeStrike(raw int) Strike {
	if raw < 0 {
		raw = 0
	}
	absorbed := p.Shield
	if absorbed > raw {
		absorbed = raw
	}
	p.Shield = 0

	damage := raw - absorbed
	before := p.HP
	p.HP = dice.Clamp(p.HP-damage, 0, p.MaxHP)

	strike := Strike{
		UserID:   p.UserID,
		Raw:      raw,
		Absorbed: absorbed,
		Damage:   before - p.HP,
	}
	if p.HP == 0 {
		p.Dead = true
		strike.Died = true
	}
	return strike
}
