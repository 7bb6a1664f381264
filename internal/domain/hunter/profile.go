package hunter

import (
	"strings"
	"time"
)

const (
	// ItemHealKit is the consumable that restores HP during a raid
	ItemHealKit = "heal_kit"

	// ActiveSkillPrefix marks an armed one-shot skill in the inventory, e.g. "active_skill:flame_slash"
	ActiveSkillPrefix = "active_skill:"

	// Defaults for a freshly awakened hunter
	StartingLevel = 1
	StartingStat  = 10
	StartingGold  = 100
)

// Profile is the persisted state of a hunter in one guild
type Profile struct {
	UserID       string    `json:"user_id"`
	GuildID      string    `json:"guild_id"`
	Level        int       `json:"level"`
	XP           int       `json:"xp"`
	Gold         int       `json:"gold"`
	Strength     int       `json:"strength"`
	Agility      int       `json:"agility"`
	Intelligence int       `json:"intelligence"`
	Vitality     int       `json:"vitality"`
	Inventory    []string  `json:"inventory"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewProfile creates a level 1 hunter
func NewProfile(userID, guildID string) *Profile {
	return &Profile{
		UserID:       userID,
		GuildID:      guildID,
		Level:        StartingLevel,
		Gold:         StartingGold,
		Strength:     StartingStat,
		Agility:      StartingStat,
		Intelligence: StartingStat,
		Vitality:     StartingStat,
		Inventory:    []string{},
	}
}

// Clone returns a deep copy
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Inventory = append([]string(nil), p.Inventory...)
	return &clone
}

// CountItem counts how many copies of item the inventory holds
func (p *Profile) CountItem(item string) int {
	count := 0
	for _, it := range p.Inventory {
		if it == item {
			count++
		}
	}
	return count
}

// WithoutItem returns the inventory with one copy of item removed.
// ok is false when the item is not present.
func (p *Profile) WithoutItem(item string) (inventory []string, ok bool) {
	inventory = make([]string, 0, len(p.Inventory))
	for _, it := range p.Inventory {
		if !ok && it == item {
			ok = true
			continue
		}
		inventory = append(inventory, it)
	}
	return inventory, ok
}

// SplitActiveSkills separates armed skill markers from the rest of the inventory.
// skills holds the marker suffixes in inventory order.
func (p *Profile) SplitActiveSkills() (skills []string, rest []string) {
	rest = make([]string, 0, len(p.Inventory))
	for _, it := range p.Inventory {
		if name, found := strings.CutPrefix(it, ActiveSkillPrefix); found {
			skills = append(skills, name)
			continue
		}
		rest = append(rest, it)
	}
	return skills, rest
}

// XPToNextLevel is the experience needed to go from level to level+1
func XPToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * 100
}

// ApplyProgression adds xp and gold to the profile, levelling up as needed.
// Gold never drops below zero; the applied gold delta is returned.
func (p *Profile) ApplyProgression(xpDelta, goldDelta int) (levelsGained, goldApplied int) {
	if xpDelta > 0 {
		p.XP += xpDelta
	}
	for p.XP >= XPToNextLevel(p.Level) {
		p.XP -= XPToNextLevel(p.Level)
		p.Level++
		p.Strength++
		p.Agility++
		p.Intelligence++
		p.Vitality++
		levelsGained++
	}

	before := p.Gold
	p.Gold += goldDelta
	if p.Gold < 0 {
		p.Gold = 0
	}
	return levelsGained, p.Gold - before
}
