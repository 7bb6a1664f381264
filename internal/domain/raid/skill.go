package raid

// Skill is a one-shot active ability armed before a raid
type Skill string

const (
	SkillFlameSlash  Skill = "flame_slash"
	SkillShadowStep  Skill = "shadow_step"
	SkillMonarchRoar Skill = "monarch_roar"
)

// SkillOrder fixes which skill is spent first when several are charged
var SkillOrder = []Skill{SkillFlameSlash, SkillShadowStep, SkillMonarchRoar}

// FallbackSkillMultiplier applies when a participant uses skill with no charge left
const FallbackSkillMultiplier = 1.1

// Multiplier returns the damage multiplier of the skill
func (s Skill) Multiplier() float64 {
	switch s {
	case SkillFlameSlash:
		return 1.55
	case SkillShadowStep:
		return 1.35
	case SkillMonarchRoar:
		return 1.85
	}
	return FallbackSkillMultiplier
}

// ParseSkill converts an inventory marker suffix into a Skill
func ParseSkill(name string) (Skill, bool) {
	for _, s := range SkillOrder {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}
