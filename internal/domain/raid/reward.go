package raid

import (
	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
	"github.com/KirkDiggler/raid-bot-discord/internal/domain/hunter"
)

// Reward is the settled outcome of a raid for one participant
type Reward struct {
	UserID       string `json:"user_id"`
	XP           int    `json:"xp"`
	Gold         int    `json:"gold"`
	LevelsGained int    `json:"levels_gained"`
	Card         string `json:"card,omitempty"`
	BonusDrop    string `json:"bonus_drop,omitempty"`
	Alive        bool   `json:"alive"`
	Committed    bool   `json:"committed"`
}

// PlanReward rolls the xp and gold deltas of one participant. Winners who survived
// get the difficulty ranges and a chance at a bonus heal kit; everyone else gets
// consolation xp and a gold penalty.
func PlanReward(userID string, won, alive bool, d Difficulty, roller dice.Roller) Reward {
	if won && alive {
		reward := Reward{
			UserID: userID,
			XP:     roller.Between(d.XPMin, d.XPMax),
			Gold:   roller.Between(d.GoldMin, d.GoldMax),
			Alive:  true,
		}
		if roller.Chance(d.BonusDropChance) {
			reward.BonusDrop = hunter.ItemHealKit
		}
		return reward
	}

	return Reward{
		UserID: userID,
		XP:     d.XPMin * ConsolationXPPercent / 100,
		Gold:   -roller.Between(PenaltyGoldMin, PenaltyGoldMax),
		Alive:  false,
	}
}

// PlanRewards rolls rewards for every participant in join order
func (s *Session) PlanRewards(roller dice.Roller) []Reward {
	d := s.DifficultyInfo()
	rewards := make([]Reward, 0, len(s.Order))
	for _, p := range s.InOrder() {
		rewards = append(rewards, PlanReward(p.UserID, s.Won, p.IsAlive(), d, roller))
	}
	return rewards
}
