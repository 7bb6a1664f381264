package raid

import (
	"context"
	"log"

	raidDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
	"golang.org/x/sync/errgroup"
)

// settle pays out an ended raid. Amounts are rolled in join order, then the
// profile writes fan out; the call returns once every write finished.
// Must be called with the session lock held.
func (s *service) settle(ctx context.Context, session *raidDomain.Session) {
	if !session.IsEnded() || session.Settled {
		return
	}

	rewards := session.PlanRewards(s.roller)

	g := new(errgroup.Group)
	g.SetLimit(settleLimit)
	for i := range rewards {
		reward := &rewards[i]
		g.Go(func() error {
			s.commitReward(ctx, session, reward)
			return nil
		})
	}
	// commitReward logs its own failures
	_ = g.Wait()

	session.Settle(rewards)

	committed := 0
	for _, r := range rewards {
		if r.Committed {
			committed++
		}
	}
	log.Printf("Raid %s: ended won=%t after round %d, %d/%d rewards committed",
		session.ID, session.Won, session.Round, committed, len(rewards))
}

// commitReward writes one reward to the hunter's profile. A failed progression
// write leaves the reward uncommitted; card and bonus drop failures only drop the extra.
func (s *service) commitReward(ctx context.Context, session *raidDomain.Session, reward *raidDomain.Reward) {
	progression, err := s.hunterService.CommitProgression(ctx, reward.UserID, session.GuildID, reward.XP, reward.Gold)
	if err != nil {
		log.Printf("Raid %s: failed to commit reward for %s: %v", session.ID, reward.UserID, err)
		return
	}

	reward.Committed = true
	reward.LevelsGained = progression.LevelsGained
	reward.Gold = progression.GoldApplied

	if !session.Won || !reward.Alive {
		return
	}

	grant, err := s.cardService.RollUniqueGrant(ctx, progression.Profile)
	if err != nil {
		log.Printf("Raid %s: failed to roll unique card for %s: %v", session.ID, reward.UserID, err)
	} else if grant != nil && grant.Granted && grant.Card != nil {
		reward.Card = grant.Card.Name
		log.Printf("Raid %s: %s obtained unique card %s", session.ID, reward.UserID, grant.Card.Name)
	}

	if reward.BonusDrop == "" {
		return
	}

	inventory := append(append([]string{}, progression.Profile.Inventory...), reward.BonusDrop)
	if _, err := s.hunterService.CommitInventory(ctx, reward.UserID, session.GuildID, inventory); err != nil {
		log.Printf("Raid %s: failed to grant %s to %s: %v", session.ID, reward.BonusDrop, reward.UserID, err)
		reward.BonusDrop = ""
	}
}
