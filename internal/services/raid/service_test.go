package raid_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	mockdice "github.com/KirkDiggler/raid-bot-discord/internal/dice/mock"
	cardDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/card"
	hunterDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/hunter"
	raidDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
	shadowDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/shadow"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/raids"
	mockcard "github.com/KirkDiggler/raid-bot-discord/internal/services/card/mock"
	"github.com/KirkDiggler/raid-bot-discord/internal/services/hunter"
	mockhunter "github.com/KirkDiggler/raid-bot-discord/internal/services/hunter/mock"
	"github.com/KirkDiggler/raid-bot-discord/internal/services/raid"
	mockshadow "github.com/KirkDiggler/raid-bot-discord/internal/services/shadow/mock"
	mockuuid "github.com/KirkDiggler/raid-bot-discord/internal/uuid/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	guildID   = "guild-1"
	channelID = "chan-1"
	ownerID   = "owner"
	raidID    = "raid-1"

	// Level 1 hunter with every stat at 10: 10*2 + 10*1.5 + 10 + 1*4
	basePower = 49
	// 320 + 10*42 + 1*24
	baseMaxHP = 764
	// Unscaled first roster boss on normal difficulty
	bossAttack = 70
	bossHP     = 2600
)

type RaidServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	hunters    *mockhunter.MockService
	shadows    *mockshadow.MockService
	cards      *mockcard.MockService
	uuidGen    *mockuuid.MockGenerator
	roller     *mockdice.ManualMockRoller
	repository raids.Repository
	svc        raid.Service
	ctx        context.Context
}

func (s *RaidServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.hunters = mockhunter.NewMockService(s.ctrl)
	s.shadows = mockshadow.NewMockService(s.ctrl)
	s.cards = mockcard.NewMockService(s.ctrl)
	s.uuidGen = mockuuid.NewMockGenerator(s.ctrl)
	s.roller = mockdice.NewManualMockRoller()
	s.repository = raids.NewInMemoryRepository()
	s.ctx = context.Background()

	s.svc = raid.NewService(&raid.ServiceConfig{
		Repository:    s.repository,
		HunterService: s.hunters,
		ShadowService: s.shadows,
		CardService:   s.cards,
		Roller:        s.roller,
		UUIDGenerator: s.uuidGen,
	})
}

func (s *RaidServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRaidServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RaidServiceTestSuite))
}

func (s *RaidServiceTestSuite) openLobby(owner string) *raidDomain.View {
	s.uuidGen.EXPECT().New().Return(raidID)
	view, err := s.svc.CreateLobby(s.ctx, guildID, channelID, owner, "normal")
	s.Require().NoError(err)
	return view
}

// expectSnapshot sets up the collaborator calls of a plain join
func (s *RaidServiceTestSuite) expectSnapshot(userID string, inventory ...string) {
	profile := hunterDomain.NewProfile(userID, guildID)
	profile.Inventory = append([]string{}, inventory...)

	s.hunters.EXPECT().GetOrCreate(gomock.Any(), userID, guildID).Return(profile, nil)
	s.shadows.EXPECT().GetEquipped(gomock.Any(), userID, guildID).Return(nil, nil)
	s.cards.EXPECT().GetBonus(gomock.Any(), profile).Return(&cardDomain.Bonus{}, nil)
}

func (s *RaidServiceTestSuite) join(userID string, inventory ...string) {
	s.expectSnapshot(userID, inventory...)
	result, err := s.svc.Join(s.ctx, raidID, userID, guildID)
	s.Require().NoError(err)
	s.Require().True(result.OK, "join rejected: %s", result.Reason)
}

func (s *RaidServiceTestSuite) startWith(users ...string) {
	s.openLobby(ownerID)
	for _, u := range users {
		s.join(u)
	}
	result, err := s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)
	s.Require().True(result.OK)
}

func (s *RaidServiceTestSuite) session() *raidDomain.Session {
	session, err := s.repository.Get(s.ctx, raidID)
	s.Require().NoError(err)
	return session
}

func (s *RaidServiceTestSuite) act(userID string, action raidDomain.Action) *raid.ActionResult {
	result, err := s.svc.PerformAction(s.ctx, raidID, userID, action)
	s.Require().NoError(err)
	return result
}

func (s *RaidServiceTestSuite) TestCreateLobby() {
	s.roller.SetInts(5)
	view := s.openLobby(ownerID)

	s.Equal(raidID, view.ID)
	s.Equal(raidDomain.StateLobby, view.State)
	s.Equal(0, view.Round)
	s.Equal(5, view.MaxRounds)
	s.Equal("C-Rank Gate", view.DifficultyLabel)
	s.Nil(view.Boss)
}

func (s *RaidServiceTestSuite) TestCreateLobby_UnknownDifficultyFallsBack() {
	s.uuidGen.EXPECT().New().Return(raidID)
	view, err := s.svc.CreateLobby(s.ctx, guildID, channelID, ownerID, "apocalyptic")
	s.Require().NoError(err)
	s.Equal(raidDomain.DefaultDifficulty, view.Difficulty)
	s.Equal(raidDomain.MinRounds, view.MaxRounds)
}

func (s *RaidServiceTestSuite) TestCreateLobby_RequiresIDs() {
	_, err := s.svc.CreateLobby(s.ctx, "", channelID, ownerID, "normal")
	s.Error(err)
	_, err = s.svc.CreateLobby(s.ctx, guildID, channelID, "", "normal")
	s.Error(err)
}

func (s *RaidServiceTestSuite) TestJoin_Missing() {
	result, err := s.svc.Join(s.ctx, "nope", "user-1", guildID)
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(raidDomain.ReasonMissing, result.Reason)
}

func (s *RaidServiceTestSuite) TestJoin_WrongGuild() {
	s.openLobby(ownerID)

	result, err := s.svc.Join(s.ctx, raidID, "user-1", "guild-2")
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonWrongGuild, result.Reason)
}

func (s *RaidServiceTestSuite) TestJoin_Idempotent() {
	s.openLobby(ownerID)
	s.join("user-1")

	// No collaborator calls expected the second time
	result, err := s.svc.Join(s.ctx, raidID, "user-1", guildID)
	s.Require().NoError(err)
	s.True(result.OK)
	s.False(result.Joined)
	s.Len(result.View.Players, 1)
}

func (s *RaidServiceTestSuite) TestJoin_Full() {
	s.openLobby(ownerID)
	for i := 0; i < raidDomain.MaxParticipants; i++ {
		s.join(fmt.Sprintf("user-%d", i))
	}

	result, err := s.svc.Join(s.ctx, raidID, "late", guildID)
	s.Require().NoError(err)
	s.False(result.OK)
	s.Equal(raidDomain.ReasonFull, result.Reason)
}

func (s *RaidServiceTestSuite) TestJoin_AfterStart() {
	s.startWith("user-1")

	result, err := s.svc.Join(s.ctx, raidID, "user-2", guildID)
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonStarted, result.Reason)
}

func (s *RaidServiceTestSuite) TestJoin_ArmsSkillsAndCountsKits() {
	s.openLobby(ownerID)

	profile := hunterDomain.NewProfile("user-1", guildID)
	profile.Inventory = []string{
		hunterDomain.ItemHealKit,
		"active_skill:flame_slash",
		"active_skill:unknown_art",
		"potion",
		hunterDomain.ItemHealKit,
	}
	remaining := []string{hunterDomain.ItemHealKit, "potion", hunterDomain.ItemHealKit}
	committed := profile.Clone()
	committed.Inventory = remaining

	s.hunters.EXPECT().GetOrCreate(gomock.Any(), "user-1", guildID).Return(profile, nil)
	s.shadows.EXPECT().GetEquipped(gomock.Any(), "user-1", guildID).Return([]*shadowDomain.Shadow{
		{Name: "Igris", BaseDamage: 60, AbilityBonus: 20, Equipped: true},
	}, nil)
	s.cards.EXPECT().GetBonus(gomock.Any(), profile).Return(&cardDomain.Bonus{TotalPower: 40, CardCount: 2}, nil)
	s.hunters.EXPECT().CommitInventory(gomock.Any(), "user-1", guildID, remaining).Return(committed, nil)

	result, err := s.svc.Join(s.ctx, raidID, "user-1", guildID)
	s.Require().NoError(err)
	s.True(result.Joined)

	player, ok := result.View.Player("user-1")
	s.Require().True(ok)
	s.Equal(2, player.HealKits)
	s.Equal(1, player.SkillCharges)
	s.Equal(baseMaxHP, player.MaxHP)
	s.Equal(baseMaxHP, player.HP)

	p := s.session().Participants["user-1"]
	s.Equal(40, p.CardPower)
	s.Require().Len(p.Allies, 1)
	// 49 + 40*0.25 + 60*0.5 + 20*0.25
	s.InDelta(94.0, p.Power(), 0.0001)
}

func (s *RaidServiceTestSuite) TestJoin_CollaboratorFailureAddsNothing() {
	s.openLobby(ownerID)

	profile := hunterDomain.NewProfile("user-1", guildID)
	s.hunters.EXPECT().GetOrCreate(gomock.Any(), "user-1", guildID).Return(profile, nil)
	s.shadows.EXPECT().GetEquipped(gomock.Any(), "user-1", guildID).Return(nil, errors.New("redis down"))

	_, err := s.svc.Join(s.ctx, raidID, "user-1", guildID)
	s.Error(err)

	view, err := s.svc.View(s.ctx, raidID)
	s.Require().NoError(err)
	s.Empty(view.Players)
}

func (s *RaidServiceTestSuite) TestStart_Reasons() {
	result, err := s.svc.Start(s.ctx, "nope", ownerID)
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonMissing, result.Reason)

	s.openLobby(ownerID)

	result, err = s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonEmpty, result.Reason)

	s.join("user-1")

	result, err = s.svc.Start(s.ctx, raidID, "user-1")
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonOwnerOnly, result.Reason)

	result, err = s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)
	s.True(result.OK)
	s.Equal(raidDomain.StateInProgress, result.View.State)
	s.Equal(1, result.View.Round)
	s.Require().NotNil(result.View.Boss)
	s.Equal(bossHP, result.View.Boss.MaxHP)

	result, err = s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonAlready, result.Reason)
}

func (s *RaidServiceTestSuite) TestStart_SystemOwnedLobby() {
	s.openLobby(raidDomain.SystemOwnerID)
	s.join("user-1")

	result, err := s.svc.Start(s.ctx, raidID, "user-1")
	s.Require().NoError(err)
	s.True(result.OK)
}

func (s *RaidServiceTestSuite) TestPerformAction_Rejections() {
	result, err := s.svc.PerformAction(s.ctx, "nope", "user-1", raidDomain.ActionAttack)
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonMissing, result.Reason)

	s.openLobby(ownerID)
	s.join("user-1")

	s.Equal(raidDomain.ReasonNotRunning, s.act("user-1", raidDomain.ActionAttack).Reason)

	_, err = s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)
	s.join2("user-2")

	s.Equal(raidDomain.ReasonInvalidAction, s.act("user-1", raidDomain.Action("dance")).Reason)
	s.Equal(raidDomain.ReasonNotInRaid, s.act("stranger", raidDomain.ActionAttack).Reason)

	s.session().Participants["user-1"].Dead = true
	s.Equal(raidDomain.ReasonDead, s.act("user-1", raidDomain.ActionAttack).Reason)
}

// join2 asserts a join into a running raid is rejected without collaborator calls
func (s *RaidServiceTestSuite) join2(userID string) {
	result, err := s.svc.Join(s.ctx, raidID, userID, guildID)
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonStarted, result.Reason)
}

func (s *RaidServiceTestSuite) TestPerformAction_RoundAdvancesWhenEveryoneActed() {
	s.startWith("user-1", "user-2")

	first := s.act("user-1", raidDomain.ActionAttack)
	s.True(first.OK)
	s.Equal(raidDomain.OutcomeActed, first.Outcome)
	s.Equal(basePower, first.Damage)
	s.False(first.Advanced)
	s.Equal(1, first.View.Round)

	again := s.act("user-1", raidDomain.ActionAttack)
	s.False(again.OK)
	s.Equal(raidDomain.ReasonAlreadyActed, again.Reason)

	second := s.act("user-2", raidDomain.ActionAttack)
	s.True(second.OK)
	s.True(second.Advanced)
	s.Len(second.Strikes, 2)
	s.Equal(2, second.View.Round)
	s.Equal(bossHP-2*basePower, second.View.Boss.HP)

	for _, p := range second.View.Players {
		s.False(p.Acted)
		s.Equal(baseMaxHP-bossAttack, p.HP)
		s.Equal(basePower, p.TotalDamage)
	}
}

func (s *RaidServiceTestSuite) TestPerformAction_SkillChargesAndFallback() {
	s.openLobby(ownerID)
	profile := hunterDomain.NewProfile("user-1", guildID)
	profile.Inventory = []string{"active_skill:flame_slash"}
	s.hunters.EXPECT().GetOrCreate(gomock.Any(), "user-1", guildID).Return(profile, nil)
	s.shadows.EXPECT().GetEquipped(gomock.Any(), "user-1", guildID).Return(nil, nil)
	s.cards.EXPECT().GetBonus(gomock.Any(), profile).Return(&cardDomain.Bonus{}, nil)
	s.hunters.EXPECT().CommitInventory(gomock.Any(), "user-1", guildID, []string{}).Return(profile, nil)
	_, err := s.svc.Join(s.ctx, raidID, "user-1", guildID)
	s.Require().NoError(err)
	s.join("user-2")
	_, err = s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)

	// floor(49 * 1.55)
	hit := s.act("user-1", raidDomain.ActionSkill)
	s.Equal(raidDomain.SkillFlameSlash, hit.Skill)
	s.Equal(75, hit.Damage)

	s.act("user-2", raidDomain.ActionGuard)

	// No charges left: floor(49 * 1.1)
	fallback := s.act("user-1", raidDomain.ActionSkill)
	s.Equal(raidDomain.Skill(""), fallback.Skill)
	s.InDelta(raidDomain.FallbackSkillMultiplier, fallback.Multiplier, 0.0001)
	s.Equal(53, fallback.Damage)
}

func (s *RaidServiceTestSuite) TestPerformAction_GuardAbsorbsStrike() {
	s.startWith("user-1")

	result := s.act("user-1", raidDomain.ActionGuard)
	s.True(result.OK)
	// 100 + 10*7 + 1*5
	s.Equal(175, result.Shield)
	s.True(result.Advanced)
	s.Require().Len(result.Strikes, 1)
	s.Equal(bossAttack, result.Strikes[0].Absorbed)
	s.Equal(0, result.Strikes[0].Damage)

	player, _ := result.View.Player("user-1")
	s.Equal(baseMaxHP, player.HP)
	s.Equal(0, player.Shield)
}

// Two hunters force a round before anyone attacks
func (s *RaidServiceTestSuite) TestForceAdvance_BothStruck() {
	s.startWith("user-1", "user-2")

	result, err := s.svc.ForceAdvance(s.ctx, raidID, "user-2")
	s.Require().NoError(err)
	s.True(result.OK)
	s.Equal(raidDomain.OutcomeForced, result.Outcome)
	s.Len(result.Strikes, 2)
	s.Equal(2, result.View.Round)

	for _, p := range result.View.Players {
		s.Equal(baseMaxHP-bossAttack, p.HP)
		s.False(p.Acted)
	}
}

func (s *RaidServiceTestSuite) TestForceAdvance_Rejections() {
	result, err := s.svc.ForceAdvance(s.ctx, "nope", "user-1")
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonMissing, result.Reason)

	s.openLobby(ownerID)
	s.join("user-1")

	result, err = s.svc.ForceAdvance(s.ctx, raidID, "user-1")
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonNotRunning, result.Reason)

	_, err = s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)

	result, err = s.svc.ForceAdvance(s.ctx, raidID, "stranger")
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonNotInRaid, result.Reason)
}

// A hunter with one kit heals, then tries again in the same round
func (s *RaidServiceTestSuite) TestHeal_ChargeConsumedNotRoundGated() {
	s.openLobby(ownerID)
	s.join("user-1", hunterDomain.ItemHealKit)
	s.join("user-2")
	_, err := s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)

	_, err = s.svc.ForceAdvance(s.ctx, raidID, "user-1")
	s.Require().NoError(err)

	stored := hunterDomain.NewProfile("user-1", guildID)
	stored.Inventory = []string{hunterDomain.ItemHealKit}
	s.hunters.EXPECT().GetOrCreate(gomock.Any(), "user-1", guildID).Return(stored, nil)
	s.hunters.EXPECT().CommitInventory(gomock.Any(), "user-1", guildID, []string{}).Return(stored, nil)

	healed := s.act("user-1", raidDomain.ActionHeal)
	s.True(healed.OK)
	s.Equal(bossAttack, healed.Healed, "heal is capped at max HP")
	s.False(healed.Advanced)

	player, _ := healed.View.Player("user-1")
	s.Equal(baseMaxHP, player.HP)
	s.Equal(0, player.HealKits)
	s.Equal(2, healed.View.Round)

	second := s.act("user-1", raidDomain.ActionHeal)
	s.False(second.OK)
	s.Equal(raidDomain.ReasonNoHealItem, second.Reason)
	s.Equal(2, second.View.Round)
}

func (s *RaidServiceTestSuite) TestHeal_PersistedKitGone() {
	s.openLobby(ownerID)
	s.join("user-1", hunterDomain.ItemHealKit)
	s.join("user-2")
	_, err := s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)

	s.hunters.EXPECT().GetOrCreate(gomock.Any(), "user-1", guildID).Return(hunterDomain.NewProfile("user-1", guildID), nil)

	result := s.act("user-1", raidDomain.ActionHeal)
	s.False(result.OK)
	s.Equal(raidDomain.ReasonNoHealItem, result.Reason)

	player, _ := result.View.Player("user-1")
	s.False(player.Acted)
	s.Equal(1, player.HealKits, "a rejected heal changes nothing")
}

func (s *RaidServiceTestSuite) TestHeal_CommitFailureIsHardError() {
	s.openLobby(ownerID)
	s.join("user-1", hunterDomain.ItemHealKit)
	s.join("user-2")
	_, err := s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)

	stored := hunterDomain.NewProfile("user-1", guildID)
	stored.Inventory = []string{hunterDomain.ItemHealKit}
	s.hunters.EXPECT().GetOrCreate(gomock.Any(), "user-1", guildID).Return(stored, nil)
	s.hunters.EXPECT().CommitInventory(gomock.Any(), "user-1", guildID, gomock.Any()).Return(nil, errors.New("write failed"))

	_, err = s.svc.PerformAction(s.ctx, raidID, "user-1", raidDomain.ActionHeal)
	s.Error(err)

	p := s.session().Participants["user-1"]
	s.False(p.Acted)
	s.Equal(1, p.HealKits)
}

func (s *RaidServiceTestSuite) TestPerformAction_AutoNextWhenPartyCritical() {
	s.startWith("user-1", "user-2")
	s.session().Participants["user-1"].HP = baseMaxHP / 2

	result := s.act("user-2", raidDomain.ActionAttack)
	s.True(result.OK)
	s.Equal(raidDomain.OutcomeAutoNext, result.Outcome)
	s.Equal(0, result.Damage)
	s.True(result.Advanced)
	s.Len(result.Strikes, 2)
	s.Equal(2, result.View.Round)
	s.Equal(bossHP, result.View.Boss.HP)

	player, _ := result.View.Player("user-2")
	s.False(player.Acted)
	s.Equal(0, player.TotalDamage)
}

func (s *RaidServiceTestSuite) TestVictory_SettlesOnce() {
	s.startWith("user-1")
	s.session().Boss.HP = 10

	// xp 120..180 -> 120, gold 80..140 -> 80, bonus drop hits
	s.roller.SetChances(true)

	levelled := hunterDomain.NewProfile("user-1", guildID)
	levelled.Level = 2
	levelled.Inventory = []string{"potion"}
	unique := cardDomain.UniqueCatalogue[0]

	s.hunters.EXPECT().CommitProgression(gomock.Any(), "user-1", guildID, 120, 80).
		Return(&hunter.Progression{Profile: levelled, LevelsGained: 1, GoldApplied: 80}, nil).Times(1)
	s.cards.EXPECT().RollUniqueGrant(gomock.Any(), levelled).
		Return(&cardDomain.Grant{Granted: true, Card: &unique}, nil).Times(1)
	s.hunters.EXPECT().CommitInventory(gomock.Any(), "user-1", guildID, []string{"potion", hunterDomain.ItemHealKit}).
		Return(levelled, nil).Times(1)

	result := s.act("user-1", raidDomain.ActionAttack)
	s.True(result.OK)
	s.True(result.Ended)
	s.True(result.Won)
	s.False(result.Advanced)
	s.Equal(0, result.View.Boss.HP)
	s.Require().Len(result.Rewards, 1)

	reward := result.Rewards[0]
	s.True(reward.Committed)
	s.True(reward.Alive)
	s.Equal(120, reward.XP)
	s.Equal(80, reward.Gold)
	s.Equal(1, reward.LevelsGained)
	s.Equal(unique.Name, reward.Card)
	s.Equal(hunterDomain.ItemHealKit, reward.BonusDrop)

	// Further calls cannot settle again
	after := s.act("user-1", raidDomain.ActionAttack)
	s.Equal(raidDomain.ReasonNotRunning, after.Reason)
	forced, err := s.svc.ForceAdvance(s.ctx, raidID, "user-1")
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonNotRunning, forced.Reason)

	view, err := s.svc.View(s.ctx, raidID)
	s.Require().NoError(err)
	s.Equal(result.Rewards, view.Rewards)
}

func (s *RaidServiceTestSuite) TestDefeat_RoundLimit() {
	s.startWith("user-1")
	s.Require().Equal(raidDomain.MinRounds, s.session().MaxRounds)

	// consolation 20% of 120, penalty 12..40 -> 12
	s.hunters.EXPECT().CommitProgression(gomock.Any(), "user-1", guildID, 24, -12).
		Return(&hunter.Progression{Profile: hunterDomain.NewProfile("user-1", guildID), GoldApplied: -12}, nil)

	var result *raid.ActionResult
	for i := 0; i < raidDomain.MinRounds; i++ {
		var err error
		result, err = s.svc.ForceAdvance(s.ctx, raidID, "user-1")
		s.Require().NoError(err)
	}

	s.True(result.Ended)
	s.False(result.Won)
	s.Equal(raidDomain.StateEnded, result.View.State)
	s.Require().Len(result.Rewards, 1)
	s.False(result.Rewards[0].Alive)
	s.Equal(-12, result.Rewards[0].Gold)
	s.Empty(result.Rewards[0].Card)
}

func (s *RaidServiceTestSuite) TestSettlement_CommitFailureIsRecorded() {
	s.startWith("user-1", "user-2")
	s.session().Boss.HP = 10
	s.session().Participants["user-2"].Acted = true

	s.hunters.EXPECT().CommitProgression(gomock.Any(), "user-1", guildID, 120, 80).
		Return(nil, errors.New("redis down"))
	s.hunters.EXPECT().CommitProgression(gomock.Any(), "user-2", guildID, 120, 80).
		Return(&hunter.Progression{Profile: hunterDomain.NewProfile("user-2", guildID), GoldApplied: 80}, nil)
	s.cards.EXPECT().RollUniqueGrant(gomock.Any(), gomock.Any()).Return(&cardDomain.Grant{}, nil)

	result := s.act("user-1", raidDomain.ActionAttack)
	s.Require().True(result.Ended)
	s.Require().Len(result.Rewards, 2)
	s.Equal("user-1", result.Rewards[0].UserID)
	s.False(result.Rewards[0].Committed)
	s.Equal("user-2", result.Rewards[1].UserID)
	s.True(result.Rewards[1].Committed)
}

func (s *RaidServiceTestSuite) TestConcurrentActionsAreSerialized() {
	s.openLobby(ownerID)
	users := make([]string, raidDomain.MaxParticipants)
	for i := range users {
		users[i] = fmt.Sprintf("user-%d", i)
		s.join(users[i])
	}
	_, err := s.svc.Start(s.ctx, raidID, ownerID)
	s.Require().NoError(err)

	var wg sync.WaitGroup
	for _, u := range users {
		wg.Add(1)
		go func(userID string) {
			defer wg.Done()
			_, _ = s.svc.PerformAction(s.ctx, raidID, userID, raidDomain.ActionAttack)
		}(u)
	}
	wg.Wait()

	view, err := s.svc.View(s.ctx, raidID)
	s.Require().NoError(err)
	s.Equal(2, view.Round, "exactly one round completed")
	s.Equal(bossHP-len(users)*basePower, view.Boss.HP)
	for _, p := range view.Players {
		s.Equal(basePower, p.TotalDamage)
	}
}

func (s *RaidServiceTestSuite) TestDiscardAndMessage() {
	s.openLobby(ownerID)

	s.Require().NoError(s.svc.SetMessage(s.ctx, raidID, "msg-1"))
	view, err := s.svc.View(s.ctx, raidID)
	s.Require().NoError(err)
	s.Equal("msg-1", view.MessageID)

	views, err := s.svc.ListByGuild(s.ctx, guildID)
	s.Require().NoError(err)
	s.Len(views, 1)

	s.NoError(s.svc.Discard(s.ctx, raidID))
	s.NoError(s.svc.Discard(s.ctx, raidID))

	result, err := s.svc.Join(s.ctx, raidID, "user-1", guildID)
	s.Require().NoError(err)
	s.Equal(raidDomain.ReasonMissing, result.Reason)

	_, err = s.svc.View(s.ctx, raidID)
	s.Error(err)
	s.Error(s.svc.SetMessage(s.ctx, raidID, "msg-2"))

	views, err = s.svc.ListByGuild(s.ctx, guildID)
	s.Require().NoError(err)
	s.Empty(views)
}

func (s *RaidServiceTestSuite) TestLocksAreReleased() {
	_, err := s.svc.Join(s.ctx, "nope", "user-1", guildID)
	s.Require().NoError(err)
	_, err = s.svc.PerformAction(s.ctx, "nope", "user-1", raidDomain.ActionAttack)
	s.Require().NoError(err)
	_, err = s.svc.ForceAdvance(s.ctx, "nope", "user-1")
	s.Require().NoError(err)
	_, err = s.svc.View(s.ctx, "nope")
	s.Error(err)
	s.Error(s.svc.SetMessage(s.ctx, "nope", "msg-1"))
	s.Equal(0, raid.LockCount(s.svc), "unknown sessions leave no lock behind")

	s.startWith("user-1")
	s.Equal(0, raid.LockCount(s.svc))

	s.hunters.EXPECT().CommitProgression(gomock.Any(), "user-1", guildID, gomock.Any(), gomock.Any()).
		Return(&hunter.Progression{Profile: hunterDomain.NewProfile("user-1", guildID)}, nil)
	for i := 0; i < raidDomain.MinRounds; i++ {
		_, err := s.svc.ForceAdvance(s.ctx, raidID, "user-1")
		s.Require().NoError(err)
	}
	s.Equal(raidDomain.StateEnded, s.session().State)
	s.Equal(0, raid.LockCount(s.svc), "an ended session keeps no lock")
}
