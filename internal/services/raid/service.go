package raid

//go:generate mockgen -destination=mock/mock_service.go -package=mockraid -source=service.go

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
	hunterDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/hunter"
	raidDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
	apperr "github.com/KirkDiggler/raid-bot-discord/internal/errors"
	"github.com/KirkDiggler/raid-bot-discord/internal/repositories/raids"
	cardService "github.com/KirkDiggler/raid-bot-discord/internal/services/card"
	hunterService "github.com/KirkDiggler/raid-bot-discord/internal/services/hunter"
	shadowService "github.com/KirkDiggler/raid-bot-discord/internal/services/shadow"
	"github.com/KirkDiggler/raid-bot-discord/internal/uuid"
)

// Repository is an alias for the raid registry interface
type Repository = raids.Repository

// Service runs raid sessions from lobby to settlement.
// Rejections come back as results with a Reason; errors mean a collaborator failed.
type Service interface {
	// CreateLobby opens a new raid lobby
	CreateLobby(ctx context.Context, guildID, channelID, ownerID, difficulty string) (*raidDomain.View, error)

	// Join adds a hunter to a lobby, snapshotting their profile
	Join(ctx context.Context, sessionID, userID, guildID string) (*JoinResult, error)

	// Start rolls the boss and begins round 1
	Start(ctx context.Context, sessionID, starterID string) (*StartResult, error)

	// PerformAction resolves one participant action
	PerformAction(ctx context.Context, sessionID, userID string, action raidDomain.Action) (*ActionResult, error)

	// ForceAdvance resolves the current round immediately
	ForceAdvance(ctx context.Context, sessionID, userID string) (*ActionResult, error)

	// View projects the session for rendering
	View(ctx context.Context, sessionID string) (*raidDomain.View, error)

	// Discard removes a session; unknown IDs are ignored
	Discard(ctx context.Context, sessionID string) error

	// SetMessage records the chat message that renders the session
	SetMessage(ctx context.Context, sessionID, messageID string) error

	// ListByGuild returns views of the guild's live sessions
	ListByGuild(ctx context.Context, guildID string) ([]*raidDomain.View, error)
}

// JoinResult is the outcome of Join
type JoinResult struct {
	OK     bool
	Reason raidDomain.Reason
	// Joined is false when the hunter was already in the lobby
	Joined bool
	View   *raidDomain.View
}

// StartResult is the outcome of Start
type StartResult struct {
	OK     bool
	Reason raidDomain.Reason
	View   *raidDomain.View
}

// ActionResult is the outcome of PerformAction and ForceAdvance
type ActionResult struct {
	OK      bool
	Reason  raidDomain.Reason
	Outcome raidDomain.Outcome
	Action  raidDomain.Action

	Damage     int
	Skill      raidDomain.Skill
	Multiplier float64
	Healed     int
	Shield     int

	// Advanced is true when the boss struck and the round moved on
	Advanced bool
	Strikes  []raidDomain.Strike

	Ended   bool
	Won     bool
	Rewards []raidDomain.Reward
	View    *raidDomain.View
}

// ServiceConfig holds configuration for the raid service
type ServiceConfig struct {
	Repository    Repository
	HunterService hunterService.Service
	ShadowService shadowService.Service
	CardService   cardService.Service
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
}

type service struct {
	repository    Repository
	hunterService hunterService.Service
	shadowService shadowService.Service
	cardService   cardService.Service
	roller        dice.Roller
	uuidGenerator uuid.Generator
	now           func() time.Time

	locksMu sync.Mutex
	locks   map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// settleLimit caps concurrent profile writes during settlement
const settleLimit = 4

// NewService creates a new raid service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.HunterService == nil {
		panic("hunter service is required")
	}
	if cfg.ShadowService == nil {
		panic("shadow service is required")
	}
	if cfg.CardService == nil {
		panic("card service is required")
	}

	svc := &service{
		repository:    cfg.Repository,
		hunterService: cfg.HunterService,
		shadowService: cfg.ShadowService,
		cardService:   cfg.CardService,
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
		now:           time.Now,
		locks:         make(map[string]*sessionLock),
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// lock serializes every operation on one session. The entry is dropped once
// nobody holds or waits on it, so unknown and finished sessions leave nothing behind.
func (s *service) lock(sessionID string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sessionLock{}
		s.locks[sessionID] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()

		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, sessionID)
		}
		s.locksMu.Unlock()
	}
}

// load fetches a session, reporting a missing one as found=false
func (s *service) load(ctx context.Context, sessionID string) (*raidDomain.Session, bool, error) {
	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, apperr.Wrapf(err, "failed to load raid '%s'", sessionID)
	}
	return session, true, nil
}

func (s *service) CreateLobby(ctx context.Context, guildID, channelID, ownerID, difficulty string) (*raidDomain.View, error) {
	if guildID == "" {
		return nil, apperr.InvalidArgument("guild ID is required")
	}
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	session := raidDomain.NewSession(
		s.uuidGenerator.New(),
		guildID,
		channelID,
		ownerID,
		difficulty,
		raidDomain.RollMaxRounds(s.roller),
		s.now(),
	)

	if err := s.repository.Create(ctx, session); err != nil {
		return nil, apperr.Wrap(err, "failed to register raid")
	}

	log.Printf("Raid %s: lobby opened by %s in guild %s (%s, %d rounds)",
		session.ID, ownerID, guildID, session.Difficulty, session.MaxRounds)

	return session.View(), nil
}

func (s *service) Join(ctx context.Context, sessionID, userID, guildID string) (*JoinResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, found, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return &JoinResult{Reason: raidDomain.ReasonMissing}, nil
	}

	reject := func(reason raidDomain.Reason) (*JoinResult, error) {
		return &JoinResult{Reason: reason, View: session.View()}, nil
	}

	if session.State != raidDomain.StateLobby {
		return reject(raidDomain.ReasonStarted)
	}
	if session.GuildID != guildID {
		return reject(raidDomain.ReasonWrongGuild)
	}
	if session.HasParticipant(userID) {
		return &JoinResult{OK: true, View: session.View()}, nil
	}
	if session.IsFull() {
		return reject(raidDomain.ReasonFull)
	}

	participant, err := s.snapshot(ctx, userID, guildID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to join raid '%s'", sessionID).
			WithMeta("raid_id", sessionID).
			WithMeta("user_id", userID)
	}

	session.AddParticipant(participant)
	log.Printf("Raid %s: %s joined (%d/%d)", sessionID, userID, len(session.Order), raidDomain.MaxParticipants)

	return &JoinResult{OK: true, Joined: true, View: session.View()}, nil
}

// snapshot builds a participant from the hunter's persisted state. Armed skill
// markers are moved out of the inventory into raid charges.
func (s *service) snapshot(ctx context.Context, userID, guildID string) (*raidDomain.Participant, error) {
	profile, err := s.hunterService.GetOrCreate(ctx, userID, guildID)
	if err != nil {
		return nil, err
	}

	shadows, err := s.shadowService.GetEquipped(ctx, userID, guildID)
	if err != nil {
		return nil, err
	}

	bonus, err := s.cardService.GetBonus(ctx, profile)
	if err != nil {
		return nil, err
	}

	skills, rest := profile.SplitActiveSkills()
	if len(skills) > 0 {
		profile, err = s.hunterService.CommitInventory(ctx, userID, guildID, rest)
		if err != nil {
			return nil, err
		}
	}

	participant := raidDomain.NewParticipant(userID, raidDomain.Stats{
		Level:        profile.Level,
		Strength:     profile.Strength,
		Agility:      profile.Agility,
		Intelligence: profile.Intelligence,
		Vitality:     profile.Vitality,
	})

	for _, sh := range shadows {
		participant.Allies = append(participant.Allies, raidDomain.Ally{
			Name:         sh.Name,
			BaseDamage:   sh.BaseDamage,
			AbilityBonus: sh.AbilityBonus,
		})
	}
	if bonus != nil {
		participant.CardPower = bonus.TotalPower
	}
	for _, name := range skills {
		if skill, ok := raidDomain.ParseSkill(name); ok {
			participant.AddSkillCharge(skill)
		}
	}
	participant.HealKits = profile.CountItem(hunterDomain.ItemHealKit)

	return participant, nil
}

func (s *service) Start(ctx context.Context, sessionID, starterID string) (*StartResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, found, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return &StartResult{Reason: raidDomain.ReasonMissing}, nil
	}

	reject := func(reason raidDomain.Reason) (*StartResult, error) {
		return &StartResult{Reason: reason, View: session.View()}, nil
	}

	if session.State != raidDomain.StateLobby {
		return reject(raidDomain.ReasonAlready)
	}
	if !session.CanStart(starterID) {
		return reject(raidDomain.ReasonOwnerOnly)
	}
	if len(session.Participants) == 0 {
		return reject(raidDomain.ReasonEmpty)
	}

	boss := raidDomain.RollBoss(s.roller, session.DifficultyInfo())
	session.Begin(boss, s.now())

	log.Printf("Raid %s: started by %s against %s (%d HP, %d ATK) with %d hunters",
		sessionID, starterID, boss.Name, boss.MaxHP, boss.Attack, len(session.Order))

	return &StartResult{OK: true, View: session.View()}, nil
}

func (s *service) PerformAction(ctx context.Context, sessionID, userID string, action raidDomain.Action) (*ActionResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, found, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return &ActionResult{Reason: raidDomain.ReasonMissing, Action: action}, nil
	}

	reject := func(reason raidDomain.Reason) (*ActionResult, error) {
		return &ActionResult{Reason: reason, Action: action, View: session.View()}, nil
	}

	if !action.Valid() {
		return reject(raidDomain.ReasonInvalidAction)
	}

	participant, reason := session.Actor(userID)
	if reason != raidDomain.ReasonNone {
		return reject(reason)
	}

	// A badly wounded party cannot stall: the round resolves without the action
	if session.NeedsEarlyAdvance() {
		strikes := session.AdvanceRound(s.roller)
		log.Printf("Raid %s: party critical, round advanced to %d", sessionID, session.Round)

		result := &ActionResult{
			OK:       true,
			Outcome:  raidDomain.OutcomeAutoNext,
			Action:   action,
			Advanced: true,
			Strikes:  strikes,
		}
		return s.finishAction(ctx, session, result), nil
	}

	// Heal charges are spent the moment they are used, so a second heal reports
	// the missing item rather than the spent turn
	if action == raidDomain.ActionHeal && participant.HealKits <= 0 {
		return reject(raidDomain.ReasonNoHealItem)
	}
	if participant.Acted {
		return reject(raidDomain.ReasonAlreadyActed)
	}

	result := &ActionResult{OK: true, Outcome: raidDomain.OutcomeActed, Action: action}

	switch action {
	case raidDomain.ActionHeal:
		ok, err := s.consumeHealKit(ctx, session, participant)
		if err != nil {
			return nil, err
		}
		if !ok {
			return reject(raidDomain.ReasonNoHealItem)
		}
		result.Healed = session.ApplyHeal(participant)

	case raidDomain.ActionGuard:
		result.Shield = session.ApplyGuard(participant)

	case raidDomain.ActionAttack, raidDomain.ActionSkill:
		hit := session.ApplyAttack(participant, s.roller, action == raidDomain.ActionSkill)
		result.Damage = hit.Damage
		result.Skill = hit.Skill
		result.Multiplier = hit.Multiplier
	}

	result.Advanced, result.Strikes = session.CompleteTurn(s.roller)
	if result.Advanced {
		log.Printf("Raid %s: round advanced to %d", sessionID, session.Round)
	}

	return s.finishAction(ctx, session, result), nil
}

// consumeHealKit removes one kit from the persisted inventory. It reports false
// when the hunter no longer holds one.
func (s *service) consumeHealKit(ctx context.Context, session *raidDomain.Session, p *raidDomain.Participant) (bool, error) {
	profile, err := s.hunterService.GetOrCreate(ctx, p.UserID, session.GuildID)
	if err != nil {
		return false, apperr.Wrapf(err, "failed to load inventory of '%s'", p.UserID).
			WithMeta("raid_id", session.ID)
	}

	// A rejected heal leaves the participant untouched
	inventory, ok := profile.WithoutItem(hunterDomain.ItemHealKit)
	if !ok {
		return false, nil
	}

	if _, err := s.hunterService.CommitInventory(ctx, p.UserID, session.GuildID, inventory); err != nil {
		return false, apperr.Wrapf(err, "failed to consume heal kit of '%s'", p.UserID).
			WithMeta("raid_id", session.ID)
	}
	return true, nil
}

func (s *service) ForceAdvance(ctx context.Context, sessionID, userID string) (*ActionResult, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, found, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		return &ActionResult{Reason: raidDomain.ReasonMissing}, nil
	}

	if _, reason := session.Actor(userID); reason != raidDomain.ReasonNone {
		return &ActionResult{Reason: reason, View: session.View()}, nil
	}

	strikes := session.AdvanceRound(s.roller)
	log.Printf("Raid %s: %s forced the round, now %d", sessionID, userID, session.Round)

	result := &ActionResult{
		OK:       true,
		Outcome:  raidDomain.OutcomeForced,
		Advanced: true,
		Strikes:  strikes,
	}
	return s.finishAction(ctx, session, result), nil
}

// finishAction settles an ended raid and fills the common result fields
func (s *service) finishAction(ctx context.Context, session *raidDomain.Session, result *ActionResult) *ActionResult {
	if session.IsEnded() {
		s.settle(ctx, session)
		result.Ended = true
		result.Won = session.Won
		result.Rewards = append([]raidDomain.Reward{}, session.Rewards...)
	}
	result.View = session.View()
	return result
}

func (s *service) View(ctx context.Context, sessionID string) (*raidDomain.View, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.View(), nil
}

func (s *service) Discard(ctx context.Context, sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	if err := s.repository.Delete(ctx, sessionID); err != nil {
		return apperr.Wrapf(err, "failed to discard raid '%s'", sessionID)
	}

	log.Printf("Raid %s: discarded", sessionID)
	return nil
}

func (s *service) SetMessage(ctx context.Context, sessionID, messageID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	session.MessageID = messageID
	return nil
}

func (s *service) ListByGuild(ctx context.Context, guildID string) ([]*raidDomain.View, error) {
	sessions, err := s.repository.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to list raids of guild '%s'", guildID)
	}

	views := make([]*raidDomain.View, 0, len(sessions))
	for _, session := range sessions {
		unlock := s.lock(session.ID)
		views = append(views, session.View())
		unlock()
	}
	return views, nil
}
