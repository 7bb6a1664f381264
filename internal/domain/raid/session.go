package raid

import (
	"math"
	"time"

	"github.com/KirkDiggler/raid-bot-discord/internal/dice"
)

// Session is one raid instance: lobby, battle and settlement
type Session struct {
	ID           string                  `json:"id"`
	GuildID      string                  `json:"guild_id"`
	ChannelID    string                  `json:"channel_id"`
	MessageID    string                  `json:"message_id"`
	OwnerID      string                  `json:"owner_id"`
	Difficulty   string                  `json:"difficulty"`
	State        State                   `json:"state"`
	Round        int                     `json:"round"`
	MaxRounds    int                     `json:"max_rounds"`
	Boss         *Boss                   `json:"boss"`
	Participants map[string]*Participant `json:"participants"`
	Order        []string                `json:"order"`
	Defeated     []string                `json:"defeated"`
	Rewards      []Reward                `json:"rewards"`
	Won          bool                    `json:"won"`
	Settled      bool                    `json:"settled"`
	CreatedAt    time.Time               `json:"created_at"`
	StartedAt    *time.Time              `json:"started_at"`
	EndedAt      *time.Time              `json:"ended_at"`
}

// NewSession creates a lobby. maxRounds is clamped to [MinRounds, MaxRoundsCap].
func NewSession(id, guildID, channelID, ownerID, difficulty string, maxRounds int, now time.Time) *Session {
	return &Session{
		ID:           id,
		GuildID:      guildID,
		ChannelID:    channelID,
		OwnerID:      ownerID,
		Difficulty:   LookupDifficulty(difficulty).Key,
		State:        StateLobby,
		MaxRounds:    dice.Clamp(maxRounds, MinRounds, MaxRoundsCap),
		Participants: make(map[string]*Participant),
		Order:        []string{},
		Defeated:     []string{},
		CreatedAt:    now,
	}
}

// RollMaxRounds draws the per-session round limit
func RollMaxRounds(roller dice.Roller) int {
	return roller.Between(MinRounds, MaxRoundsCap)
}

// DifficultyInfo returns the difficulty entry of the session
func (s *Session) DifficultyInfo() Difficulty {
	return LookupDifficulty(s.Difficulty)
}

// HasParticipant reports whether the user ever joined
func (s *Session) HasParticipant(userID string) bool {
	_, ok := s.Participants[userID]
	return ok
}

// IsFull reports whether the lobby reached MaxParticipants
func (s *Session) IsFull() bool {
	return len(s.Participants) >= MaxParticipants
}

// AddParticipant appends a participant in join order
func (s *Session) AddParticipant(p *Participant) {
	if s.HasParticipant(p.UserID) {
		return
	}
	s.Participants[p.UserID] = p
	s.Order = append(s.Order, p.UserID)
}

// InOrder returns the participants in join order
func (s *Session) InOrder() []*Participant {
	out := make([]*Participant, 0, len(s.Order))
	for _, id := range s.Order {
		if p, ok := s.Participants[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Alive returns the living participants in join order
func (s *Session) Alive() []*Participant {
	out := make([]*Participant, 0, len(s.Order))
	for _, p := range s.InOrder() {
		if p.IsAlive() {
			out = append(out, p)
		}
	}
	return out
}

// CanStart reports whether starterID may start the raid
func (s *Session) CanStart(starterID string) bool {
	return s.OwnerID == starterID || s.OwnerID == SystemOwnerID
}

// Begin moves the lobby into battle against boss
func (s *Session) Begin(boss *Boss, now time.Time) {
	s.State = StateInProgress
	s.Round = 1
	s.Boss = boss
	s.StartedAt = &now
	s.resetActed()
}

// IsRunning reports whether the battle is in progress
func (s *Session) IsRunning() bool {
	return s.State == StateInProgress
}

// IsEnded reports whether the raid is over
func (s *Session) IsEnded() bool {
	return s.State == StateEnded
}

// Actor validates that userID may act right now
func (s *Session) Actor(userID string) (*Participant, Reason) {
	if !s.IsRunning() {
		return nil, ReasonNotRunning
	}
	p, ok := s.Participants[userID]
	if !ok {
		return nil, ReasonNotInRaid
	}
	if p.Dead {
		return nil, ReasonDead
	}
	return p, ReasonNone
}

// NeedsEarlyAdvance reports whether at least half (rounded up) of the living
// participants are at or below half HP
func (s *Session) NeedsEarlyAdvance() bool {
	alive := s.Alive()
	if len(alive) == 0 {
		return false
	}
	low := 0
	for _, p := range alive {
		if p.IsLow() {
			low++
		}
	}
	return low >= (len(alive)+1)/2
}

// AllAliveActed reports whether every living participant acted this round
func (s *Session) AllAliveActed() bool {
	for _, p := range s.Alive() {
		if !p.Acted {
			return false
		}
	}
	return true
}

// Hit is the result of an attack or skill
type Hit struct {
	Damage     int
	Skill      Skill
	Multiplier float64
}

// ApplyAttack resolves an attack (or skill when useSkill) from p against the boss
func (s *Session) ApplyAttack(p *Participant, roller dice.Roller, useSkill bool) Hit {
	hit := Hit{Multiplier: 1}
	if useSkill {
		hit.Skill, hit.Multiplier, _ = p.ConsumeSkill()
	}
	hit.Damage = p.RollDamage(roller, hit.Multiplier)

	p.TotalDamage += hit.Damage
	s.Boss.TakeDamage(hit.Damage)
	p.Acted = true
	return hit
}

// ApplyGuard stores a shield for the next boss strike
func (s *Session) ApplyGuard(p *Participant) int {
	p.Shield = p.GuardShield()
	p.Acted = true
	return p.Shield
}

// ApplyHeal spends one in-session heal kit. The caller consumes the persisted item first.
func (s *Session) ApplyHeal(p *Participant) int {
	if p.HealKits > 0 {
		p.HealKits--
	}
	p.Acted = true
	return p.Heal()
}

// CompleteTurn ends the raid on a dead boss, or advances the round when every
// living participant acted or the party is critically wounded
func (s *Session) CompleteTurn(roller dice.Roller) (advanced bool, strikes []Strike) {
	if s.Boss.IsDefeated() {
		s.evaluateEnd()
		return false, nil
	}
	if s.AllAliveActed() || s.NeedsEarlyAdvance() {
		return true, s.AdvanceRound(roller)
	}
	return false, nil
}

// AdvanceRound lets the boss strike every living participant, moves to the next
// round, resets acted flags and ends the raid when a limit is hit
func (s *Session) AdvanceRound(roller dice.Roller) []Strike {
	if !s.IsRunning() {
		return nil
	}

	strikes := make([]Strike, 0, len(s.Order))
	for _, p := range s.Alive() {
		raw := int(math.Floor(float64(s.Boss.Attack) * roller.Factor(StrikeVarianceMin, StrikeVarianceMax)))
		strike := p.TakeStrike(raw)
		if strike.Died {
			s.Defeated = append(s.Defeated, p.UserID)
		}
		strikes = append(strikes, strike)
	}

	s.Round++
	s.resetActed()
	s.evaluateEnd()
	return strikes
}

// evaluateEnd ends the raid on a dead boss, on the round limit or on a party wipe
func (s *Session) evaluateEnd() bool {
	if !s.IsRunning() {
		return s.IsEnded()
	}
	switch {
	case s.Boss.IsDefeated():
		s.finish(true)
	case s.Round > s.MaxRounds, len(s.Alive()) == 0:
		s.finish(false)
	}
	return s.IsEnded()
}

func (s *Session) finish(won bool) {
	now := time.Now()
	s.State = StateEnded
	s.Won = won
	s.EndedAt = &now
}

func (s *Session) resetActed() {
	for _, p := range s.Participants {
		p.Acted = false
	}
}

// Settle records the rewards once. It returns false when the session was already settled.
func (s *Session) Settle(rewards []Reward) bool {
	if s.Settled {
		return false
	}
	s.Rewards = rewards
	s.Settled = true
	return true
}
