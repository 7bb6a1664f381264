package raid

// State is the lifecycle state of a raid session
type State string

const (
	StateLobby      State = "lobby"
	StateInProgress State = "in_progress"
	StateEnded      State = "ended"
)

// Action is what a participant does on their turn
type Action string

const (
	ActionAttack Action = "attack"
	ActionGuard  Action = "guard"
	ActionSkill  Action = "skill"
	ActionHeal   Action = "heal"
)

// Valid reports whether a is a known action
func (a Action) Valid() bool {
	switch a {
	case ActionAttack, ActionGuard, ActionSkill, ActionHeal:
		return true
	}
	return false
}

// Reason is the stable code carried by a rejected operation
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonMissing       Reason = "missing"
	ReasonStarted       Reason = "started"
	ReasonWrongGuild    Reason = "wrong_guild"
	ReasonFull          Reason = "full"
	ReasonAlready       Reason = "already"
	ReasonOwnerOnly     Reason = "owner_only"
	ReasonEmpty         Reason = "empty"
	ReasonNotRunning    Reason = "not_running"
	ReasonNotInRaid     Reason = "not_in_raid"
	ReasonDead          Reason = "dead"
	ReasonAlreadyActed  Reason = "already_acted"
	ReasonNoHealItem    Reason = "no_heal_item"
	ReasonInvalidAction Reason = "invalid_action"
)

// Outcome describes how an accepted action call was resolved
type Outcome string

const (
	// OutcomeActed means the caller's action was applied
	OutcomeActed Outcome = "acted"

	// OutcomeAutoNext means the party was too wounded and the round advanced without the action
	OutcomeAutoNext Outcome = "auto_next"

	// OutcomeForced means a participant forced the round to resolve
	OutcomeForced Outcome = "forced"
)

const (
	// MaxParticipants is the hard lobby cap
	MaxParticipants = 8

	// SystemOwnerID owns lobbies opened by the bot itself; anyone in the raid may start those
	SystemOwnerID = "auto"

	// MinRounds and MaxRoundsCap bound the per-session round limit
	MinRounds    = 4
	MaxRoundsCap = 5

	// MinDamage keeps every hit meaningful
	MinDamage = 20

	// HealPercent of max HP restored by one heal kit
	HealPercent = 35

	// Player hit variance
	HitVarianceMin = 0.90
	HitVarianceMax = 1.15

	// Boss strike variance
	StrikeVarianceMin = 0.85
	StrikeVarianceMax = 1.15

	// Consolation for a lost raid or a fallen hunter
	ConsolationXPPercent = 20
	PenaltyGoldMin       = 12
	PenaltyGoldMax       = 40
)
