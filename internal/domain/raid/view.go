package raid

// BossView is the renderable state of the boss
type BossView struct {
	Name  string `json:"name"`
	HP    int    `json:"hp"`
	MaxHP int    `json:"max_hp"`
}

// PlayerView is the renderable state of one participant
type PlayerView struct {
	UserID       string `json:"user_id"`
	HP           int    `json:"hp"`
	MaxHP        int    `json:"max_hp"`
	Shield       int    `json:"shield"`
	Acted        bool   `json:"acted"`
	Dead         bool   `json:"dead"`
	TotalDamage  int    `json:"total_damage"`
	HealKits     int    `json:"heal_kits"`
	SkillCharges int    `json:"skill_charges"`
}

// View is a read-only snapshot of a session for the presentation layer
type View struct {
	ID              string       `json:"id"`
	GuildID         string       `json:"guild_id"`
	ChannelID       string       `json:"channel_id"`
	MessageID       string       `json:"message_id"`
	OwnerID         string       `json:"owner_id"`
	State           State        `json:"state"`
	Round           int          `json:"round"`
	MaxRounds       int          `json:"max_rounds"`
	Difficulty      string       `json:"difficulty"`
	DifficultyLabel string       `json:"difficulty_label"`
	Boss            *BossView    `json:"boss,omitempty"`
	Players         []PlayerView `json:"players"`
	Defeated        []string     `json:"defeated"`
	Rewards         []Reward     `json:"rewards"`
	Won             bool         `json:"won"`
}

// View projects the session without mutating it
func (s *Session) View() *View {
	d := s.DifficultyInfo()
	v := &View{
		ID:              s.ID,
		GuildID:         s.GuildID,
		ChannelID:       s.ChannelID,
		MessageID:       s.MessageID,
		OwnerID:         s.OwnerID,
		State:           s.State,
		Round:           s.Round,
		MaxRounds:       s.MaxRounds,
		Difficulty:      d.Key,
		DifficultyLabel: d.Label,
		Players:         make([]PlayerView, 0, len(s.Order)),
		Defeated:        append([]string{}, s.Defeated...),
		Rewards:         append([]Reward{}, s.Rewards...),
		Won:             s.Won,
	}

	if s.Boss != nil {
		v.Boss = &BossView{Name: s.Boss.Name, HP: s.Boss.HP, MaxHP: s.Boss.MaxHP}
	}

	for _, p := range s.InOrder() {
		v.Players = append(v.Players, PlayerView{
			UserID:       p.UserID,
			HP:           p.HP,
			MaxHP:        p.MaxHP,
			Shield:       p.Shield,
			Acted:        p.Acted,
			Dead:         p.Dead,
			TotalDamage:  p.TotalDamage,
			HealKits:     p.HealKits,
			SkillCharges: p.SkillCharges(),
		})
	}

	return v
}

// Player returns the view of one participant
func (v *View) Player(userID string) (PlayerView, bool) {
	for _, p := range v.Players {
		if p.UserID == userID {
			return p, true
		}
	}
	return PlayerView{}, false
}

// Alive counts living players
func (v *View) Alive() int {
	n := 0
	for _, p := range v.Players {
		if !p.Dead {
			n++
		}
	}
	return n
}

// TopDamage returns the user who dealt the most damage; ties go to the earlier joiner
func (v *View) TopDamage() (string, int) {
	best, bestDamage := "", 0
	for _, p := range v.Players {
		if p.TotalDamage > bestDamage {
			best, bestDamage = p.UserID, p.TotalDamage
		}
	}
	return best, bestDamage
}
