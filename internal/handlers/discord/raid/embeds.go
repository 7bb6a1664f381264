package raid

import (
	"fmt"
	"strings"

	raidDomain "github.com/KirkDiggler/raid-bot-discord/internal/domain/raid"
	raidService "github.com/KirkDiggler/raid-bot-discord/internal/services/raid"
	"github.com/bwmarrin/discordgo"
)

const (
	colorLobby   = 0x3498db
	colorBattle  = 0xe74c3c
	colorVictory = 0x2ecc71
	colorDefeat  = 0x95a5a6

	hpBarWidth = 10
)

// healthBar renders hp as a fixed width bar
func healthBar(hp, maxHP, width int) string {
	if maxHP <= 0 || width <= 0 {
		return ""
	}
	if hp < 0 {
		hp = 0
	}
	if hp > maxHP {
		hp = maxHP
	}

	filled := hp * width / maxHP
	// Anything still standing shows at least one block
	if hp > 0 && filled == 0 {
		filled = 1
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// BuildRaidEmbed renders a session view. summary is an optional line about the last action.
func BuildRaidEmbed(view *raidDomain.View, summary string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Fields: []*discordgo.MessageEmbedField{},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Raid %s", view.ID),
		},
	}

	switch view.State {
	case raidDomain.StateLobby:
		embed.Title = fmt.Sprintf("🌀 %s opened", view.DifficultyLabel)
		embed.Description = fmt.Sprintf("Hunters gather at the gate (%d/%d). Up to %d rounds.",
			len(view.Players), raidDomain.MaxParticipants, view.MaxRounds)
		embed.Color = colorLobby
	case raidDomain.StateInProgress:
		embed.Title = fmt.Sprintf("⚔️ %s: Round %d/%d", view.DifficultyLabel, view.Round, view.MaxRounds)
		embed.Color = colorBattle
	case raidDomain.StateEnded:
		if view.Won {
			embed.Title = fmt.Sprintf("🏆 %s cleared", view.DifficultyLabel)
			embed.Color = colorVictory
		} else {
			embed.Title = fmt.Sprintf("💀 %s failed", view.DifficultyLabel)
			embed.Color = colorDefeat
		}
	}

	if summary != "" {
		if embed.Description != "" {
			embed.Description += "\n"
		}
		embed.Description += summary
	}

	if view.Boss != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("👹 %s", view.Boss.Name),
			Value: fmt.Sprintf("%s %d/%d HP",
				healthBar(view.Boss.HP, view.Boss.MaxHP, hpBarWidth), view.Boss.HP, view.Boss.MaxHP),
		})
	}

	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  fmt.Sprintf("Hunters (%d)", len(view.Players)),
		Value: playerLines(view),
	})

	if len(view.Defeated) > 0 {
		names := make([]string, len(view.Defeated))
		for i, id := range view.Defeated {
			names[i] = mention(id)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Fallen",
			Value: strings.Join(names, ", "),
		})
	}

	if view.State == raidDomain.StateEnded {
		if id, dmg := view.TopDamage(); id != "" && dmg > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:   "MVP",
				Value:  fmt.Sprintf("%s with %d damage", mention(id), dmg),
				Inline: true,
			})
		}
		if len(view.Rewards) > 0 {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  "Rewards",
				Value: rewardLines(view.Rewards),
			})
		}
	}

	return embed
}

func playerLines(view *raidDomain.View) string {
	if len(view.Players) == 0 {
		return "No hunters yet"
	}

	var b strings.Builder
	for _, p := range view.Players {
		status := "⏳"
		switch {
		case p.Dead:
			status = "💀"
		case view.State == raidDomain.StateLobby:
			status = "🛡️"
		case p.Acted:
			status = "✅"
		}

		fmt.Fprintf(&b, "%s %s %s %d/%d", status, mention(p.UserID), healthBar(p.HP, p.MaxHP, hpBarWidth), p.HP, p.MaxHP)
		if p.Shield > 0 {
			fmt.Fprintf(&b, " 🔰%d", p.Shield)
		}
		if p.HealKits > 0 {
			fmt.Fprintf(&b, " 🧪%d", p.HealKits)
		}
		if p.SkillCharges > 0 {
			fmt.Fprintf(&b, " ✨%d", p.SkillCharges)
		}
		if p.TotalDamage > 0 {
			fmt.Fprintf(&b, " · %d dmg", p.TotalDamage)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func rewardLines(rewards []raidDomain.Reward) string {
	var b strings.Builder
	for _, r := range rewards {
		fmt.Fprintf(&b, "%s +%d XP, %+d gold", mention(r.UserID), r.XP, r.Gold)
		if r.LevelsGained > 0 {
			fmt.Fprintf(&b, ", +%d level", r.LevelsGained)
		}
		if r.Card != "" {
			fmt.Fprintf(&b, ", 🃏 %s", r.Card)
		}
		if r.BonusDrop != "" {
			fmt.Fprintf(&b, ", 🎁 %s", r.BonusDrop)
		}
		if !r.Committed {
			b.WriteString(" (not saved)")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildRaidComponents returns the buttons that fit the session state
func BuildRaidComponents(view *raidDomain.View) []discordgo.MessageComponent {
	switch view.State {
	case raidDomain.StateLobby:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Join", Style: discordgo.SuccessButton, CustomID: CustomID(ButtonJoin, view.ID), Emoji: &discordgo.ComponentEmoji{Name: "🗡️"}},
				discordgo.Button{Label: "Start", Style: discordgo.PrimaryButton, CustomID: CustomID(ButtonStart, view.ID), Disabled: len(view.Players) == 0},
				discordgo.Button{Label: "Close", Style: discordgo.DangerButton, CustomID: CustomID(ButtonLeave, view.ID)},
			}},
		}
	case raidDomain.StateInProgress:
		return []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Attack", Style: discordgo.DangerButton, CustomID: CustomID(ButtonAttack, view.ID), Emoji: &discordgo.ComponentEmoji{Name: "⚔️"}},
				discordgo.Button{Label: "Guard", Style: discordgo.SecondaryButton, CustomID: CustomID(ButtonGuard, view.ID), Emoji: &discordgo.ComponentEmoji{Name: "🛡️"}},
				discordgo.Button{Label: "Skill", Style: discordgo.PrimaryButton, CustomID: CustomID(ButtonSkill, view.ID), Emoji: &discordgo.ComponentEmoji{Name: "✨"}},
				discordgo.Button{Label: "Heal", Style: discordgo.SuccessButton, CustomID: CustomID(ButtonHeal, view.ID), Emoji: &discordgo.ComponentEmoji{Name: "🧪"}},
			}},
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Next Round", Style: discordgo.SecondaryButton, CustomID: CustomID(ButtonNext, view.ID)},
				discordgo.Button{Label: "Abandon", Style: discordgo.DangerButton, CustomID: CustomID(ButtonLeave, view.ID)},
			}},
		}
	default:
		return []discordgo.MessageComponent{}
	}
}

var reasonMessages = map[raidDomain.Reason]string{
	raidDomain.ReasonMissing:       "This raid no longer exists.",
	raidDomain.ReasonStarted:       "The raid has already started.",
	raidDomain.ReasonWrongGuild:    "This raid belongs to another server.",
	raidDomain.ReasonFull:          "The raid party is full.",
	raidDomain.ReasonAlready:       "The raid is already underway.",
	raidDomain.ReasonOwnerOnly:     "Only the raid leader can do that.",
	raidDomain.ReasonEmpty:         "Nobody has joined yet.",
	raidDomain.ReasonNotRunning:    "The battle is not in progress.",
	raidDomain.ReasonNotInRaid:     "You are not part of this raid.",
	raidDomain.ReasonDead:          "You have fallen and cannot act.",
	raidDomain.ReasonAlreadyActed:  "You already acted this round.",
	raidDomain.ReasonNoHealItem:    "You have no heal kits left.",
	raidDomain.ReasonInvalidAction: "Unknown raid action.",
}

// ReasonMessage maps a rejection reason to the text shown to the user
func ReasonMessage(reason raidDomain.Reason) string {
	if msg, ok := reasonMessages[reason]; ok {
		return msg
	}
	return "That did not work."
}

// ActionSummary describes an accepted action in one line
func ActionSummary(userID string, result *raidService.ActionResult) string {
	var line string
	switch result.Outcome {
	case raidDomain.OutcomeAutoNext:
		line = "🚨 The party is badly wounded, the boss presses on!"
	case raidDomain.OutcomeForced:
		line = fmt.Sprintf("⏭️ %s called the next round.", mention(userID))
	default:
		switch result.Action {
		case raidDomain.ActionAttack:
			line = fmt.Sprintf("⚔️ %s hits for **%d**.", mention(userID), result.Damage)
		case raidDomain.ActionSkill:
			name := "a raw burst"
			if result.Skill != "" {
				name = strings.ReplaceAll(string(result.Skill), "_", " ")
			}
			line = fmt.Sprintf("✨ %s uses %s for **%d**.", mention(userID), name, result.Damage)
		case raidDomain.ActionGuard:
			line = fmt.Sprintf("🛡️ %s braces with a %d shield.", mention(userID), result.Shield)
		case raidDomain.ActionHeal:
			line = fmt.Sprintf("🧪 %s recovers %d HP.", mention(userID), result.Healed)
		}
	}

	if result.Advanced {
		taken := 0
		for _, s := range result.Strikes {
			taken += s.Damage
		}
		line += fmt.Sprintf(" The boss strikes back for %d total damage.", taken)
	}
	return line
}
