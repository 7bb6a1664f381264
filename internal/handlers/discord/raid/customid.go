package raid

import (
	"fmt"
	"strings"
)

const (
	// CustomIDPrefix routes button interactions to this package
	CustomIDPrefix = "raid"

	customIDSeparator = ":"
)

// Button actions carried in custom IDs
const (
	ButtonJoin   = "join"
	ButtonStart  = "start"
	ButtonAttack = "attack"
	ButtonGuard  = "guard"
	ButtonSkill  = "skill"
	ButtonHeal   = "heal"
	ButtonNext   = "next"
	ButtonLeave  = "leave"
)

// CustomID builds "raid:<action>:<sessionID>"
func CustomID(action, sessionID string) string {
	return strings.Join([]string{CustomIDPrefix, action, sessionID}, customIDSeparator)
}

// ParseCustomID splits a raid custom ID into its action and session ID
func ParseCustomID(customID string) (action, sessionID string, err error) {
	parts := strings.SplitN(customID, customIDSeparator, 3)
	if len(parts) != 3 || parts[0] != CustomIDPrefix {
		return "", "", fmt.Errorf("not a raid custom ID: %q", customID)
	}
	if parts[1] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("incomplete raid custom ID: %q", customID)
	}
	return parts[1], parts[2], nil
}
