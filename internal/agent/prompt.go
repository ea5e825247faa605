package agent

import (
	"strconv"
	"strings"
)

// promptStyle captures the two profile block wordings in use.
type promptStyle struct {
	header      string
	stressLabel string
	outOfTen    bool
	turns       int
}

func domainStyle(turns int) promptStyle {
	return promptStyle{header: "User Profile:", stressLabel: "Stress Level", turns: turns}
}

func generalStyle(turns int) promptStyle {
	return promptStyle{header: "Student Profile:", stressLabel: "Current Stress Level", outOfTen: true, turns: turns}
}

// buildPrompt assembles profile block, recent turns (oldest first) and the
// current message. The persona goes in the system prompt option.
func buildPrompt(message string, c Context, style promptStyle) string {
	var b strings.Builder

	if p := c.Profile; p != nil {
		b.WriteString(style.header + "\n")
		if p.Name != "" {
			b.WriteString("- Name: " + p.Name + "\n")
		}
		if p.Major != "" {
			b.WriteString("- Major: " + p.Major + "\n")
		}
		if p.Year != "" {
			b.WriteString("- Year: " + p.Year + "\n")
		}
		if len(p.Interests) > 0 {
			b.WriteString("- Interests: " + strings.Join(p.Interests, ", ") + "\n")
		}
		if p.StressLevel != "" {
			b.WriteString("- " + style.stressLabel + ": " + formatStress(p.StressLevel, style.outOfTen) + "\n")
		}
		b.WriteString("\n")
	}

	if history := lastTurns(c.History, style.turns); len(history) > 0 {
		b.WriteString("Recent Conversation:\n")
		for _, t := range history {
			speaker := "Advisor"
			if t.Role == RoleUser {
				speaker = "Student"
			}
			b.WriteString(speaker + ": " + t.Content + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Current Question: " + message + "\n\n")
	b.WriteString("Response:")
	return b.String()
}

func lastTurns(history []Turn, n int) []Turn {
	if n <= 0 || len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// formatStress renders numeric levels as "N/10" when asked; categorical
// levels are left alone.
func formatStress(level string, outOfTen bool) string {
	if !outOfTen {
		return level
	}
	if _, err := strconv.Atoi(level); err == nil {
		return level + "/10"
	}
	return level
}
