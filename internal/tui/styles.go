package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wordorder-go/internal/game"
)

// --- STYLING (using Lipgloss) ---

var (
	styleHeader   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("12"))
	styleLabel    = lipgloss.NewStyle().Bold(true)
	styleCorrect  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Green
	styleError    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Red
	styleInfo     = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))            // Yellow
	styleSubtle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCursor   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleArea     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1)
	styleToken    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Padding(0, 1)
	wordSeparator = " "
)

var roleStyles = map[game.Role]lipgloss.Style{
	game.RoleSubject:     styleToken.Background(lipgloss.Color("229")), // yellow
	game.RoleVerb:        styleToken.Background(lipgloss.Color("217")), // red
	game.RoleObject:      styleToken.Background(lipgloss.Color("153")), // blue
	game.RolePreposition: styleToken.Background(lipgloss.Color("157")), // green
	game.RoleAdverb:      styleToken.Background(lipgloss.Color("183")), // purple
	game.RoleAdjective:   styleToken.Background(lipgloss.Color("218")), // pink
	game.RoleOther:       styleToken.Background(lipgloss.Color("252")), // gray
}

func roleStyle(word string) lipgloss.Style {
	if s, ok := roleStyles[game.Classify(word)]; ok {
		return s
	}
	return roleStyles[game.RoleOther]
}

// wrapTokens lays rendered tokens out in lines no wider than width.
func wrapTokens(tokens []string, width int) string {
	var lines []string
	var line string
	for _, t := range tokens {
		if line == "" {
			line = t
			continue
		}
		if lipgloss.Width(line)+lipgloss.Width(wordSeparator)+lipgloss.Width(t) > width {
			lines = append(lines, line)
			line = t
			continue
		}
		line += wordSeparator + t
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
