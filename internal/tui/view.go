package tui

import (
	"fmt"
	"strings"

	"wordorder-go/internal/game"
)

const defaultWidth = 80

func (m model) View() string {
	switch m.screen {
	case screenImport:
		return m.viewImport()
	default:
		return m.viewBoard()
	}
}

func (m model) viewBoard() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("wordorder-go"))
	b.WriteString("\n\n")

	s := m.game.Session()
	r, ok := m.game.Round()
	if !ok {
		b.WriteString(styleSubtle.Render("No sentences loaded. Press i to import a file or r for the defaults."))
		b.WriteString("\n")
	} else {
		b.WriteString(styleLabel.Render(fmt.Sprintf("Sentence %d/%d", s.Index()+1, s.Len())))
		b.WriteString("\n\n")

		b.WriteString(styleLabel.Render("Scrambled words:"))
		b.WriteString("\n")
		b.WriteString(m.renderArea(r.Pool, game.AreaPool))
		b.WriteString("\n")

		b.WriteString(styleLabel.Render("Your sentence:"))
		b.WriteString("\n")
		b.WriteString(m.renderArea(r.Answer, game.AreaAnswer))
		b.WriteString("\n")

		if r.State == game.StateSolved {
			b.WriteString(styleCorrect.Render("Correct! " + r.Target))
			b.WriteString("\n")
			if s.Finished() {
				b.WriteString(styleCorrect.Render("You have completed every sentence."))
				b.WriteString("\n")
			}
		}
	}

	if m.notice != "" {
		b.WriteString("\n")
		if m.noticeErr {
			b.WriteString(styleError.Render(m.notice))
		} else {
			b.WriteString(styleInfo.Render(m.notice))
		}
		b.WriteString("\n")
	}

	if done := s.Completed(); len(done) > 0 {
		b.WriteString("\n")
		b.WriteString(styleLabel.Render(fmt.Sprintf("Completed (%d):", len(done))))
		b.WriteString("\n")
		for i, sentence := range done {
			b.WriteString(styleSubtle.Render(fmt.Sprintf("%3d. %s", i+1, sentence)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m model) renderArea(words []string, area game.Area) string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	// border and padding
	inner := max(width-4, 10)

	if len(words) == 0 {
		return styleArea.Width(inner).Render(styleSubtle.Render("(empty)"))
	}

	tokens := make([]string, len(words))
	for i, w := range words {
		label := w
		if label == "" {
			label = "␣"
		}
		tok := roleStyle(w).Render(label)
		if area == m.area && i == m.cursor {
			tok = styleCursor.Render("▸") + tok
		} else {
			tok = " " + tok
		}
		tokens[i] = tok
	}
	return styleArea.Width(inner).Render(wrapTokens(tokens, inner-2))
}

func (m model) viewImport() string {
	var b strings.Builder
	b.WriteString(styleHeader.Render("wordorder-go: Import sentences"))
	b.WriteString("\n\n")
	b.WriteString(styleSubtle.Render(`Pick a .json file of the form {"expressions": ["...", "..."]}`))
	b.WriteString("\n\n")
	b.WriteString(m.picker.View())
	b.WriteString("\n")
	if m.notice != "" && m.noticeErr {
		b.WriteString(styleError.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(styleSubtle.Render("enter: select | esc: back"))
	return b.String()
}
