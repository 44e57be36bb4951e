package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tagvorto/internal/client"
	"tagvorto/internal/game"
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %s", m.title, m.date)))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderKeyboard())

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.helpLine()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) renderGrid() string {
	var rows []string
	guesses := m.ctl.Guesses()

	for _, g := range guesses {
		var cells []string
		for i, fb := range g.Feedback {
			letter := string(g.Word[i])
			switch fb {
			case game.FeedbackCorrect:
				cells = append(cells, correctStyle.Render(letter))
			case game.FeedbackPresent:
				cells = append(cells, presentStyle.Render(letter))
			default:
				cells = append(cells, absentStyle.Render(letter))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	// Row being typed, unless the game ended.
	if !m.ctl.IsGameOver() && len(guesses) < game.MaxGuesses {
		current := m.ctl.CurrentGuess()
		var cells []string
		for i := 0; i < game.WordLength; i++ {
			if i < len(current) {
				cells = append(cells, inputCellStyle.Render(string(current[i])))
			} else {
				cells = append(cells, emptyCellStyle.Render("_"))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	for len(rows) < game.MaxGuesses {
		var cells []string
		for i := 0; i < game.WordLength; i++ {
			cells = append(cells, emptyCellStyle.Render("·"))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderKeyboard() string {
	status := m.ctl.KeyboardStatus()
	var rows []string
	for _, rowLetters := range keyboardRows {
		var keys []string
		for _, r := range rowLetters {
			letter := string(r)
			switch status[r] {
			case game.FeedbackCorrect:
				keys = append(keys, correctStyle.Render(letter))
			case game.FeedbackPresent:
				keys = append(keys, presentStyle.Render(letter))
			case game.FeedbackAbsent:
				keys = append(keys, absentStyle.Render(letter))
			default:
				keys = append(keys, keyStyle.Render(letter))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m Model) helpLine() string {
	switch {
	case m.submitting:
		return "checking..."
	case m.ctl.Phase() == client.PhaseWon, m.ctl.Phase() == client.PhaseLost:
		if m.copied {
			return "q quit"
		}
		return "s copy share text · q quit"
	default:
		return "type letters · enter submit · esc quit"
	}
}
