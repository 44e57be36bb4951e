package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"tagvorto/internal/game"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case stateLoadedMsg:
		m.ctl.ApplyLoad(msg.state.Guesses, msg.state.IsGameOver, msg.state.PuzzleNumber)
		m.status = ""

	case submitDoneMsg:
		m.submitting = false
		m.ctl.ApplySubmitSuccess(msg.word, msg.result.Feedback, msg.result.IsCorrect, msg.result.IsGameOver)
		switch {
		case msg.result.IsCorrect:
			m.status = "You got it!"
		case msg.result.IsGameOver:
			m.status = "Out of guesses."
		default:
			m.status = ""
		}

	case errMsg:
		m.submitting = false
		m.ctl.ApplySubmitFailure()
		m.status = msg.err.Error()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyBackspace:
		m.ctl.Backspace()
		return m, nil

	case tea.KeyEnter:
		// Suppress further submits while one is in flight; the server's
		// precondition checks back this up.
		if m.submitting || m.ctl.IsGameOver() {
			return m, nil
		}
		word := m.ctl.CurrentGuess()
		if len(word) != game.WordLength {
			m.status = "word must be 5 letters"
			return m, nil
		}
		m.submitting = true
		m.status = ""
		return m, m.submitGuess(word)

	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if m.ctl.IsGameOver() && (r == 's' || r == 'S') {
				if err := clipboard.WriteAll(m.ctl.ShareText(m.title)); err != nil {
					m.status = "could not copy share text"
				} else {
					m.copied = true
					m.status = "result copied to clipboard"
				}
				continue
			}
			if r == 'q' && m.ctl.IsGameOver() {
				m.quitting = true
				return m, tea.Quit
			}
			m.ctl.TypeLetter(r)
		}
		return m, nil
	}

	return m, nil
}
