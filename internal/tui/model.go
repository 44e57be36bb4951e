package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tagvorto/internal/client"
)

// Model drives the terminal game: a grid of confirmed guesses, the current
// input row, and a colored keyboard. All game decisions come from the server;
// the model only renders controller state.
type Model struct {
	ctl   *client.Controller
	api   *client.APIClient
	date  string
	title string

	submitting bool
	status     string
	copied     bool
	quitting   bool
	width      int
}

type stateLoadedMsg struct {
	state client.StateResponse
}

type submitDoneMsg struct {
	word   string
	result client.SubmitResponse
}

type errMsg struct {
	err error
}

// New builds the TUI model for one date.
func New(api *client.APIClient, date, title string) Model {
	return Model{
		ctl:   client.NewController(),
		api:   api,
		date:  date,
		title: title,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadState()
}

// loadState replays whatever the server currently holds for the date.
func (m Model) loadState() tea.Cmd {
	api, date := m.api, m.date
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		state, err := api.FetchState(ctx, date)
		if err != nil {
			return errMsg{err}
		}
		return stateLoadedMsg{state}
	}
}

func (m Model) submitGuess(word string) tea.Cmd {
	api, date := m.api, m.date
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		result, err := api.SubmitGuess(ctx, date, word)
		if err != nil {
			return errMsg{err}
		}
		return submitDoneMsg{word: word, result: result}
	}
}
