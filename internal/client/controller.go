package client

import (
	"fmt"
	"strings"

	"tagvorto/internal/game"
)

// Phase is the client-side game state machine. Won and Lost are terminal.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseWon
	PhaseLost
)

// Controller owns the client's view of one day's game: the confirmed guess
// history (sourced from the server) and the uncommitted current input, which
// is never persisted. All transitions go through the event methods below;
// nothing else mutates this state.
type Controller struct {
	guesses      []game.Guess
	currentGuess string
	isGameOver   bool
	won          bool
	puzzleNumber int
}

// NewController returns a controller in the NotStarted phase.
func NewController() *Controller {
	return &Controller{}
}

// ApplyLoad replaces the confirmed history with the server's stored state.
// The uncommitted input is deliberately left alone: it only ever came from
// the local keyboard, never from storage.
func (c *Controller) ApplyLoad(guesses []game.Guess, isGameOver bool, puzzleNumber int) {
	c.guesses = guesses
	c.isGameOver = isGameOver
	c.puzzleNumber = puzzleNumber
	c.won = false
	for _, g := range guesses {
		if allCorrect(g.Feedback) {
			c.won = true
		}
	}
}

// TypeLetter appends a letter to the current input, ignoring input once the
// row is full or the game is over.
func (c *Controller) TypeLetter(r rune) {
	if c.isGameOver || len(c.currentGuess) >= game.WordLength {
		return
	}
	upper := strings.ToUpper(string(r))
	if upper < "A" || upper > "Z" || len(upper) != 1 {
		return
	}
	c.currentGuess += upper
}

// Backspace removes the last letter of the current input.
func (c *Controller) Backspace() {
	if len(c.currentGuess) > 0 {
		c.currentGuess = c.currentGuess[:len(c.currentGuess)-1]
	}
}

// ApplySubmitSuccess appends the confirmed guess and clears the input.
func (c *Controller) ApplySubmitSuccess(word string, feedback []game.Feedback, isCorrect, isGameOver bool) {
	c.guesses = append(c.guesses, game.Guess{Word: game.Normalize(word), Feedback: feedback})
	c.currentGuess = ""
	c.isGameOver = isGameOver
	if isCorrect {
		c.won = true
	}
}

// ApplySubmitFailure handles a rejected submission: the input is preserved so
// the user can correct it without retyping.
func (c *Controller) ApplySubmitFailure() {}

// CurrentGuess returns the uncommitted input.
func (c *Controller) CurrentGuess() string { return c.currentGuess }

// Guesses returns the confirmed history.
func (c *Controller) Guesses() []game.Guess { return c.guesses }

// PuzzleNumber returns the sequential identifier from the puzzle source.
func (c *Controller) PuzzleNumber() int { return c.puzzleNumber }

// IsGameOver reports whether the day's game has ended.
func (c *Controller) IsGameOver() bool { return c.isGameOver }

// Phase derives the state-machine phase from the confirmed history.
func (c *Controller) Phase() Phase {
	switch {
	case c.won:
		return PhaseWon
	case c.isGameOver:
		return PhaseLost
	case len(c.guesses) > 0:
		return PhaseInProgress
	default:
		return PhaseNotStarted
	}
}

// KeyboardStatus derives per-letter display status from the guess history.
// A letter is shown absent only if some occurrence was marked absent and no
// occurrence was ever present or correct; a letter that is misplaced in one
// guess and absent in another therefore stays yellow, not gray.
func (c *Controller) KeyboardStatus() map[rune]game.Feedback {
	status := make(map[rune]game.Feedback)
	for _, g := range c.guesses {
		for i, fb := range g.Feedback {
			letter := rune(g.Word[i])
			switch fb {
			case game.FeedbackCorrect:
				status[letter] = game.FeedbackCorrect
			case game.FeedbackPresent:
				if status[letter] != game.FeedbackCorrect {
					status[letter] = game.FeedbackPresent
				}
			case game.FeedbackAbsent:
				if _, seen := status[letter]; !seen {
					status[letter] = game.FeedbackAbsent
				}
			}
		}
	}
	return status
}

// Share glyphs, one per feedback value.
const (
	glyphCorrect = "\U0001F7E9" // green square
	glyphPresent = "\U0001F7E8" // yellow square
	glyphAbsent  = "⬜"     // white square
)

// ShareText renders the spoiler-free result summary: a title line with
// puzzle number and try count (X when lost), then one glyph row per guess.
func (c *Controller) ShareText(title string) string {
	count := "X"
	if c.won {
		count = fmt.Sprintf("%d", len(c.guesses))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d %s/%d\n", title, c.puzzleNumber, count, game.MaxGuesses)
	for _, g := range c.guesses {
		for _, fb := range g.Feedback {
			switch fb {
			case game.FeedbackCorrect:
				b.WriteString(glyphCorrect)
			case game.FeedbackPresent:
				b.WriteString(glyphPresent)
			default:
				b.WriteString(glyphAbsent)
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

func allCorrect(feedback []game.Feedback) bool {
	if len(feedback) != game.WordLength {
		return false
	}
	for _, fb := range feedback {
		if fb != game.FeedbackCorrect {
			return false
		}
	}
	return true
}
