package client

import (
	"strings"
	"testing"

	"tagvorto/internal/game"
)

func fb(values ...game.Feedback) []game.Feedback { return values }

const (
	c = game.FeedbackCorrect
	p = game.FeedbackPresent
	a = game.FeedbackAbsent
)

func TestControllerPhases(t *testing.T) {
	ctl := NewController()
	if ctl.Phase() != PhaseNotStarted {
		t.Errorf("fresh controller not in NotStarted: %v", ctl.Phase())
	}

	ctl.ApplySubmitSuccess("TRACE", fb(a, c, c, p, c), false, false)
	if ctl.Phase() != PhaseInProgress {
		t.Errorf("expected InProgress, got %v", ctl.Phase())
	}

	ctl.ApplySubmitSuccess("CRANE", fb(c, c, c, c, c), true, true)
	if ctl.Phase() != PhaseWon {
		t.Errorf("expected Won, got %v", ctl.Phase())
	}
}

func TestControllerLostPhase(t *testing.T) {
	ctl := NewController()
	for i := 0; i < game.MaxGuesses-1; i++ {
		ctl.ApplySubmitSuccess("WRONG", fb(a, a, a, a, a), false, false)
	}
	ctl.ApplySubmitSuccess("WRONG", fb(a, a, a, a, a), false, true)
	if ctl.Phase() != PhaseLost {
		t.Errorf("expected Lost after 6 wrong guesses, got %v", ctl.Phase())
	}
}

func TestControllerInput(t *testing.T) {
	ctl := NewController()
	for _, r := range "crane" {
		ctl.TypeLetter(r)
	}
	if ctl.CurrentGuess() != "CRANE" {
		t.Errorf("expected CRANE, got %q", ctl.CurrentGuess())
	}

	// Full row: further letters ignored.
	ctl.TypeLetter('x')
	if ctl.CurrentGuess() != "CRANE" {
		t.Errorf("overflow letter accepted: %q", ctl.CurrentGuess())
	}

	ctl.Backspace()
	if ctl.CurrentGuess() != "CRAN" {
		t.Errorf("backspace failed: %q", ctl.CurrentGuess())
	}

	// Non-letters ignored.
	ctl.TypeLetter('3')
	ctl.TypeLetter('-')
	if ctl.CurrentGuess() != "CRAN" {
		t.Errorf("non-letter accepted: %q", ctl.CurrentGuess())
	}
}

func TestControllerSubmitSuccessClearsInput(t *testing.T) {
	ctl := NewController()
	for _, r := range "trace" {
		ctl.TypeLetter(r)
	}
	ctl.ApplySubmitSuccess(ctl.CurrentGuess(), fb(a, c, c, p, c), false, false)
	if ctl.CurrentGuess() != "" {
		t.Errorf("input not cleared after success: %q", ctl.CurrentGuess())
	}
	if len(ctl.Guesses()) != 1 {
		t.Errorf("guess not appended: %d", len(ctl.Guesses()))
	}
}

func TestControllerSubmitFailurePreservesInput(t *testing.T) {
	ctl := NewController()
	for _, r := range "zzzzz" {
		ctl.TypeLetter(r)
	}
	ctl.ApplySubmitFailure()
	if ctl.CurrentGuess() != "ZZZZZ" {
		t.Errorf("input lost on failure: %q", ctl.CurrentGuess())
	}
}

func TestControllerLoadReplacesHistoryNotInput(t *testing.T) {
	ctl := NewController()
	ctl.TypeLetter('a')
	ctl.TypeLetter('b')

	ctl.ApplyLoad([]game.Guess{
		{Word: "TRACE", Feedback: fb(a, c, c, p, c)},
	}, false, 101)

	if len(ctl.Guesses()) != 1 || ctl.Guesses()[0].Word != "TRACE" {
		t.Errorf("history not replaced: %+v", ctl.Guesses())
	}
	if ctl.CurrentGuess() != "AB" {
		t.Errorf("load touched uncommitted input: %q", ctl.CurrentGuess())
	}
	if ctl.PuzzleNumber() != 101 {
		t.Errorf("puzzle number not loaded: %d", ctl.PuzzleNumber())
	}
}

func TestControllerLoadDetectsWin(t *testing.T) {
	ctl := NewController()
	ctl.ApplyLoad([]game.Guess{
		{Word: "TRACE", Feedback: fb(a, c, c, p, c)},
		{Word: "CRANE", Feedback: fb(c, c, c, c, c)},
	}, true, 101)
	if ctl.Phase() != PhaseWon {
		t.Errorf("replayed win not detected: %v", ctl.Phase())
	}

	ctl = NewController()
	ctl.ApplyLoad([]game.Guess{
		{Word: "WRONG", Feedback: fb(a, a, a, a, a)},
	}, true, 101)
	if ctl.Phase() != PhaseLost {
		t.Errorf("replayed loss not detected: %v", ctl.Phase())
	}
}

func TestKeyboardStatus(t *testing.T) {
	ctl := NewController()
	// ALLEY vs APPLE: A correct, first L present, second L absent, E present,
	// Y absent.
	ctl.ApplySubmitSuccess("ALLEY", fb(c, p, a, p, a), false, false)

	status := ctl.KeyboardStatus()
	if status['A'] != game.FeedbackCorrect {
		t.Errorf("A: got %v, want correct", status['A'])
	}
	// L was present in one position and absent in another: the present mark
	// wins, the key must not gray out.
	if status['L'] != game.FeedbackPresent {
		t.Errorf("L: got %v, want present", status['L'])
	}
	if status['Y'] != game.FeedbackAbsent {
		t.Errorf("Y: got %v, want absent", status['Y'])
	}
	if _, ok := status['Q']; ok {
		t.Error("unguessed letter has a status")
	}

	// A later guess never downgrades a letter's status.
	ctl.ApplySubmitSuccess("LEAPT", fb(p, p, p, p, a), false, false)
	status = ctl.KeyboardStatus()
	if status['A'] != game.FeedbackCorrect {
		t.Errorf("A downgraded: %v", status['A'])
	}
	if status['L'] != game.FeedbackPresent {
		t.Errorf("L lost present status: %v", status['L'])
	}
}

func TestKeyboardAbsentOnlyWhenNeverFound(t *testing.T) {
	// Solution APPLE. LULLS marks the first L present and the duplicate Ls
	// absent; the key must stay yellow, not gray.
	ctl := NewController()
	ctl.ApplySubmitSuccess("LULLS", fb(p, a, a, a, a), false, false)
	status := ctl.KeyboardStatus()
	if status['L'] != game.FeedbackPresent {
		t.Errorf("L: got %v, want present", status['L'])
	}
	for _, letter := range "US" {
		if status[letter] != game.FeedbackAbsent {
			t.Errorf("%c: got %v, want absent", letter, status[letter])
		}
	}

	// SMALL places an L: the key upgrades to correct even though the same
	// guess also marks its duplicate L absent.
	ctl.ApplySubmitSuccess("SMALL", fb(a, a, p, c, a), false, false)
	if st := ctl.KeyboardStatus()['L']; st != game.FeedbackCorrect {
		t.Errorf("L after placement: got %v, want correct", st)
	}
}

func TestShareTextWon(t *testing.T) {
	ctl := NewController()
	ctl.ApplyLoad(nil, false, 1501)
	ctl.ApplySubmitSuccess("TRACE", fb(a, c, c, p, c), false, false)
	ctl.ApplySubmitSuccess("CRANE", fb(c, c, c, c, c), true, true)

	text := ctl.ShareText("Tagvorto")
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), text)
	}
	if lines[0] != "Tagvorto 1501 2/6" {
		t.Errorf("header: %q", lines[0])
	}
	if lines[1] != "⬜🟩🟩🟨🟩" {
		t.Errorf("row 1: %q", lines[1])
	}
	if lines[2] != "🟩🟩🟩🟩🟩" {
		t.Errorf("row 2: %q", lines[2])
	}
}

func TestShareTextLost(t *testing.T) {
	ctl := NewController()
	ctl.ApplyLoad(nil, false, 1501)
	for i := 0; i < game.MaxGuesses; i++ {
		ctl.ApplySubmitSuccess("WRONG", fb(a, a, a, a, a), false, i == game.MaxGuesses-1)
	}

	text := ctl.ShareText("Tagvorto")
	header := strings.SplitN(text, "\n", 2)[0]
	if header != "Tagvorto 1501 X/6" {
		t.Errorf("header: %q", header)
	}
}
