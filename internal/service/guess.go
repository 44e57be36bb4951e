package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"tagvorto/internal/game"
	"tagvorto/internal/logger"
	"tagvorto/internal/puzzle"
	"tagvorto/internal/store"
)

// GuessService is the single authority for game-state transitions. Clients
// only render what it returns.
type GuessService struct {
	puzzles store.PuzzleStore
	states  store.GameStateStore
	source  puzzle.Source
	dict    *game.Dictionary

	allowPastDates bool
	now            func() time.Time
}

// Option configures a GuessService.
type Option func(*GuessService)

// WithDictionary enables accepted-word validation of guesses.
func WithDictionary(d *game.Dictionary) Option {
	return func(s *GuessService) { s.dict = d }
}

// WithAllowPastDates permits submissions for dates before today.
func WithAllowPastDates(allow bool) Option {
	return func(s *GuessService) { s.allowPastDates = allow }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *GuessService) { s.now = now }
}

// NewGuessService wires the submission service to its collaborators.
func NewGuessService(puzzles store.PuzzleStore, states store.GameStateStore, source puzzle.Source, opts ...Option) *GuessService {
	s := &GuessService{
		puzzles: puzzles,
		states:  states,
		source:  source,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitResult is the outcome of one accepted guess.
type SubmitResult struct {
	Feedback   []game.Feedback `json:"feedback"`
	IsCorrect  bool            `json:"isCorrect"`
	IsGameOver bool            `json:"isGameOver"`
}

// StateView is the client-facing read of a day's progress.
type StateView struct {
	Guesses         []game.Guess `json:"guesses"`
	IsGameOver      bool         `json:"isGameOver"`
	PuzzleNumber    int          `json:"puzzleNumber"`
	DaysSinceLaunch int          `json:"daysSinceLaunch"`
}

// Submit validates and applies one guess for (userID, date).
//
// Preconditions run in a fixed order, each a distinct rejection, and no state
// is written until all of them pass and evaluation has completed.
func (s *GuessService) Submit(ctx context.Context, userID, date, rawGuess string) (SubmitResult, error) {
	if userID == "" {
		return SubmitResult{}, ErrUnauthenticated
	}
	if err := s.checkDate(date); err != nil {
		return SubmitResult{}, err
	}

	guess := game.Normalize(rawGuess)
	if len(guess) != game.WordLength || !game.IsAlphabetic(guess) {
		logger.Warn("invalid guess length", "user", userID, "guess_len", len(guess))
		return SubmitResult{}, ErrInvalidGuess
	}
	if !s.dict.Accepts(guess) {
		return SubmitResult{}, ErrWordNotAccepted
	}

	p, err := s.resolvePuzzle(ctx, date)
	if err != nil {
		return SubmitResult{}, err
	}

	state, ok, err := s.states.GetState(ctx, userID, date)
	if err != nil {
		logger.Error("state read failed", "user", userID, "date", date, "err", err)
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !ok {
		state = store.GameState{UserID: userID, Date: date}
	}

	if len(state.Guesses) >= game.MaxGuesses {
		logger.Warn("guess after max guesses reached", "user", userID, "date", date)
		return SubmitResult{}, ErrMaxGuesses
	}
	if state.IsGameOver {
		logger.Warn("guess on completed game", "user", userID, "date", date)
		return SubmitResult{}, ErrGameOver
	}
	if slices.ContainsFunc(state.Guesses, func(g game.Guess) bool { return g.Word == guess }) {
		return SubmitResult{}, ErrDuplicateGuess
	}

	feedback, err := game.Evaluate(guess, p.Solution)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrInvalidGuess, err)
	}
	isCorrect := guess == game.Normalize(p.Solution)

	state.Guesses = append(state.Guesses, game.Guess{Word: guess, Feedback: feedback})
	state.IsGameOver = isCorrect || len(state.Guesses) >= game.MaxGuesses

	if err := s.states.UpsertState(ctx, state); err != nil {
		logger.Error("state write failed", "user", userID, "date", date, "err", err)
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	logger.Info("guess accepted",
		"user", userID, "date", date,
		"attempt", len(state.Guesses), "correct", isCorrect, "game_over", state.IsGameOver)

	return SubmitResult{
		Feedback:   feedback,
		IsCorrect:  isCorrect,
		IsGameOver: state.IsGameOver,
	}, nil
}

// State returns the stored progress for (userID, date). An empty date means
// today per the service clock. When no state exists but the puzzle is known
// (or fetchable for a playable date), it returns an empty view so the client
// can start rendering.
func (s *GuessService) State(ctx context.Context, userID, date string) (StateView, error) {
	if userID == "" {
		return StateView{}, ErrUnauthenticated
	}
	if date == "" {
		date = s.now().UTC().Format("2006-01-02")
	}
	if err := s.checkDate(date); err != nil {
		return StateView{}, err
	}

	state, hasState, err := s.states.GetState(ctx, userID, date)
	if err != nil {
		return StateView{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	p, hasPuzzle, err := s.puzzles.GetPuzzle(ctx, date)
	if err != nil {
		return StateView{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if !hasPuzzle {
		if !hasState {
			// First touch of the day: resolve so the view carries metadata.
			p, err = s.resolvePuzzle(ctx, date)
			if err != nil {
				return StateView{}, err
			}
		}
	}

	view := StateView{
		Guesses:         state.Guesses,
		IsGameOver:      state.IsGameOver,
		PuzzleNumber:    p.PuzzleNumber,
		DaysSinceLaunch: p.DaysSinceLaunch,
	}
	if view.Guesses == nil {
		view.Guesses = []game.Guess{}
	}
	return view, nil
}

// resolvePuzzle loads the stored puzzle for a date, fetching from the
// external source on miss. Racing resolutions may both fetch; the insert is
// existing-wins, so exactly one solution is ever stored per date.
func (s *GuessService) resolvePuzzle(ctx context.Context, date string) (store.Puzzle, error) {
	p, ok, err := s.puzzles.GetPuzzle(ctx, date)
	if err != nil {
		return store.Puzzle{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if ok {
		return p, nil
	}

	daily, err := s.source.FetchDaily(ctx, date)
	if err != nil {
		logger.Warn("puzzle fetch failed", "date", date, "err", err)
		return store.Puzzle{}, fmt.Errorf("%w: %v", ErrUpstreamFetch, err)
	}

	stored, err := s.puzzles.InsertPuzzle(ctx, store.Puzzle{
		Date:            date,
		Solution:        daily.Solution,
		PuzzleNumber:    daily.ID,
		DaysSinceLaunch: daily.DaysSinceLaunch,
	})
	if err != nil {
		return store.Puzzle{}, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	logger.Info("puzzle stored", "date", date, "number", stored.PuzzleNumber)
	return stored, nil
}

// checkDate validates the date format and restricts play to today (UTC), or
// to today-and-earlier when past dates are allowed. Future dates are always
// rejected so a client cannot fetch tomorrow's solution early. The server
// decides what "today" is.
func (s *GuessService) checkDate(date string) error {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ErrInvalidDate
	}
	day := d.Format("2006-01-02")
	today := s.now().UTC().Format("2006-01-02")
	if day == today {
		return nil
	}
	if s.allowPastDates && day < today {
		return nil
	}
	return ErrInvalidDate
}
