package store

import (
	"context"

	"tagvorto/internal/game"
)

// Puzzle is the daily solution word plus its display metadata. At most one
// puzzle exists per date; once stored the solution never changes.
type Puzzle struct {
	Date            string `json:"date"`
	Solution        string `json:"solution"`
	PuzzleNumber    int    `json:"puzzleNumber"`
	DaysSinceLaunch int    `json:"daysSinceLaunch"`
}

// GameState is the persisted record of a user's progress on a date's puzzle,
// keyed by (UserID, Date).
type GameState struct {
	UserID     string       `json:"userId"`
	Date       string       `json:"date"`
	Guesses    []game.Guess `json:"guesses"`
	IsGameOver bool         `json:"isGameOver"`
}

// PuzzleStore persists daily puzzles. Lookups are explicit about absence.
type PuzzleStore interface {
	// GetPuzzle returns the puzzle for a date, with ok=false when none is
	// stored.
	GetPuzzle(ctx context.Context, date string) (Puzzle, bool, error)
	// InsertPuzzle stores a puzzle if none exists for its date and returns
	// the stored row. When a racing insert already created one, the existing
	// row wins and is returned unchanged.
	InsertPuzzle(ctx context.Context, p Puzzle) (Puzzle, error)
}

// GameStateStore persists per-(user, date) progress. Upsert replaces the
// full guess sequence; monotonicity is enforced by the submission service,
// not here.
type GameStateStore interface {
	GetState(ctx context.Context, userID, date string) (GameState, bool, error)
	UpsertState(ctx context.Context, gs GameState) error
}

// Store combines both stores behind one backend.
type Store interface {
	PuzzleStore
	GameStateStore
}
