package store

import (
	"context"
	"sync"

	"tagvorto/internal/game"
)

// MemoryStore keeps puzzles and game states in-process. It backs tests and
// single-node development runs; it matches GormStore's semantics, including
// existing-wins puzzle inserts.
type MemoryStore struct {
	mu      sync.RWMutex
	puzzles map[string]Puzzle
	states  map[string]GameState // key: userID + "|" + date
}

// NewMemoryStore initializes an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		puzzles: make(map[string]Puzzle),
		states:  make(map[string]GameState),
	}
}

func (m *MemoryStore) GetPuzzle(_ context.Context, date string) (Puzzle, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.puzzles[date]
	return p, ok, nil
}

func (m *MemoryStore) InsertPuzzle(_ context.Context, p Puzzle) (Puzzle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.puzzles[p.Date]; ok {
		return existing, nil
	}
	p.Solution = game.Normalize(p.Solution)
	m.puzzles[p.Date] = p
	return p, nil
}

func (m *MemoryStore) GetState(_ context.Context, userID, date string) (GameState, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	gs, ok := m.states[stateKey(userID, date)]
	if !ok {
		return GameState{}, false, nil
	}
	return copyState(gs), true, nil
}

func (m *MemoryStore) UpsertState(_ context.Context, gs GameState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[stateKey(gs.UserID, gs.Date)] = copyState(gs)
	return nil
}

func stateKey(userID, date string) string {
	return userID + "|" + date
}

// copyState deep-copies the guess slice so callers cannot mutate stored rows.
func copyState(gs GameState) GameState {
	out := gs
	out.Guesses = make([]game.Guess, len(gs.Guesses))
	for i, g := range gs.Guesses {
		fb := make([]game.Feedback, len(g.Feedback))
		copy(fb, g.Feedback)
		out.Guesses[i] = game.Guess{Word: g.Word, Feedback: fb}
	}
	return out
}
