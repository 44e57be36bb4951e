package store

import (
	"context"
	"testing"

	"tagvorto/internal/game"
)

func TestMemoryStorePuzzleInsertIfAbsent(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if _, ok, err := m.GetPuzzle(ctx, "2026-08-30"); ok || err != nil {
		t.Fatalf("expected absent puzzle, ok=%v err=%v", ok, err)
	}

	first, err := m.InsertPuzzle(ctx, Puzzle{Date: "2026-08-30", Solution: "crane", PuzzleNumber: 101, DaysSinceLaunch: 1500})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if first.Solution != "CRANE" {
		t.Errorf("expected normalized solution, got %q", first.Solution)
	}

	// Racing insert loses: the existing row wins, no overwrite.
	second, err := m.InsertPuzzle(ctx, Puzzle{Date: "2026-08-30", Solution: "WRONG", PuzzleNumber: 999})
	if err != nil {
		t.Fatalf("conflicting insert: %v", err)
	}
	if second.Solution != "CRANE" || second.PuzzleNumber != 101 {
		t.Errorf("conflicting insert overwrote row: %+v", second)
	}

	p, ok, err := m.GetPuzzle(ctx, "2026-08-30")
	if err != nil || !ok {
		t.Fatalf("expected stored puzzle, ok=%v err=%v", ok, err)
	}
	if p.Solution != "CRANE" {
		t.Errorf("stored solution changed: %q", p.Solution)
	}
}

func TestMemoryStoreStateUpsert(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	if _, ok, err := m.GetState(ctx, "user-1", "2026-08-30"); ok || err != nil {
		t.Fatalf("expected absent state, ok=%v err=%v", ok, err)
	}

	guess := game.Guess{Word: "TRACE", Feedback: []game.Feedback{
		game.FeedbackAbsent, game.FeedbackCorrect, game.FeedbackCorrect, game.FeedbackPresent, game.FeedbackCorrect,
	}}
	if err := m.UpsertState(ctx, GameState{UserID: "user-1", Date: "2026-08-30", Guesses: []game.Guess{guess}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	gs, ok, err := m.GetState(ctx, "user-1", "2026-08-30")
	if err != nil || !ok {
		t.Fatalf("expected state, ok=%v err=%v", ok, err)
	}
	if len(gs.Guesses) != 1 || gs.Guesses[0].Word != "TRACE" {
		t.Errorf("unexpected state: %+v", gs)
	}

	// Patch in place with the full new sequence.
	gs.Guesses = append(gs.Guesses, game.Guess{Word: "CRANE", Feedback: []game.Feedback{
		game.FeedbackCorrect, game.FeedbackCorrect, game.FeedbackCorrect, game.FeedbackCorrect, game.FeedbackCorrect,
	}})
	gs.IsGameOver = true
	if err := m.UpsertState(ctx, gs); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	updated, _, _ := m.GetState(ctx, "user-1", "2026-08-30")
	if len(updated.Guesses) != 2 || !updated.IsGameOver {
		t.Errorf("patch failed: %+v", updated)
	}

	// Different users never share a record.
	if _, ok, _ := m.GetState(ctx, "user-2", "2026-08-30"); ok {
		t.Error("state leaked across users")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	original := GameState{UserID: "user-1", Date: "2026-08-30", Guesses: []game.Guess{
		{Word: "TRACE", Feedback: []game.Feedback{game.FeedbackAbsent, game.FeedbackCorrect, game.FeedbackCorrect, game.FeedbackPresent, game.FeedbackCorrect}},
	}}
	if err := m.UpsertState(ctx, original); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, _, _ := m.GetState(ctx, "user-1", "2026-08-30")
	got.Guesses[0].Word = "MUTAT"
	got.Guesses[0].Feedback[0] = game.FeedbackCorrect

	again, _, _ := m.GetState(ctx, "user-1", "2026-08-30")
	if again.Guesses[0].Word != "TRACE" || again.Guesses[0].Feedback[0] != game.FeedbackAbsent {
		t.Error("stored state was mutated through a returned copy")
	}
}
