package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"tagvorto/internal/game"
)

// GormStore implements Store using GORM + Postgres.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore opens the DB and runs auto-migrations.
func NewGormStore(dsn string) (*GormStore, error) {
	gormLog := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: gormLog})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := db.AutoMigrate(&PuzzleModel{}, &GameStateModel{}); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}
	return &GormStore{db: db}, nil
}

// GetPuzzle looks up the puzzle stored for a date.
func (s *GormStore) GetPuzzle(ctx context.Context, date string) (Puzzle, bool, error) {
	var row PuzzleModel
	err := s.db.WithContext(ctx).Where("date = ?", date).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Puzzle{}, false, nil
	}
	if err != nil {
		return Puzzle{}, false, fmt.Errorf("get puzzle: %w", err)
	}
	return puzzleFromModel(row), true, nil
}

// InsertPuzzle inserts a puzzle unless one already exists for the date.
// The conflict target is the date column, so the loser of a racing insert
// becomes a no-op and the reread returns the winner's row.
func (s *GormStore) InsertPuzzle(ctx context.Context, p Puzzle) (Puzzle, error) {
	row := PuzzleModel{
		Date:            p.Date,
		Solution:        game.Normalize(p.Solution),
		PuzzleNumber:    p.PuzzleNumber,
		DaysSinceLaunch: p.DaysSinceLaunch,
	}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoNothing: true,
		}).
		Create(&row).Error
	if err != nil {
		return Puzzle{}, fmt.Errorf("insert puzzle: %w", err)
	}

	var stored PuzzleModel
	if err := s.db.WithContext(ctx).Where("date = ?", p.Date).First(&stored).Error; err != nil {
		return Puzzle{}, fmt.Errorf("reread puzzle: %w", err)
	}
	return puzzleFromModel(stored), nil
}

// GetState looks up the game state for a (user, date) pair.
func (s *GormStore) GetState(ctx context.Context, userID, date string) (GameState, bool, error) {
	var row GameStateModel
	err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GameState{}, false, nil
	}
	if err != nil {
		return GameState{}, false, fmt.Errorf("get state: %w", err)
	}
	gs, err := stateFromModel(row)
	if err != nil {
		return GameState{}, false, err
	}
	return gs, true, nil
}

// UpsertState creates or replaces the stored guesses and game-over flag for
// a (user, date) pair.
func (s *GormStore) UpsertState(ctx context.Context, gs GameState) error {
	guesses, err := json.Marshal(gs.Guesses)
	if err != nil {
		return fmt.Errorf("marshal guesses: %w", err)
	}
	row := GameStateModel{
		UserID:     gs.UserID,
		Date:       gs.Date,
		Guesses:    guesses,
		IsGameOver: gs.IsGameOver,
	}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"guesses", "is_game_over", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert state: %w", err)
	}
	return nil
}

func puzzleFromModel(row PuzzleModel) Puzzle {
	return Puzzle{
		Date:            row.Date,
		Solution:        row.Solution,
		PuzzleNumber:    row.PuzzleNumber,
		DaysSinceLaunch: row.DaysSinceLaunch,
	}
}

func stateFromModel(row GameStateModel) (GameState, error) {
	var guesses []game.Guess
	if len(row.Guesses) > 0 {
		if err := json.Unmarshal(row.Guesses, &guesses); err != nil {
			return GameState{}, fmt.Errorf("unmarshal guesses: %w", err)
		}
	}
	return GameState{
		UserID:     row.UserID,
		Date:       row.Date,
		Guesses:    guesses,
		IsGameOver: row.IsGameOver,
	}, nil
}
