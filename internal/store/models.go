package store

import (
	"time"

	"gorm.io/datatypes"
)

// PuzzleModel is the puzzles table row. Date carries the unique key.
type PuzzleModel struct {
	ID              uint   `gorm:"primaryKey"`
	Date            string `gorm:"uniqueIndex;size:10;not null"`
	Solution        string `gorm:"size:8;not null"`
	PuzzleNumber    int    `gorm:"not null"`
	DaysSinceLaunch int    `gorm:"not null"`
	CreatedAt       time.Time
}

func (PuzzleModel) TableName() string { return "puzzles" }

// GameStateModel is the game_states table row, unique on (user_id, date).
// Guesses holds the ordered guess sequence as JSON.
type GameStateModel struct {
	ID         uint           `gorm:"primaryKey"`
	UserID     string         `gorm:"uniqueIndex:idx_user_date;size:128;not null"`
	Date       string         `gorm:"uniqueIndex:idx_user_date;size:10;not null"`
	Guesses    datatypes.JSON `gorm:"not null"`
	IsGameOver bool           `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (GameStateModel) TableName() string { return "game_states" }
