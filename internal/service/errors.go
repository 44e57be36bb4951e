package service

import "errors"

// Submission failure taxonomy. Every message is user-presentable; handlers
// pick the HTTP status.
var (
	ErrUnauthenticated = errors.New("sign in to play")
	ErrInvalidGuess    = errors.New("word must be 5 letters")
	ErrWordNotAccepted = errors.New("word not recognised")
	ErrDuplicateGuess  = errors.New("word already guessed today")
	ErrInvalidDate     = errors.New("that puzzle is not available")
	ErrGameOver        = errors.New("game is already over")
	ErrMaxGuesses      = errors.New("no more guesses allowed")
	ErrUpstreamFetch   = errors.New("daily puzzle could not be fetched")
	ErrPersistence     = errors.New("could not load or save progress")
)
