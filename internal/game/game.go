package game

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
)

// Game configuration constants
const (
	MaxGuesses = 6 // Maximum number of guesses per game
	WordLength = 5 // Length of the word to guess
)

// Feedback classifies a single guessed letter against the solution.
type Feedback string

const (
	FeedbackCorrect Feedback = "correct"
	FeedbackPresent Feedback = "present"
	FeedbackAbsent  Feedback = "absent"
)

// Guess is one confirmed guess: the word (uppercase) and its per-letter
// feedback, aligned by position.
type Guess struct {
	Word     string     `json:"word"`
	Feedback []Feedback `json:"feedback"`
}

// Normalize trims and uppercases a guess string for comparison.
func Normalize(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// IsAlphabetic reports whether the word consists only of letters A-Z.
// Callers are expected to Normalize first.
func IsAlphabetic(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return false
		}
	}
	return len(word) > 0
}

// Evaluate compares a guess to the solution and returns per-letter feedback.
//
// Correct positions are scored first and reserve their letter occurrences in
// the solution. Remaining positions are scanned left to right: a letter is
// present only while unreserved occurrences of it remain, so earlier duplicate
// positions claim present status before later ones.
func Evaluate(guess, solution string) ([]Feedback, error) {
	g := Normalize(guess)
	s := Normalize(solution)
	if len(g) != WordLength || len(s) != WordLength {
		return nil, fmt.Errorf("evaluate: guess %q and solution must both be %d letters", guess, WordLength)
	}

	feedback := make([]Feedback, WordLength)
	remaining := make(map[byte]int, WordLength)

	for i := 0; i < WordLength; i++ {
		if g[i] == s[i] {
			feedback[i] = FeedbackCorrect
		} else {
			remaining[s[i]]++
		}
	}

	for i := 0; i < WordLength; i++ {
		if feedback[i] == FeedbackCorrect {
			continue
		}
		if remaining[g[i]] > 0 {
			feedback[i] = FeedbackPresent
			remaining[g[i]]--
		} else {
			feedback[i] = FeedbackAbsent
		}
	}

	return feedback, nil
}

// Dictionary is an optional accepted-word list. A nil or empty dictionary
// accepts every word.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary builds a dictionary from a word slice, uppercasing entries
// and dropping any that are not exactly WordLength letters.
func NewDictionary(words []string) *Dictionary {
	valid := lo.Filter(words, func(w string, _ int) bool {
		return len(strings.TrimSpace(w)) == WordLength
	})
	set := make(map[string]struct{}, len(valid))
	lo.ForEach(valid, func(w string, _ int) {
		set[Normalize(w)] = struct{}{}
	})
	return &Dictionary{words: set}
}

// LoadDictionary reads a JSON array of accepted words from disk.
func LoadDictionary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load dictionary: %w", err)
	}
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("parse dictionary: %w", err)
	}
	return NewDictionary(words), nil
}

// Accepts reports whether the word may be played. Words are checked in
// normalized form.
func (d *Dictionary) Accepts(word string) bool {
	if d == nil || len(d.words) == 0 {
		return true
	}
	_, ok := d.words[Normalize(word)]
	return ok
}

// Len returns the number of accepted words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.words)
}
