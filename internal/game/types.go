// internal/game/types.go
//
// Core type definitions for the hangman engine.
// Defines:
//   - State:    per-round lifecycle (not_started → in_progress → won | lost).
//   - Round:    one attempt at one secret word.
//   - Session:  cross-round state (language, score).
//   - Snapshot: read-only view handed to the presentation layer.

package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/robalobadob/hangman/internal/language"
)

// State is the lifecycle stage of a Round.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateLost       State = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool { return s == StateWon || s == StateLost }

// Placeholder marks a letter that has not been guessed yet.
const Placeholder = "_"

// Round holds the state of one word.
// Letters in Guessed and Wrong are in canonical (upper) case.
type Round struct {
	ID       string            // Unique round identifier.
	Language language.Language // Language the word was fetched for.
	Word     string            // Secret word, NFC, original case.
	Guessed  map[rune]struct{} // Every accepted guess.
	Wrong    map[rune]struct{} // Accepted guesses absent from Word; subset of Guessed.
	MaxWrong int               // Wrong guesses that lose the round.
	State    State             // Lifecycle stage.
}

// Session is the state that survives from one round to the next.
type Session struct {
	Language language.Language `json:"language"`
	Score    int               `json:"score"`
}

// Snapshot is a JSON-ready copy of everything the UI needs.
// Word is only filled once the round is over.
type Snapshot struct {
	RoundID           string            `json:"roundId,omitempty"`
	Language          language.Language `json:"language"`
	RoundLanguage     language.Language `json:"roundLanguage,omitempty"`
	State             State             `json:"state"`
	DisplayWord       string            `json:"displayWord"`
	Length            int               `json:"length"`
	GuessedLetters    []string          `json:"guessedLetters"`
	WrongLetters      []string          `json:"wrongLetters"`
	RemainingAttempts int               `json:"remainingAttempts"`
	MaxWrongAttempts  int               `json:"maxWrongAttempts"`
	Score             int               `json:"score"`
	Alphabet          []string          `json:"alphabet"`
	Word              string            `json:"word,omitempty"`
	Fetching          bool              `json:"fetching"`
}

// canonical folds r to the single case used for every comparison.
// Lower-then-upper maps both ß and ẞ to ß.
func canonical(r rune) rune { return unicode.ToUpper(unicode.ToLower(r)) }

// Has reports whether the (case-insensitive) letter occurs in the word.
func (r Round) Has(letter rune) bool {
	c := canonical(letter)
	for _, w := range r.Word {
		if canonical(w) == c {
			return true
		}
	}
	return false
}

// Solved reports whether every letter of the word has been guessed.
// Characters that are not letters never need guessing.
func (r Round) Solved() bool {
	if r.Word == "" {
		return false
	}
	for _, w := range r.Word {
		if !unicode.IsLetter(w) {
			continue
		}
		if _, ok := r.Guessed[canonical(w)]; !ok {
			return false
		}
	}
	return true
}

// Exhausted reports whether the wrong-guess budget is spent.
func (r Round) Exhausted() bool { return len(r.Wrong) >= r.MaxWrong }

// Remaining is MaxWrong minus the wrong guesses so far.
func (r Round) Remaining() int { return r.MaxWrong - len(r.Wrong) }

// Length is the character count of the word.
func (r Round) Length() int { return utf8.RuneCountInString(r.Word) }

// Display renders the word with unguessed letters hidden, one position per
// character, separated by single spaces: "C _ T".
func (r Round) Display() string {
	parts := make([]string, 0, r.Length())
	for _, w := range r.Word {
		if !unicode.IsLetter(w) {
			parts = append(parts, string(w))
			continue
		}
		c := canonical(w)
		if _, ok := r.Guessed[c]; ok {
			parts = append(parts, string(c))
		} else {
			parts = append(parts, Placeholder)
		}
	}
	return strings.Join(parts, " ")
}

// clone deep-copies the letter sets.
func (r Round) clone() Round {
	out := r
	out.Guessed = copySet(r.Guessed)
	out.Wrong = copySet(r.Wrong)
	return out
}

func copySet(in map[rune]struct{}) map[rune]struct{} {
	out := make(map[rune]struct{}, len(in))
	for k := range in {
		out[k] = struct{}{}
	}
	return out
}
