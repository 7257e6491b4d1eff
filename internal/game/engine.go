// internal/game/engine.go
//
// Authoritative state machine for one player's hangman session.
// Responsibilities:
//   - Acquire words through a words.Source and start rounds from them.
//   - Validate and apply single-letter guesses (case-insensitive).
//   - Track round transitions: in_progress → won/lost, terminal until replaced.
//   - Accumulate the session score (word length per win; zero on reset).
//
// Notes:
//   - The engine is not safe for concurrent use. One owner (see package session)
//     must serialize every call.
//   - A word fetch is split in three steps so the owner can run the network call
//     elsewhere and apply the result on its own goroutine:
//     BeginFetch (owner) → Fetch (any goroutine) → CompleteFetch (owner).
//   - A failed fetch leaves the current round and the score untouched. ResetGame is
//     the exception: the score is zeroed before the fetch and stays zero on failure.

package game

import (
	"context"
	"errors"
	"sort"
	"unicode"

	"github.com/google/uuid"

	"github.com/robalobadob/hangman/internal/language"
	"github.com/robalobadob/hangman/internal/words"
)

// DefaultMaxWrongAttempts is the wrong-guess budget of a round.
const DefaultMaxWrongAttempts = 6

var (
	ErrFetchInProgress = errors.New("game: word fetch already in progress")
	ErrNoFetch         = errors.New("game: no word fetch outstanding")
	ErrEmptyWord       = errors.New("game: fetched word has no letters")
)

// Engine owns the current Round and the Session.
type Engine struct {
	source   words.Source
	lang     language.Language
	score    int
	maxWrong int
	round    Round
	fetching bool
	newID    func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithMaxWrongAttempts sets the per-round wrong-guess budget. n <= 0 is ignored.
func WithMaxWrongAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxWrong = n
		}
	}
}

// WithLanguage sets the initial session language. Invalid values are ignored.
func WithLanguage(l language.Language) Option {
	return func(e *Engine) {
		if l.Valid() {
			e.lang = l
		}
	}
}

// New constructs an engine with no round started.
func New(src words.Source, opts ...Option) *Engine {
	e := &Engine{
		source:   src,
		lang:     language.Default,
		maxWrong: DefaultMaxWrongAttempts,
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(e)
	}
	e.round = Round{MaxWrong: e.maxWrong, State: StateNotStarted}
	return e
}

// SetLanguage changes the language used for the next fetched word.
// The word of a round already in play is not affected.
func (e *Engine) SetLanguage(l language.Language) error {
	if !l.Valid() {
		return language.ErrUnknown
	}
	e.lang = l
	return nil
}

// Ticket describes one outstanding word fetch.
type Ticket struct {
	Language language.Language
	Reset    bool
}

// BeginFetch reserves the single fetch slot and captures the language to fetch for.
// With reset set the score is zeroed now, before the fetch runs.
func (e *Engine) BeginFetch(reset bool) (Ticket, error) {
	if e.fetching {
		return Ticket{}, ErrFetchInProgress
	}
	e.fetching = true
	if reset {
		e.score = 0
	}
	return Ticket{Language: e.lang, Reset: reset}, nil
}

// Fetch asks the source for a word. It reads no mutable engine state and may
// run on any goroutine.
func (e *Engine) Fetch(ctx context.Context, t Ticket) (string, error) {
	return e.source.FetchWord(ctx, t.Language)
}

// CompleteFetch releases the fetch slot and, when err is nil, starts a round
// with word for language l.
func (e *Engine) CompleteFetch(t Ticket, word string, err error) error {
	if !e.fetching {
		return ErrNoFetch
	}
	e.fetching = false
	if err != nil {
		return err
	}
	return e.startRound(t.Language, word)
}

// RequestNewWord fetches a word for the current language and starts a round.
// This is the only way a Round is created.
func (e *Engine) RequestNewWord(ctx context.Context) error {
	return e.fetchAndStart(ctx, false)
}

// NextWord moves on to a new word, keeping the score.
func (e *Engine) NextWord(ctx context.Context) error {
	return e.RequestNewWord(ctx)
}

// ResetGame zeroes the score and fetches a new word.
func (e *Engine) ResetGame(ctx context.Context) error {
	return e.fetchAndStart(ctx, true)
}

func (e *Engine) fetchAndStart(ctx context.Context, reset bool) error {
	t, err := e.BeginFetch(reset)
	if err != nil {
		return err
	}
	word, err := e.Fetch(ctx, t)
	return e.CompleteFetch(t, word, err)
}

// startRound replaces the current round. Words without any letter are refused.
func (e *Engine) startRound(l language.Language, word string) error {
	w := words.Normalize(word)
	if !hasLetter(w) {
		return ErrEmptyWord
	}
	e.round = Round{
		ID:       e.newID(),
		Language: l,
		Word:     w,
		Guessed:  make(map[rune]struct{}),
		Wrong:    make(map[rune]struct{}),
		MaxWrong: e.maxWrong,
		State:    StateInProgress,
	}
	return nil
}

// GuessLetter applies one guess and reports whether it was accepted.
// A guess is refused, without side effects, when the round is not in progress,
// the rune is not a letter, or the letter was already guessed in either case.
func (e *Engine) GuessLetter(letter rune) bool {
	r := &e.round
	if r.State != StateInProgress || !unicode.IsLetter(letter) {
		return false
	}
	c := canonical(letter)
	if _, dup := r.Guessed[c]; dup {
		return false
	}

	r.Guessed[c] = struct{}{}
	if !r.Has(c) {
		r.Wrong[c] = struct{}{}
	}

	switch {
	case r.Solved():
		r.State = StateWon
		e.score += r.Length()
	case r.Exhausted():
		r.State = StateLost
	}
	return true
}

// DisplayWord is the masked word, e.g. "C _ T". Empty before the first round.
func (e *Engine) DisplayWord() string { return e.round.Display() }

// RemainingAttempts is maxWrongAttempts minus the wrong guesses.
func (e *Engine) RemainingAttempts() int { return e.round.Remaining() }

// IsWon reports whether every letter of the word has been guessed.
func (e *Engine) IsWon() bool { return e.round.State != StateNotStarted && e.round.Solved() }

// IsLost reports whether the wrong-guess budget is spent.
func (e *Engine) IsLost() bool { return e.round.State != StateNotStarted && e.round.Exhausted() }

// State is the lifecycle stage of the current round.
func (e *Engine) State() State { return e.round.State }

// Score is the accumulated session score.
func (e *Engine) Score() int { return e.score }

// Language is the session language.
func (e *Engine) Language() language.Language { return e.lang }

// Alphabet is the keyboard of the session language.
func (e *Engine) Alphabet() []rune { return e.lang.Alphabet() }

// Fetching reports whether a fetch slot is reserved.
func (e *Engine) Fetching() bool { return e.fetching }

// Session returns the cross-round state.
func (e *Engine) Session() Session { return Session{Language: e.lang, Score: e.score} }

// Round returns a deep copy of the current round.
func (e *Engine) Round() Round { return e.round.clone() }

// WrongLetters lists wrong guesses in keyboard order.
func (e *Engine) WrongLetters() []rune { return e.sorted(e.round.Wrong) }

// GuessedLetters lists every accepted guess in keyboard order.
func (e *Engine) GuessedLetters() []rune { return e.sorted(e.round.Guessed) }

// sorted orders letters by their position in the round's alphabet; letters
// outside the alphabet follow, by code point.
func (e *Engine) sorted(set map[rune]struct{}) []rune {
	lang := e.round.Language
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := lang.Index(out[i]), lang.Index(out[j])
		switch {
		case a >= 0 && b >= 0:
			return a < b
		case a >= 0:
			return true
		case b >= 0:
			return false
		}
		return out[i] < out[j]
	})
	return out
}

// Snapshot builds the presentation view of the engine.
func (e *Engine) Snapshot() Snapshot {
	r := e.round
	s := Snapshot{
		RoundID:           r.ID,
		Language:          e.lang,
		RoundLanguage:     r.Language,
		State:             r.State,
		DisplayWord:       r.Display(),
		Length:            r.Length(),
		GuessedLetters:    runeStrings(e.GuessedLetters()),
		WrongLetters:      runeStrings(e.WrongLetters()),
		RemainingAttempts: r.Remaining(),
		MaxWrongAttempts:  r.MaxWrong,
		Score:             e.score,
		Alphabet:          runeStrings(e.Alphabet()),
		Fetching:          e.fetching,
	}
	if r.State.Terminal() {
		s.Word = r.Word
	}
	return s
}

func runeStrings(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
