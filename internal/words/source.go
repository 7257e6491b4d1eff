// internal/words/source.go
//
// Word acquisition for the game engine.
// A Source returns one word for a language or an error; it never touches
// game state. Implementations in this package:
//   - Client:   remote word-list service over HTTP (production default).
//   - Embedded: random pick from the lists compiled into the binary.
//   - Daily:    deterministic word of the day from the embedded lists.
//   - Fallback: primary source with a secondary used on failure.
//
// Every returned word is trimmed and NFC-normalized so that letters typed
// from a language keyboard compare equal to the word's own letters.

package words

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/hangman/internal/language"
)

var (
	ErrBadEndpoint         = errors.New("words: bad endpoint")
	ErrBadStatus           = errors.New("words: unexpected status")
	ErrMalformedBody       = errors.New("words: response is not a list of strings")
	ErrEmptyList           = errors.New("words: empty word list")
	ErrEmptyWord           = errors.New("words: empty word")
	ErrUnsupportedLanguage = errors.New("words: unsupported language")
)

// Source fetches a single random word for a language.
type Source interface {
	FetchWord(ctx context.Context, lang language.Language) (string, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context, lang language.Language) (string, error)

// FetchWord calls f.
func (f SourceFunc) FetchWord(ctx context.Context, lang language.Language) (string, error) {
	return f(ctx, lang)
}

// Normalize trims surrounding space and composes the word to NFC.
func Normalize(w string) string {
	return norm.NFC.String(strings.TrimSpace(w))
}
