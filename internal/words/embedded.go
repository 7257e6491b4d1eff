package words

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/robalobadob/hangman/assets"
	"github.com/robalobadob/hangman/internal/daily"
	"github.com/robalobadob/hangman/internal/language"
)

// embeddedLists loads each language's list at most once.
var embeddedLists = func() map[language.Language]func() ([]string, error) {
	m := make(map[language.Language]func() ([]string, error))
	for _, l := range language.All() {
		code := l.Attributes().Code
		m[l] = sync.OnceValues(func() ([]string, error) { return loadList(code) })
	}
	return m
}()

func loadList(code string) ([]string, error) {
	raw, err := assets.WordList(code)
	if err != nil {
		return nil, fmt.Errorf("load %s word list: %w", code, err)
	}
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if w = Normalize(w); w != "" {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", code, ErrEmptyList)
	}
	return out, nil
}

// List returns the embedded words for lang.
func List(lang language.Language) ([]string, error) {
	load, ok := embeddedLists[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(lang))
	}
	return load()
}

// Embedded picks a cryptographically random word from the compiled-in lists.
type Embedded struct{}

// NewEmbedded returns an offline Source.
func NewEmbedded() Embedded { return Embedded{} }

// FetchWord returns a random embedded word for lang.
func (Embedded) FetchWord(ctx context.Context, lang language.Language) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	list, err := List(lang)
	if err != nil {
		return "", err
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	if err != nil {
		return "", fmt.Errorf("pick word: %w", err)
	}
	return list[n.Int64()], nil
}

// Daily serves the same embedded word to everyone for a given UTC day.
type Daily struct {
	Salt string
	Now  func() time.Time
}

// NewDaily returns a Daily source keyed by salt.
func NewDaily(salt string) Daily {
	return Daily{Salt: salt, Now: time.Now}
}

// FetchWord returns today's word for lang.
func (d Daily) FetchWord(ctx context.Context, lang language.Language) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	list, err := List(lang)
	if err != nil {
		return "", err
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return list[daily.WordIndex(now(), d.Salt, lang.String(), len(list))], nil
}
