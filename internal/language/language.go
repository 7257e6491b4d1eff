// internal/language/language.go
//
// Closed set of game languages and their per-variant attributes.
// Each Language maps to one Attributes bundle in a static table:
//   - Code:      short identifier used by the HTTP API ("en", "pt-br", ...).
//   - APIParam:  value of the word service's lang= parameter (empty for English,
//                which relies on the service default).
//   - Alphabet:  ordered keyboard letters, upper case, including diacritics.
//   - Flag:      asset name of the language flag (presentation only).
//   - Tag:       BCP 47 tag used for localized formatting.

package language

import (
	"errors"
	"strings"

	textlang "golang.org/x/text/language"
)

// Language identifies one supported game language.
type Language string

const (
	English      Language = "en"
	Spanish      Language = "es"
	Italian      Language = "it"
	German       Language = "de"
	French       Language = "fr"
	PortugueseBR Language = "pt-br"
)

// Default is the language a new session starts with.
const Default = English

// ErrUnknown is returned by Parse for codes outside the supported set.
var ErrUnknown = errors.New("unknown language")

// Attributes bundles everything associated with a Language.
type Attributes struct {
	Code     string
	APIParam string
	Alphabet []rune
	Flag     string
	Tag      textlang.Tag
}

const latin = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var order = []Language{English, Spanish, Italian, German, French, PortugueseBR}

var table = map[Language]Attributes{
	English: {
		Code:     "en",
		Alphabet: []rune(latin),
		Flag:     "flag_uk",
		Tag:      textlang.English,
	},
	Spanish: {
		Code:     "es",
		APIParam: "es",
		Alphabet: []rune("ABCDEFGHIJKLMNÑOPQRSTUVWXYZ"),
		Flag:     "flag_spain",
		Tag:      textlang.Spanish,
	},
	Italian: {
		Code:     "it",
		APIParam: "it",
		Alphabet: []rune(latin),
		Flag:     "flag_italy",
		Tag:      textlang.Italian,
	},
	German: {
		Code:     "de",
		APIParam: "de",
		Alphabet: []rune(latin + "ÄÖÜß"),
		Flag:     "flag_germany",
		Tag:      textlang.German,
	},
	French: {
		Code:     "fr",
		APIParam: "fr",
		Alphabet: []rune(latin + "ÀÂÆÇÉÈÊËÎÏÔŒÙÛÜŸ"),
		Flag:     "flag_france",
		Tag:      textlang.French,
	},
	PortugueseBR: {
		Code:     "pt-br",
		APIParam: "pt-br",
		Alphabet: []rune(latin + "ÁÀÂÃÇÉÊÍÓÔÕÚÜ"),
		Flag:     "flag_brazil",
		Tag:      textlang.BrazilianPortuguese,
	},
}

// All returns every supported language in display order.
func All() []Language {
	out := make([]Language, len(order))
	copy(out, order)
	return out
}

// Parse maps a code such as "pt-BR" or "es" to a Language.
func Parse(code string) (Language, error) {
	l := Language(strings.ToLower(strings.TrimSpace(code)))
	if !l.Valid() {
		return "", ErrUnknown
	}
	return l, nil
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	_, ok := table[l]
	return ok
}

// Attributes returns the attribute bundle for l.
// Unknown values yield the bundle of Default.
func (l Language) Attributes() Attributes {
	a, ok := table[l]
	if !ok {
		a = table[Default]
	}
	a.Alphabet = append([]rune(nil), a.Alphabet...)
	return a
}

// APIParam returns the word service parameter, or false for the base language.
func (l Language) APIParam() (string, bool) {
	p := table[l].APIParam
	return p, p != ""
}

// Alphabet returns a copy of the ordered keyboard letters.
func (l Language) Alphabet() []rune { return l.Attributes().Alphabet }

// Flag returns the flag asset identifier.
func (l Language) Flag() string { return l.Attributes().Flag }

// Tag returns the BCP 47 tag used for message formatting.
func (l Language) Tag() textlang.Tag { return l.Attributes().Tag }

func (l Language) String() string { return string(l) }

// Index returns the keyboard position of r in l's alphabet, or -1.
func (l Language) Index(r rune) int {
	for i, a := range table[l].Alphabet {
		if a == r {
			return i
		}
	}
	return -1
}
