// Package i18n resolves presentation strings per game language.
//
// A Translator is built from an injected read-only Table and registers it in
// an x/text catalog, so positional arguments are formatted for the locale
// (e.g. 1,234 in English and 1.234 in German). Lookups fall back to English,
// then to the key itself. The game engine never uses this package.
package i18n

import (
	"fmt"

	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/robalobadob/hangman/internal/language"
)

// Table maps language → key → format string.
type Table map[language.Language]map[string]string

// Translator formats messages from a Table.
type Translator struct {
	table    Table
	printers map[language.Language]*message.Printer
}

// New validates table and registers every message.
func New(table Table) (*Translator, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.Default.Tag()))
	t := &Translator{
		table:    make(Table, len(table)),
		printers: make(map[language.Language]*message.Printer),
	}
	for lang, msgs := range table {
		if !lang.Valid() {
			return nil, fmt.Errorf("i18n: %w: %q", language.ErrUnknown, string(lang))
		}
		own := make(map[string]string, len(msgs))
		for key, msg := range msgs {
			if err := b.SetString(lang.Tag(), key, msg); err != nil {
				return nil, fmt.Errorf("i18n: register %s/%s: %w", lang, key, err)
			}
			own[key] = msg
		}
		t.table[lang] = own
	}
	for _, lang := range language.All() {
		t.printers[lang] = message.NewPrinter(lang.Tag(), message.Catalog(b))
	}
	return t, nil
}

// MustDefault builds a Translator over DefaultTable.
func MustDefault() *Translator {
	t, err := New(DefaultTable())
	if err != nil {
		panic(err)
	}
	return t
}

// Text returns the message for key without arguments.
func (t *Translator) Text(lang language.Language, key string) string {
	return t.Format(lang, key)
}

// Format returns the message for key with positional args applied.
func (t *Translator) Format(lang language.Language, key string, args ...any) string {
	p, ok := t.printers[lang]
	if !ok {
		lang = language.Default
		p = t.printers[lang]
	}
	if _, ok := t.table[lang][key]; ok {
		return p.Sprintf(key, args...)
	}
	if msg, ok := t.table[language.Default][key]; ok {
		return p.Sprintf(msg, args...)
	}
	return key
}

// Has reports whether lang defines key itself, without fallback.
func (t *Translator) Has(lang language.Language, key string) bool {
	_, ok := t.table[lang][key]
	return ok
}
