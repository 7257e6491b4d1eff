package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/language"
)

func TestDefaultTableCoversEveryLanguage(t *testing.T) {
	table := DefaultTable()
	english := table[language.English]
	for _, l := range language.All() {
		msgs, ok := table[l]
		require.True(t, ok, "missing %s", l)
		for key := range msgs {
			_, ok := english[key]
			assert.True(t, ok, "%s/%s has no English counterpart", l, key)
		}
	}
}

func TestFormat(t *testing.T) {
	tr := MustDefault()
	tests := []struct {
		lang language.Language
		key  string
		args []any
		want string
	}{
		{language.English, KeyRemainingAttempts, []any{5}, "Attempts left: 5"},
		{language.Spanish, KeyWinMessage, nil, "¡Has Ganado!"},
		{language.German, KeyCurrentScore, []any{7}, "Punktzahl: 7"},
		{language.PortugueseBR, KeyLosePopupMessage, []any{"CASA", 3}, "A palavra era: CASA\nSua pontuação: 3"},
		{language.Italian, KeyTitle, nil, "ITALIANO"},
		// not translated: English text
		{language.French, KeyFetchErrorTitle, nil, "Error"},
		// unknown key: the key itself
		{language.French, "nope", nil, "nope"},
	}
	for _, tc := range tests {
		t.Run(string(tc.lang)+"/"+tc.key, func(t *testing.T) {
			assert.Equal(t, tc.want, tr.Format(tc.lang, tc.key, tc.args...))
		})
	}
}

func TestUnknownLanguageUsesEnglish(t *testing.T) {
	tr := MustDefault()
	assert.Equal(t, "PLAY", tr.Text(language.Language("xx"), KeyPlay))
}

func TestHas(t *testing.T) {
	tr := MustDefault()
	assert.True(t, tr.Has(language.English, KeyFetchErrorMessage))
	assert.False(t, tr.Has(language.German, KeyFetchErrorMessage))
}

func TestNewRejectsUnknownLanguage(t *testing.T) {
	_, err := New(Table{language.Language("xx"): {"a": "b"}})
	assert.ErrorIs(t, err, language.ErrUnknown)
}

func TestTableIsCopied(t *testing.T) {
	table := Table{language.English: {"k": "v"}}
	tr, err := New(table)
	require.NoError(t, err)
	table[language.English]["k"] = "changed"
	assert.Equal(t, "v", tr.Text(language.English, "k"))
}
