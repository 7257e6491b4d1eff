package words

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/language"
)

func TestEmbeddedReturnsListedWord(t *testing.T) {
	for _, lang := range language.All() {
		list, err := List(lang)
		require.NoError(t, err, lang)

		w, err := NewEmbedded().FetchWord(context.Background(), lang)
		require.NoError(t, err, lang)
		assert.Contains(t, list, w)
	}
}

func TestEmbeddedUnknownLanguage(t *testing.T) {
	_, err := NewEmbedded().FetchWord(context.Background(), language.Language("xx"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestEmbeddedHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEmbedded().FetchWord(ctx, language.English)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDailyIsStableWithinADay(t *testing.T) {
	day := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	d := Daily{Salt: "s", Now: func() time.Time { return day }}
	first, err := d.FetchWord(context.Background(), language.German)
	require.NoError(t, err)

	d.Now = func() time.Time { return day.Add(10 * time.Hour) }
	second, err := d.FetchWord(context.Background(), language.German)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFallback(t *testing.T) {
	errPrimary := errors.New("primary down")
	failing := SourceFunc(func(context.Context, language.Language) (string, error) { return "", errPrimary })
	fixed := func(w string) Source {
		return SourceFunc(func(context.Context, language.Language) (string, error) { return w, nil })
	}

	w, err := Fallback{Primary: fixed("one"), Secondary: fixed("two")}.FetchWord(context.Background(), language.English)
	require.NoError(t, err)
	assert.Equal(t, "one", w)

	w, err = Fallback{Primary: failing, Secondary: fixed("two")}.FetchWord(context.Background(), language.English)
	require.NoError(t, err)
	assert.Equal(t, "two", w)

	_, err = Fallback{Primary: failing, Secondary: failing}.FetchWord(context.Background(), language.English)
	assert.ErrorIs(t, err, errPrimary)

	_, err = Fallback{Primary: failing}.FetchWord(context.Background(), language.English)
	assert.ErrorIs(t, err, errPrimary)
}
