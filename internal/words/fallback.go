package words

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/language"
)

// Fallback asks Primary first and Secondary only when Primary fails.
// If both fail the Primary error is returned.
type Fallback struct {
	Primary   Source
	Secondary Source
}

// FetchWord implements Source.
func (f Fallback) FetchWord(ctx context.Context, lang language.Language) (string, error) {
	w, err := f.Primary.FetchWord(ctx, lang)
	if err == nil {
		return w, nil
	}
	if f.Secondary == nil || ctx.Err() != nil {
		return "", err
	}
	log.Warn().Err(err).Str("language", lang.String()).Msg("primary word source failed, using fallback")
	w, ferr := f.Secondary.FetchWord(ctx, lang)
	if ferr != nil {
		log.Warn().Err(ferr).Str("language", lang.String()).Msg("fallback word source failed")
		return "", err
	}
	return w, nil
}
