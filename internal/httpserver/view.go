package httpserver

import (
	"strings"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/i18n"
	"github.com/robalobadob/hangman/internal/language"
)

// gameView is a snapshot plus the strings a client shows next to it,
// in the session's selected language.
type gameView struct {
	game.Snapshot
	Labels labels `json:"labels"`
}

type labels struct {
	Title             string `json:"title"`
	Back              string `json:"back"`
	Reset             string `json:"reset"`
	WrongGuesses      string `json:"wrongGuesses"`
	RemainingLetters  string `json:"remainingLetters"`
	RemainingAttempts string `json:"remainingAttempts"`
	Score             string `json:"score"`
	Status            string `json:"status,omitempty"`
	Popup             *popup `json:"popup,omitempty"`
}

type popup struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Button  string `json:"button"`
}

func (s *Server) view(snap game.Snapshot) gameView {
	l := snap.Language
	if !l.Valid() {
		l = language.Default
	}
	lb := labels{
		Title:             s.tr.Text(l, i18n.KeyTitle),
		Back:              s.tr.Text(l, i18n.KeyBack),
		Reset:             s.tr.Text(l, i18n.KeyReset),
		WrongGuesses:      s.tr.Text(l, i18n.KeyWrongGuesses),
		RemainingLetters:  s.tr.Text(l, i18n.KeyRemainingLetters),
		RemainingAttempts: s.tr.Format(l, i18n.KeyRemainingAttempts, snap.RemainingAttempts),
		Score:             s.tr.Format(l, i18n.KeyCurrentScore, snap.Score),
	}
	switch snap.State {
	case game.StateWon:
		lb.Status = s.tr.Text(l, i18n.KeyWinMessage)
		lb.Popup = &popup{
			Title:   s.tr.Text(l, i18n.KeyWinPopupTitle),
			Message: s.tr.Format(l, i18n.KeyWinPopupMessage, snap.Length, snap.Score),
			Button:  s.tr.Text(l, i18n.KeyNextWord),
		}
	case game.StateLost:
		lb.Status = s.tr.Text(l, i18n.KeyLoseMessage)
		lb.Popup = &popup{
			Title:   s.tr.Text(l, i18n.KeyLosePopupTitle),
			Message: s.tr.Format(l, i18n.KeyLosePopupMessage, strings.ToUpper(snap.Word), snap.Score),
			Button:  s.tr.Text(l, i18n.KeyNextWord),
		}
	}
	return gameView{Snapshot: snap, Labels: lb}
}

// fetchFailure is the body of a failed word request. The game is still usable.
type fetchFailure struct {
	Error string   `json:"error"`
	Alert popup    `json:"alert"`
	Game  gameView `json:"game"`
}

func (s *Server) failureBody(code string, snap game.Snapshot) fetchFailure {
	v := s.view(snap)
	l := snap.Language
	return fetchFailure{
		Error: code,
		Alert: popup{
			Title:   s.tr.Text(l, i18n.KeyFetchErrorTitle),
			Message: s.tr.Text(l, i18n.KeyFetchErrorMessage),
			Button:  s.tr.Text(l, i18n.KeyOK),
		},
		Game: v,
	}
}
