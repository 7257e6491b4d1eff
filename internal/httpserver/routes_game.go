// internal/httpserver/routes_game.go
//
// Game session routes.
//   - POST   /game/new           → create a session, fetch its first word, issue a token
//   - GET    /game/{id}          → current view
//   - POST   /game/{id}/guess    → guess one letter
//   - POST   /game/{id}/next     → next word, score kept
//   - POST   /game/{id}/reset    → score zeroed, next word
//   - PUT    /game/{id}/language → language of the next word
//   - GET    /game/{id}/history  → concluded rounds of this session
//   - DELETE /game/{id}          → end the session
//
// A failed word fetch is reported with 502 and the unchanged game, so the client
// can show the connection alert and retry /next.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/unicode/norm"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/history"
	"github.com/robalobadob/hangman/internal/language"
	"github.com/robalobadob/hangman/internal/session"
	"github.com/robalobadob/hangman/internal/words"
)

func (s *Server) mountGame() {
	s.r.Post("/game/new", func(w http.ResponseWriter, r *http.Request) {
		s.createGame(w, r, s.source)
	})
	s.r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireSession)
		r.Get("/", s.handleGet)
		r.Delete("/", s.handleDelete)
		r.Post("/guess", s.handleGuess)
		r.Post("/next", s.handleNext)
		r.Post("/reset", s.handleReset)
		r.Put("/language", s.handleLanguage)
		r.Get("/history", s.handleHistory)
	})
}

type languageReq struct {
	Language string `json:"language"`
}

type newGameRes struct {
	GameID    string    `json:"gameId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Game      gameView  `json:"game"`
	Error     string    `json:"error,omitempty"`
	Alert     *popup    `json:"alert,omitempty"`
}

// createGame starts a session on src. The body is optional; an empty language means the default.
func (s *Server) createGame(w http.ResponseWriter, r *http.Request, src words.Source) {
	var req languageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	lang := language.Default
	if req.Language != "" {
		l, err := language.Parse(req.Language)
		if err != nil {
			http.Error(w, `{"error":"unknown_language"}`, http.StatusBadRequest)
			return
		}
		lang = l
	}

	e := game.New(src, game.WithLanguage(lang), game.WithMaxWrongAttempts(s.maxWrong))
	sess := session.New(s.ctx, uuid.NewString(), e)
	if err := s.store.Save(r.Context(), sess); err != nil {
		sess.Close()
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	tok, exp, err := s.tokens.Sign(sess.ID)
	if err != nil {
		_ = s.store.Delete(r.Context(), sess.ID)
		log.Error().Err(err).Msg("sign session token")
		http.Error(w, `{"error":"sign_failed"}`, http.StatusInternalServerError)
		return
	}
	log.Info().Str("gameId", sess.ID).Str("lang", lang.String()).Msg("session created")

	res := newGameRes{GameID: sess.ID, Token: tok, ExpiresAt: exp}
	snap, err := sess.NextWord(r.Context())
	if err != nil {
		status, code := fetchStatus(r.Context(), err)
		if status != http.StatusBadGateway {
			// no token reaches the client, so nobody could use the session
			_ = s.store.Delete(context.WithoutCancel(r.Context()), sess.ID)
			s.sessionError(w, err)
			return
		}
		log.Warn().Err(err).Str("gameId", sess.ID).Msg("first word fetch failed")
		f := s.failureBody(code, snap)
		res.Game, res.Error, res.Alert = f.Game, f.Error, &f.Alert
		writeJSON(w, status, res)
		return
	}
	res.Game = s.view(snap)
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	snap, err := currentSession(r).Snapshot(r.Context())
	if err != nil {
		s.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"game": s.view(snap)})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := currentSession(r).ID
	if err := s.store.Delete(r.Context(), id); err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("delete session")
		http.Error(w, `{"error":"delete_failed"}`, http.StatusInternalServerError)
		return
	}
	_, _ = w.Write([]byte(`{"ok":true}`))
}

type guessReq struct {
	Letter string `json:"letter"`
}

type guessRes struct {
	Accepted bool     `json:"accepted"`
	Game     gameView `json:"game"`
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	sess := currentSession(r)

	letter, ok := singleLetter(req.Letter)
	if !ok {
		snap, err := sess.Snapshot(r.Context())
		if err != nil {
			s.sessionError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, guessRes{Accepted: false, Game: s.view(snap)})
		return
	}

	res, err := sess.Guess(r.Context(), letter)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	if res.Concluded != nil {
		s.recordRound(r.Context(), sess.ID, res.Concluded)
	}
	writeJSON(w, http.StatusOK, guessRes{Accepted: res.Accepted, Game: s.view(res.Snapshot)})
}

// singleLetter returns the only rune of s after NFC composition.
func singleLetter(s string) (rune, bool) {
	s = norm.NFC.String(s)
	if utf8.RuneCountInString(s) != 1 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, r != utf8.RuneError
}

func (s *Server) recordRound(ctx context.Context, sessionID string, out *session.Outcome) {
	rd := out.Round
	err := s.history.Record(ctx, history.Result{
		SessionID:    sessionID,
		RoundID:      rd.ID,
		Language:     rd.Language.String(),
		Word:         rd.Word,
		Outcome:      string(rd.State),
		WrongGuesses: len(rd.Wrong),
		Points:       out.Points,
		FinishedAt:   time.Now().UTC(),
	})
	if err != nil {
		log.Warn().Err(err).Str("gameId", sessionID).Str("round", rd.ID).Msg("record round")
	}
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	s.respondWord(w, r, sess.NextWord)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := currentSession(r)
	s.respondWord(w, r, sess.Reset)
}

func (s *Server) respondWord(w http.ResponseWriter, r *http.Request, request func(context.Context) (game.Snapshot, error)) {
	snap, err := request(r.Context())
	if err != nil {
		status, code := fetchStatus(r.Context(), err)
		if status == http.StatusInternalServerError {
			s.sessionError(w, err)
			return
		}
		log.Warn().Err(err).Str("gameId", currentSession(r).ID).Msg("word request failed")
		writeJSON(w, status, s.failureBody(code, snap))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"game": s.view(snap)})
}

func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	var req languageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	l, err := language.Parse(req.Language)
	if err != nil {
		http.Error(w, `{"error":"unknown_language"}`, http.StatusBadRequest)
		return
	}
	sess := currentSession(r)
	if err := sess.SetLanguage(r.Context(), l); err != nil {
		s.sessionError(w, err)
		return
	}
	snap, err := sess.Snapshot(r.Context())
	if err != nil {
		s.sessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"game": s.view(snap)})
}

type historyRes struct {
	Rounds  []history.Result `json:"rounds"`
	Summary history.Summary  `json:"summary"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			http.Error(w, `{"error":"bad_limit"}`, http.StatusBadRequest)
			return
		}
		limit = n
	}
	id := currentSession(r).ID
	rounds, err := s.history.Recent(r.Context(), id, limit)
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("list history")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	sum, err := s.history.Summary(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("gameId", id).Msg("summarize history")
		http.Error(w, `{"error":"db_error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, historyRes{Rounds: rounds, Summary: sum})
}

// fetchStatus maps a word request error to a status and error code.
// 500 means the error is not about the word itself: the session is gone or the
// request ctx ended. Timeouts inside the word source are fetch failures.
func fetchStatus(ctx context.Context, err error) (int, string) {
	switch {
	case errors.Is(err, game.ErrFetchInProgress):
		return http.StatusConflict, "fetch_in_progress"
	case errors.Is(err, session.ErrClosed), ctx.Err() != nil:
		return http.StatusInternalServerError, ""
	default:
		return http.StatusBadGateway, "fetch_failed"
	}
}

// sessionError reports a failure to reach the session goroutine.
func (s *Server) sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrClosed):
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		http.Error(w, `{"error":"timeout"}`, http.StatusGatewayTimeout)
	default:
		log.Error().Err(err).Msg("session request")
		http.Error(w, `{"error":"internal"}`, http.StatusInternalServerError)
	}
}
