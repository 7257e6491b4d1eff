// internal/httpserver/server.go
//
// HTTP server wiring for the hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/languages", POST /game/new, /daily/*.
//   - Session endpoints (token required): /game/{id}/*.
//   - Idle session eviction.
//
// Notes:
//   - Sessions outlive the request that created them; they run under the server's
//     base context and stop when it is cancelled or the store closes them.
//   - History writes are best effort: a failing database never fails a guess.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/history"
	"github.com/robalobadob/hangman/internal/i18n"
	"github.com/robalobadob/hangman/internal/language"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

const defaultOrigin = "http://localhost:5173"

// Options are the collaborators of a Server. Store, Source and Tokens are required.
type Options struct {
	Store            store.Store
	Source           words.Source // word source of regular games
	Daily            words.Source // word source of /daily games; nil disables /daily
	History          history.Recorder
	Translator       *i18n.Translator
	Tokens           *Tokens
	ClientOrigin     string
	MaxWrongAttempts int
	HandlerTimeout   time.Duration
	BaseContext      context.Context
}

// Server bundles router, session store, and history log.
type Server struct {
	r        *chi.Mux
	ctx      context.Context
	store    store.Store
	source   words.Source
	daily    words.Source
	history  history.Recorder
	tr       *i18n.Translator
	tokens   *Tokens
	maxWrong int
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		ctx:      opts.BaseContext,
		store:    opts.Store,
		source:   opts.Source,
		daily:    opts.Daily,
		history:  opts.History,
		tr:       opts.Translator,
		tokens:   opts.Tokens,
		maxWrong: opts.MaxWrongAttempts,
	}
	if s.ctx == nil {
		s.ctx = context.Background()
	}
	if s.history == nil {
		s.history = history.Nop{}
	}
	if s.tr == nil {
		s.tr = i18n.MustDefault()
	}
	if s.maxWrong <= 0 {
		s.maxWrong = game.DefaultMaxWrongAttempts
	}
	timeout := opts.HandlerTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	origin := opts.ClientOrigin
	if origin == "" {
		origin = defaultOrigin
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(timeout)) // bounds word fetches too
	s.r.Use(jsonContentType)
	s.r.Use(cors(origin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","/languages","POST /game/new","/game/{id}/*","/daily/*"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/languages", s.handleLanguages)

	s.mountGame()
	if s.daily != nil {
		s.mountDaily()
	}

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Handler exposes the router (used by tests and by main's http.Server).
func (s *Server) Handler() http.Handler { return s.r }

// Sweep evicts sessions idle for longer than maxIdle every interval, until ctx ends.
func (s *Server) Sweep(ctx context.Context, interval, maxIdle time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			if n := s.store.Evict(now, maxIdle); n > 0 {
				log.Info().Int("evicted", n).Int("active", s.store.Len()).Msg("idle sessions evicted")
			}
		}
	}
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables CORS for a single origin. Tokens travel in headers, so no credentials.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ languages ----------------------------------

type languageRes struct {
	Code     string   `json:"code"`
	Title    string   `json:"title"`
	Flag     string   `json:"flag"`
	Alphabet []string `json:"alphabet"`
	Default  bool     `json:"default,omitempty"`
}

func (s *Server) handleLanguages(w http.ResponseWriter, r *http.Request) {
	all := language.All()
	out := make([]languageRes, 0, len(all))
	for _, l := range all {
		alpha := l.Alphabet()
		letters := make([]string, len(alpha))
		for i, a := range alpha {
			letters[i] = string(a)
		}
		out = append(out, languageRes{
			Code:     l.String(),
			Title:    s.tr.Text(l, i18n.KeyTitle),
			Flag:     l.Flag(),
			Alphabet: letters,
			Default:  l == language.Default,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}
