// internal/httpserver/routes_daily.go
//
// Daily challenge routes, mounted only when a daily word source is configured.
//   - GET  /daily     → today's date key (UTC)
//   - POST /daily/new → start a session whose words come from the daily source
//
// Everyone playing a language on the same UTC date gets the same word. The
// resulting session is an ordinary /game/{id} session.

package httpserver

import (
	"net/http"
	"time"

	"github.com/robalobadob/hangman/internal/daily"
)

func (s *Server) mountDaily() {
	s.r.Get("/daily", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"date": daily.DateKey(time.Now())})
	})
	s.r.Post("/daily/new", func(w http.ResponseWriter, r *http.Request) {
		s.createGame(w, r, s.daily)
	})
}
