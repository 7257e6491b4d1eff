package words

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/hangman/internal/language"
)

// wordServer answers every request with status and body, recording the last query.
func wordServer(t *testing.T, status int, body string) (*httptest.Server, *atomic.Value, *atomic.Int32) {
	t.Helper()
	var query atomic.Value
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		query.Store(r.URL.Query())
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &query, &hits
}

func newTestClient(base string) *Client {
	return NewClient(base, WithRetries(3), WithRetryInterval(time.Millisecond))
}

func TestClientLanguageParameter(t *testing.T) {
	for _, lang := range language.All() {
		t.Run(string(lang), func(t *testing.T) {
			srv, query, _ := wordServer(t, http.StatusOK, `["word"]`)
			_, err := newTestClient(srv.URL).FetchWord(context.Background(), lang)
			require.NoError(t, err)

			q := query.Load().(url.Values)
			param, present := lang.APIParam()
			if !present {
				assert.NotContains(t, q, "lang")
				return
			}
			assert.Equal(t, []string{param}, q["lang"])
		})
	}
}

func TestClientEndpoint(t *testing.T) {
	c := NewClient("https://example.test/word")

	got, err := c.Endpoint(language.English)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/word", got)

	got, err = c.Endpoint(language.PortugueseBR)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/word?lang=pt-br", got)

	_, err = c.Endpoint(language.Language("xx"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestClientUsesFirstWord(t *testing.T) {
	srv, _, _ := wordServer(t, http.StatusOK, `["  maçã ", "second"]`)
	w, err := newTestClient(srv.URL).FetchWord(context.Background(), language.PortugueseBR)
	require.NoError(t, err)
	assert.Equal(t, "maçã", w)
}

func TestClientNormalizesToNFC(t *testing.T) {
	srv, _, _ := wordServer(t, http.StatusOK, `["cafe\u0301"]`)
	w, err := newTestClient(srv.URL).FetchWord(context.Background(), language.French)
	require.NoError(t, err)
	assert.Equal(t, "caf\u00e9", w)
}

func TestClientFailures(t *testing.T) {
	cases := []struct {
		name     string
		status   int
		body     string
		want     error
		wantHits int32
	}{
		{"not found", http.StatusNotFound, `[]`, ErrBadStatus, 1},
		{"server error retried", http.StatusInternalServerError, ``, ErrBadStatus, 3},
		{"object body", http.StatusOK, `{"word":"x"}`, ErrMalformedBody, 1},
		{"numbers", http.StatusOK, `[1,2]`, ErrMalformedBody, 1},
		{"garbage", http.StatusOK, `not json`, ErrMalformedBody, 1},
		{"empty list", http.StatusOK, `[]`, ErrEmptyList, 1},
		{"null", http.StatusOK, `null`, ErrEmptyList, 1},
		{"blank word", http.StatusOK, `["   "]`, ErrEmptyWord, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _, hits := wordServer(t, tc.status, tc.body)
			w, err := newTestClient(srv.URL).FetchWord(context.Background(), language.English)
			assert.Empty(t, w)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.wantHits, hits.Load())
		})
	}
}

func TestClientRetriesTransientStatus(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`["ladder"]`))
	}))
	defer srv.Close()

	w, err := newTestClient(srv.URL).FetchWord(context.Background(), language.English)
	require.NoError(t, err)
	assert.Equal(t, "ladder", w)
	assert.Equal(t, int32(2), hits.Load())
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := NewClient(addr, WithRetries(1)).FetchWord(context.Background(), language.English)
	assert.Error(t, err)
}

func TestClientBadBaseURL(t *testing.T) {
	_, err := NewClient("::not a url").FetchWord(context.Background(), language.German)
	assert.ErrorIs(t, err, ErrBadEndpoint)
}
