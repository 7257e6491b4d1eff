package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tk := NewTokens("secret", time.Hour)
	tok, exp, err := tk.Sign("abc")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	sid, err := tk.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "abc", sid)
}

func TestTokenRejects(t *testing.T) {
	tk := NewTokens("secret", time.Hour)
	good, _, err := tk.Sign("abc")
	require.NoError(t, err)

	expired := NewTokens("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Sign("abc")
	require.NoError(t, err)

	noSid, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name string
		tk   *Tokens
		tok  string
	}{
		{"wrong secret", NewTokens("other", time.Hour), good},
		{"expired", tk, old},
		{"no sid", tk, noSid},
		{"garbage", tk, "abc.def.ghi"},
		{"none alg", tk, "eyJhbGciOiJub25lIn0.eyJzaWQiOiJhYmMifQ."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.tk.Verify(tc.tok)
			assert.ErrorIs(t, err, ErrBadToken)
		})
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc", "abc"},
		{"bearer  abc ", "abc"},
		{"Basic abc", ""},
		{"", ""},
	}
	for _, tc := range tests {
		req := newRequestWithAuth(tc.header)
		assert.Equal(t, tc.want, bearerToken(req), tc.header)
	}
}

func newRequestWithAuth(h string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if h != "" {
		req.Header.Set("Authorization", h)
	}
	return req
}
