package words

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/language"
)

const (
	// DefaultBaseURL is the public random word service.
	DefaultBaseURL = "https://random-word-api.herokuapp.com/word"

	defaultTimeout = 5 * time.Second
	defaultRetries = 3
	maxBodyBytes   = 64 << 10
)

// Client fetches words from the remote word-list service.
//
// Wire contract: GET <base>[?lang=<param>] answering 200 with a JSON array
// of strings. Only the first element is used. English omits lang entirely.
type Client struct {
	baseURL  string
	http     *http.Client
	retries  uint
	interval time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout of the default *http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithRetries sets how many attempts are made for transient failures.
// Values below 1 mean a single attempt.
func WithRetries(n uint) Option {
	return func(c *Client) { c.retries = n }
}

// WithRetryInterval sets the initial backoff between attempts.
func WithRetryInterval(d time.Duration) Option {
	return func(c *Client) { c.interval = d }
}

// NewClient builds a Client for baseURL (DefaultBaseURL when empty).
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:  baseURL,
		http:     &http.Client{Timeout: defaultTimeout},
		retries:  defaultRetries,
		interval: 200 * time.Millisecond,
	}
	for _, o := range opts {
		o(c)
	}
	if c.retries < 1 {
		c.retries = 1
	}
	return c
}

// FetchWord requests one word for lang.
// Transport errors, 5xx and 429 are retried with exponential backoff; any other
// status, a body that is not a non-empty list of strings, or an empty first
// word fails immediately.
func (c *Client) FetchWord(ctx context.Context, lang language.Language) (string, error) {
	endpoint, err := c.Endpoint(lang)
	if err != nil {
		return "", err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.interval

	word, err := backoff.Retry(ctx,
		func() (string, error) { return c.fetchOnce(ctx, endpoint) },
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(c.retries),
		backoff.WithNotify(func(err error, wait time.Duration) {
			log.Debug().Err(err).Str("language", lang.String()).Dur("wait", wait).Msg("retrying word fetch")
		}),
	)
	if err != nil {
		return "", fmt.Errorf("fetch word (%s): %w", lang, err)
	}
	return word, nil
}

// Endpoint builds the request URL for lang.
func (c *Client) Endpoint(lang language.Language) (string, error) {
	if !lang.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, string(lang))
	}
	u, err := url.Parse(c.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrBadEndpoint, c.baseURL)
	}
	if p, ok := lang.APIParam(); ok {
		q := u.Query()
		q.Set("lang", p)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c *Client) fetchOnce(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", backoff.Permanent(fmt.Errorf("%w: %v", ErrBadEndpoint, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return "", err
		}
		return "", backoff.Permanent(err)
	}

	var list []string
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&list); err != nil {
		return "", backoff.Permanent(fmt.Errorf("%w: %v", ErrMalformedBody, err))
	}
	if len(list) == 0 {
		return "", backoff.Permanent(ErrEmptyList)
	}
	w := Normalize(list[0])
	if w == "" {
		return "", backoff.Permanent(ErrEmptyWord)
	}
	return w, nil
}
