package ils

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

var (
	// ErrEmptyResponse is returned when a request succeeds with an empty body.
	ErrEmptyResponse = errors.New("ils: empty response")
	// ErrMalformedPayload is returned when a response body is not valid JSON
	// for the expected payload.
	ErrMalformedPayload = errors.New("ils: malformed payload")
)

// StatusError reports a non-2xx response, after retries when the status is
// retryable.
type StatusError struct {
	StatusCode int
	Attempts   int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("ils: %s: unexpected status code %d after %d attempt(s)", e.URL, e.StatusCode, e.Attempts)
}

const (
	DefaultFormat      = "json"
	DefaultMaxAttempts = 5
	DefaultTimeout     = 30 * time.Second
	defaultUserAgent   = "bibapi/1.0"
)

// Options configures a Client.
type Options struct {
	EndpointURL   string
	APIKey        string
	Format        string
	UserAgent     string
	Timeout       time.Duration
	RPS           float64
	MaxAttempts   int
	BackoffFactor time.Duration
}

type Client struct {
	endpointURL   string
	params        url.Values
	userAgent     string
	timeout       time.Duration
	limiter       *rate.Limiter
	maxAttempts   int
	backoffFactor time.Duration
	retryStatuses map[int]bool
	sleep         func(ctx context.Context, d time.Duration) error
}

func NewClient(opts Options) *Client {
	format := opts.Format
	if format == "" {
		format = DefaultFormat
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	limit := rate.Inf
	if opts.RPS > 0 {
		limit = rate.Limit(opts.RPS)
	}

	params := url.Values{}
	params.Set("apikey", opts.APIKey)
	params.Set("format", format)

	return &Client{
		endpointURL:   opts.EndpointURL,
		params:        params,
		userAgent:     userAgent,
		timeout:       timeout,
		limiter:       rate.NewLimiter(limit, 1),
		maxAttempts:   maxAttempts,
		backoffFactor: opts.BackoffFactor,
		retryStatuses: map[int]bool{
			http.StatusBadRequest:   true,
			http.StatusUnauthorized: true,
		},
		sleep: sleepContext,
	}
}

// Backoff returns the wait before the given retry (1 for the first retry).
// The first retry is immediate, later ones double: 0, f, 2f, 4f, 8f...
func (c *Client) Backoff(retry int) time.Duration {
	if retry <= 1 {
		return 0
	}
	return c.backoffFactor * time.Duration(1<<uint(retry-2))
}

// NewSession opens a session with its own connection pool. Close it when done.
func (c *Client) NewSession() *Session {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	return &Session{
		client:    c,
		transport: transport,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   c.timeout,
		},
	}
}

// Session issues requests one at a time over a private transport.
type Session struct {
	client     *Client
	transport  *http.Transport
	httpClient *http.Client
}

func (s *Session) Close() {
	s.transport.CloseIdleConnections()
}

// MemberList fetches the configured endpoint.
func (s *Session) MemberList(ctx context.Context) (*MemberList, error) {
	body, err := s.get(ctx, s.client.endpointURL)
	if err != nil {
		return nil, err
	}
	var list MemberList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("%w: member list: %v", ErrMalformedPayload, err)
	}
	return &list, nil
}

// Detail fetches the bib record behind a member link.
func (s *Session) Detail(ctx context.Context, link string) (*Detail, error) {
	body, err := s.get(ctx, link)
	if err != nil {
		return nil, err
	}
	var detail Detail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("%w: detail: %v", ErrMalformedPayload, err)
	}
	return &detail, nil
}

func (s *Session) get(ctx context.Context, rawURL string) ([]byte, error) {
	target, err := s.client.withParams(rawURL)
	if err != nil {
		return nil, err
	}

	var lastStatus int
	for attempt := 1; attempt <= s.client.maxAttempts; attempt++ {
		if attempt > 1 {
			if err := s.client.sleep(ctx, s.client.Backoff(attempt-1)); err != nil {
				return nil, err
			}
		}

		if err := s.client.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", s.client.userAgent)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("ils: get %s: %w", redactURL(target), err)
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			if readErr != nil {
				return nil, fmt.Errorf("ils: read %s: %w", redactURL(target), readErr)
			}
			if len(bytes.TrimSpace(body)) == 0 {
				return nil, ErrEmptyResponse
			}
			return body, nil
		}

		lastStatus = resp.StatusCode
		if !s.client.retryStatuses[resp.StatusCode] {
			return nil, &StatusError{StatusCode: resp.StatusCode, Attempts: attempt, URL: redactURL(target)}
		}
	}
	return nil, &StatusError{StatusCode: lastStatus, Attempts: s.client.maxAttempts, URL: redactURL(target)}
}

// withParams appends the session parameters (apikey, format) the URL does not
// already carry. The existing query is kept byte for byte.
func (c *Client) withParams(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("ils: parse url: %w", err)
	}
	present := queryKeys(u.RawQuery)
	extra := url.Values{}
	for key, values := range c.params {
		if present[key] {
			continue
		}
		extra[key] = values
	}
	if len(extra) == 0 {
		return u.String(), nil
	}
	switch {
	case u.RawQuery == "":
		u.RawQuery = extra.Encode()
	case strings.HasSuffix(u.RawQuery, "&"):
		u.RawQuery += extra.Encode()
	default:
		u.RawQuery += "&" + extra.Encode()
	}
	return u.String(), nil
}

// queryKeys lists the keys of a raw query. Unlike url.ParseQuery it keeps
// pairs containing ';'.
func queryKeys(rawQuery string) map[string]bool {
	keys := make(map[string]bool)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, _, _ := strings.Cut(pair, "=")
		if k, err := url.QueryUnescape(key); err == nil {
			key = k
		}
		keys[key] = true
	}
	return keys
}

func redactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	pairs := strings.Split(u.RawQuery, "&")
	for i, pair := range pairs {
		if key, _, _ := strings.Cut(pair, "="); key == "apikey" {
			pairs[i] = "apikey=***"
		}
	}
	u.RawQuery = strings.Join(pairs, "&")
	return u.String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
