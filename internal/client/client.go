// Package client talks to the persistence API on behalf of the extraction
// pipeline. It validates payloads against the shared JSON schema before
// sending and surfaces uniform, short failure messages suitable for the
// tracking button UI. It never retries: the cooldown layer above decides
// when a resubmission is allowed.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jordan/job-tracker/internal/types"
	"github.com/jordan/job-tracker/schemas"
)

// DefaultTimeout bounds a single submission round-trip.
const DefaultTimeout = 15 * time.Second

// Options configures a Client.
type Options struct {
	// BaseURL is the persistence API root, e.g. "https://api.example.com".
	BaseURL string

	// Token is the bearer token obtained from Login. May be empty for
	// unauthenticated endpoints (Health, Login).
	Token string

	// HTTPClient overrides the default client (used by tests).
	HTTPClient *http.Client

	// Verbose enables debug logging of request outcomes.
	Verbose bool

	// Now overrides the clock for token expiry checks (used by tests).
	Now func() time.Time
}

// Client submits extracted postings and application events to the
// persistence API. It satisfies tracking.Submitter.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	verbose bool
	now     func() time.Time
}

// New creates a Client. BaseURL must be non-empty; a trailing slash is
// stripped so endpoint paths can be joined naively.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("client: base URL is required")
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		token:   opts.Token,
		http:    httpClient,
		verbose: opts.Verbose,
		now:     now,
	}, nil
}

// SetToken replaces the bearer token, e.g. after a fresh Login.
func (c *Client) SetToken(token string) {
	c.token = token
}

// SubmitJobPosting validates the posting against the shared schema and
// POSTs it to the persistence API. A nil error means the posting was
// accepted; any failure is returned as one of the package error types
// with a short human-readable message.
func (c *Client) SubmitJobPosting(ctx context.Context, posting *types.JobPosting) error {
	if posting == nil {
		return fmt.Errorf("client: posting is nil")
	}
	if err := c.checkToken(); err != nil {
		return err
	}

	payload, err := json.Marshal(posting)
	if err != nil {
		return fmt.Errorf("client: encode posting: %w", err)
	}
	if err := schemas.ValidateJobPosting(payload); err != nil {
		if c.verbose {
			log.Printf("[CLIENT] schema validation failed: %v", err)
		}
		return &SubmitError{Message: "extracted data is incomplete", cause: err}
	}

	resp, err := c.do(ctx, http.MethodPost, "/api/job-postings", payload)
	if err != nil {
		return &SubmitError{Message: "could not reach the tracker service", cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		if c.verbose {
			log.Printf("[CLIENT] posting accepted: %s @ %s", posting.Title, posting.CompanyName)
		}
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusConflict:
		return ErrDuplicate
	default:
		return &SubmitError{
			Message: "tracking failed",
			cause:   fmt.Errorf("unexpected status %d: %s", resp.StatusCode, readErrorBody(resp.Body)),
		}
	}
}

// Login exchanges credentials for a bearer token and installs it on the
// client. The token is also returned so callers can persist it.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", fmt.Errorf("client: encode credentials: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return "", fmt.Errorf("client: login request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("client: login failed with status %d: %s", resp.StatusCode, readErrorBody(resp.Body))
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("client: decode login response: %w", err)
	}
	if body.Token == "" {
		return "", fmt.Errorf("client: login response missing token")
	}
	c.token = body.Token
	return body.Token, nil
}

// Health pings the API health endpoint.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return fmt.Errorf("client: health check: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("client: health check returned status %d", resp.StatusCode)
	}
	return nil
}

// checkToken rejects requests locally when the bearer token is missing or
// already expired, so the user sees "log in again" instead of a generic
// server error. The signature is NOT verified here; only the exp claim is
// inspected.
func (c *Client) checkToken() error {
	if c.token == "" {
		return ErrNoToken
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(c.token, claims); err != nil {
		return ErrTokenExpired
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		// No exp claim: let the server decide.
		return nil
	}
	if c.now().After(exp.Time) {
		return ErrTokenExpired
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.http.Do(req)
}

// readErrorBody extracts a short snippet of an error response for logging.
func readErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
