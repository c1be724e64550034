// Package apiclient is the single outbound gateway to the remote booking API.
// Every call carries the bearer credential when one is held, and a 401 on any
// call clears the credential and forces the login view.
package apiclient

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

	"github.com/google/uuid"

	"github.com/flight-booking/flight-booking-client/internal/domain"
	"github.com/flight-booking/flight-booking-client/internal/infrastructure/logger"
)

// RequestIDHeader correlates outbound calls with the inbound view request.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of an error response is kept.
const maxErrorBody = 64 << 10

// Credentials supplies and revokes the bearer token.
type Credentials interface {
	Token() string
	Expire(ctx context.Context) error
}

// Redirector forces the login view. It must not navigate when the login
// view is already current.
type Redirector interface {
	ForceLogin() bool
}

// Client talks JSON to the remote API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	creds      Credentials
	redirector Redirector
	log        *logger.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a client for baseURL. Endpoint paths are resolved relative to
// it, so a trailing slash is added when missing.
func New(baseURL string, timeout time.Duration, creds Credentials, redirector Redirector, opts ...Option) (*Client, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("api base url %q must be absolute", baseURL)
	}
	if creds == nil || redirector == nil {
		return nil, errors.New("api client needs credentials and a redirector")
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		creds:      creds,
		redirector: redirector,
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithComponent("apiclient")
	return c, nil
}

// BaseURL returns the configured origin.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// do performs one call. Non-2xx responses become *domain.APIError; a 401
// additionally runs the credential interceptor before returning.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ref, err := url.Parse(path)
	if err != nil {
		return fmt.Errorf("%w: endpoint %q: %v", domain.ErrInvalidRequest, path, err)
	}
	endpoint := c.baseURL.ResolveReference(ref)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.creds.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	reqID := RequestIDFromContext(ctx)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	req.Header.Set(RequestIDHeader, reqID)

	log := c.log.WithRequestID(reqID)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Err(err).
			Str("method", method).
			Str("path", path).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Msg("api call failed")
		return domain.NewNetworkError(err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("api call")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return domain.NewNetworkError(fmt.Errorf("read %s %s: %w", method, path, err))
		}
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s: %w", method, path, err)
		}
		return nil
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	apiErr := domain.NewAPIError(resp.StatusCode, parseDetail(data), data)

	if resp.StatusCode == http.StatusUnauthorized {
		c.interceptUnauthorized(ctx, log)
	}

	log.Warn().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("detail", apiErr.Detail).
		Msg("api call rejected")
	return apiErr
}

// interceptUnauthorized clears the credential and forces the login view.
// It runs for every 401 regardless of which view issued the call.
func (c *Client) interceptUnauthorized(ctx context.Context, log *logger.Logger) {
	if err := c.creds.Expire(context.WithoutCancel(ctx)); err != nil {
		log.Error().Err(err).Msg("failed to clear rejected credential")
	}
	if c.redirector.ForceLogin() {
		log.Info().Msg("redirected to login")
	}
}

// parseDetail extracts the server message: "detail", then "error", then
// "message". Non-string values are rendered as JSON.
func parseDetail(body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "error", "message"} {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s != "" {
				return s
			}
			continue
		}
		if v := strings.TrimSpace(string(raw)); v != "" && v != "null" {
			return v
		}
	}
	return ""
}

type requestIDKey struct{}

// WithRequestID attaches the id propagated on outbound calls.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the id set by WithRequestID.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
