// Package api is the client of the remote commerce REST API.
//
// Endpoint methods never return Go errors: every failure is folded into a
// Result with Success set to false and a message fit for the user.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/platform/observability"
	"github.com/nikolayk812/storefront/internal/port"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseBody = 4 << 20
)

// ErrUnauthorized is returned when the API rejects the session with HTTP 401.
var ErrUnauthorized = errors.New("session expired, please sign in again")

// StatusError is a non-2xx answer of the API.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// Unwrap makes a 401 match ErrUnauthorized.
func (e *StatusError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL        *url.URL
	http           *http.Client
	storage        port.KeyValueStore
	logger         *zap.Logger
	onUnauthorized func(ctx context.Context)
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = observability.OrNop(logger)
	}
}

// WithUnauthorizedHook runs fn after the stored session was dropped because of a 401.
func WithUnauthorizedHook(fn func(ctx context.Context)) Option {
	return func(c *Client) {
		c.onUnauthorized = fn
	}
}

// New builds a client. The bearer token is read from storage on every call.
func New(cfg Config, storage port.KeyValueStore, opts ...Option) (*Client, error) {
	if storage == nil {
		return nil, fmt.Errorf("storage is nil")
	}

	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("url.Parse[%s]: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q is not absolute", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: timeout},
		storage: storage,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// do sends a JSON request and decodes the payload into out. When the body
// wraps its payload in a "data" member, only that member is decoded.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	start := time.Now()

	endpoint := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), bodyReader)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, ok, err := c.storage.Get(ctx, domain.SessionTokenKey)
	if err != nil {
		c.logger.Warn("read auth token", zap.Error(err))
	} else if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http.Do: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return fmt.Errorf("io.ReadAll: %w", err)
	}

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode == http.StatusUnauthorized {
		c.dropSession(ctx)

		// a rejected sign-in explains itself, an expired token usually does not
		msg, found := bodyMessage(raw)
		if !found {
			msg = ErrUnauthorized.Error()
		}
		return &StatusError{Status: resp.StatusCode, Message: msg}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Status: resp.StatusCode, Message: errorMessage(resp.StatusCode, raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	payload := raw
	if data := gjson.GetBytes(raw, "data"); data.Exists() {
		payload = []byte(data.Raw)
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("json.Unmarshal: %w", err)
	}

	return nil
}

func (c *Client) dropSession(ctx context.Context) {
	if err := c.storage.Delete(ctx, domain.SessionProfileKey, domain.SessionTokenKey); err != nil {
		c.logger.Error("clear session after 401", zap.Error(err))
	}

	if c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
}

var errorMessagePaths = []string{"message", "error.message", "error", "errors.0.message", "errors.0"}

// errorMessage digs a human readable message out of a loosely shaped error body.
func errorMessage(status int, body []byte) string {
	if msg, found := bodyMessage(body); found {
		return msg
	}
	return fmt.Sprintf("request failed with status %d", status)
}

func bodyMessage(body []byte) (string, bool) {
	if !gjson.ValidBytes(body) {
		return "", false
	}

	for _, path := range errorMessagePaths {
		if v := gjson.GetBytes(body, path); v.Type == gjson.String && strings.TrimSpace(v.Str) != "" {
			return strings.TrimSpace(v.Str), true
		}
	}
	return "", false
}

// Result is the uniform outcome of an endpoint call.
type Result[T any] struct {
	Success bool
	Data    T
	Error   string
}

func ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func fail[T any](err error) Result[T] {
	return Result[T]{Error: userMessage(err)}
}

func userMessage(err error) string {
	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		return statusErr.Message
	case errors.Is(err, ErrUnauthorized):
		return ErrUnauthorized.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return "the request timed out, please try again"
	case errors.Is(err, context.Canceled):
		return "the request was cancelled"
	}

	var validationErr validationError
	if errors.As(err, &validationErr) {
		return string(validationErr)
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return "the request timed out, please try again"
		}
		return "network error, please check your connection"
	}

	return "unexpected response from the server"
}

// validationError is a client-side rejection surfaced verbatim.
type validationError string

func (e validationError) Error() string {
	return string(e)
}

func required(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	slices.Sort(missing)
	return validationError(strings.Join(missing, ", ") + " required")
}
