// Package supabase talks to a hosted Supabase project over its REST (PostgREST) and auth (GoTrue) APIs.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"eventsBoard/internal/config"
	"eventsBoard/internal/lib/httpclient"
	"eventsBoard/internal/storage"
	"fmt"
	"github.com/google/uuid"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	restPrefix = "/rest/v1/"
	authPrefix = "/auth/v1/"
)

// Observer receives the outcome of every backend call.
type Observer interface {
	ObserveBackend(op string, err error, d time.Duration)
}

type Client struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	retries  int
	backoff  time.Duration
	log      *slog.Logger
	observer Observer
	newID    func() string
	now      func() time.Time
}

type Option func(*Client)

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithAPIKey replaces the anon key, e.g. with the service role key for administrative tooling.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

func WithBackoff(d time.Duration) Option {
	return func(c *Client) { c.backoff = d }
}

func New(log *slog.Logger, cfg config.Supabase, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		apiKey:  strings.TrimSpace(cfg.AnonKey),
		client:  httpclient.New(cfg.Timeout),
		retries: cfg.Retries,
		backoff: 200 * time.Millisecond,
		log:     log,
		newID:   uuid.NewString,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ProjectRef extracts "<ref>" from https://<ref>.supabase.co.
func (c *Client) ProjectRef() string {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return ""
	}

	host := u.Hostname()
	if !strings.HasSuffix(host, ".supabase.co") {
		return ""
	}

	return strings.TrimSuffix(host, ".supabase.co")
}

// APIError is a non-2xx response from Supabase.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: http %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: http %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return storage.ErrForbidden
	}
	return nil
}

type apiErrorBody struct {
	Msg              string `json:"msg"`
	Message          string `json:"message"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (b apiErrorBody) text() string {
	for _, s := range []string{b.Msg, b.ErrorDescription, b.Message, b.Error} {
		if s != "" {
			return s
		}
	}
	return ""
}

type request struct {
	op      string
	method  string
	path    string
	query   url.Values
	token   string
	body    interface{}
	headers map[string]string
}

// do sends a single request and decodes a 2xx body into out when out is not nil.
func (c *Client) do(ctx context.Context, req request, out interface{}) error {
	start := time.Now()
	err := c.send(ctx, req, out)
	if c.observer != nil {
		c.observer.ObserveBackend(req.op, err, time.Since(start))
	}
	return err
}

// get retries idempotent reads; 4xx responses are not retried.
func (c *Client) get(ctx context.Context, req request, out interface{}) error {
	req.method = http.MethodGet

	return httpclient.Retry(ctx, c.retries, c.backoff, 2*time.Second, func() error {
		err := c.do(ctx, req, out)

		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return &httpclient.Permanent{Err: err}
		}

		return err
	})
}

func (c *Client) send(ctx context.Context, req request, out interface{}) error {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", req.op, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return fmt.Errorf("%s: %w", req.op, err)
	}

	bearer := req.token
	if bearer == "" {
		bearer = c.apiKey
	}

	httpReq.Header.Set("apikey", c.apiKey)
	httpReq.Header.Set("Authorization", "Bearer "+bearer)
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.headers {
		httpReq.Header.Set(k, v)
	}

	c.log.Debug("supabase request",
		slog.String("op", req.op),
		slog.String("method", req.method),
		slog.String("path", req.path),
	)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w", req.op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", req.op, err)
	}

	if resp.StatusCode/100 != 2 {
		var eb apiErrorBody
		_ = json.Unmarshal(raw, &eb)

		msg := eb.text()
		if msg == "" {
			msg = strings.TrimSpace(string(raw))
		}

		return &APIError{Op: req.op, StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", req.op, err)
	}

	return nil
}

// decodeOne accepts a JSON object, a single-element array or null. It reports whether a value was found.
func decodeOne(raw json.RawMessage, out interface{}) (bool, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}

	if trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return false, err
		}
		if len(items) == 0 {
			return false, nil
		}
		trimmed = items[0]
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return false, err
	}

	return true, nil
}

func eq(v string) string {
	return "eq." + v
}
