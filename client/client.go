// Package client is the Go SDK for the NexARK platform API. It wraps the
// REST surface with bearer-token injection, a fixed request timeout and a
// single normalized error representation: transport errors, in-band error
// objects and an explicit success:false on HTTP 200 all come back as an
// *APIError, and any HTTP 401 clears the stored session and notifies
// subscribers before ErrUnauthorized is returned.
package client

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
	"sync"
	"time"
)

const (
	// DefaultBaseURL matches the API path the web client is served against.
	DefaultBaseURL = "http://localhost:8080/api/v1"

	requestTimeout = 10 * time.Second
)

// ErrUnauthorized is returned after any HTTP 401. By the time the caller
// sees it the stored token is already cleared and session listeners have
// been notified.
var ErrUnauthorized = errors.New("session is not authorized")

// APIError is the normalized failure shape for every endpoint.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// Client is the NexARK API client.
type Client struct {
	baseURL    string
	lang       string
	session    SessionStore
	httpClient *http.Client

	mu        sync.Mutex
	listeners []func()
}

// Config holds client configuration.
type Config struct {
	// BaseURL overrides DefaultBaseURL; typically set from NEXARK_API_URL.
	BaseURL string
	// Lang is injected as the `lang` query parameter on localized endpoints.
	Lang    string
	Session SessionStore
	// HTTPClient overrides the default client; the fixed request timeout
	// still applies per call.
	HTTPClient *http.Client
}

// New creates a NexARK API client.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	lang := cfg.Lang
	if lang == "" {
		lang = "en"
	}
	session := cfg.Session
	if session == nil {
		session = NewMemorySessionStore()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		lang:       lang,
		session:    session,
		httpClient: httpClient,
	}
}

// Lang returns the client's active language code.
func (c *Client) Lang() string {
	return c.lang
}

// Session exposes the underlying session store.
func (c *Client) Session() SessionStore {
	return c.session
}

// IsAuthenticated reports whether a token is stored. It is a synchronous
// local check; the token may still be rejected server-side.
func (c *Client) IsAuthenticated() bool {
	return c.session.Token() != ""
}

// OnUnauthorized subscribes to session-expiry events. Every HTTP 401 from
// any call site fires all subscribers exactly once, after the stored token
// has been cleared.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

func (c *Client) notifyUnauthorized() {
	c.mu.Lock()
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// envelope is the wire shape shared by every endpoint. Some endpoints omit
// `success` and signal failure only through `error`; both channels are
// treated as equivalent.
type envelope struct {
	Success *bool           `json:"success,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type requestOptions struct {
	method   string
	path     string
	query    url.Values
	body     interface{}
	withLang bool
}

// do performs one API call and normalizes the result into out / error.
func (c *Client) do(ctx context.Context, opts requestOptions, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	query := url.Values{}
	for key, values := range opts.query {
		query[key] = values
	}
	if opts.withLang {
		query.Set("lang", c.lang)
	}

	target := c.baseURL + opts.path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if opts.body != nil {
		raw, err := json.Marshal(opts.body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, opts.method, target, bodyReader)
	if err != nil {
		return err
	}
	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Code: "NETWORK_ERROR", Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Best-effort cleanup; the signal matters more than the file.
		_ = c.session.Clear()
		c.notifyUnauthorized()
		return ErrUnauthorized
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Code: "NETWORK_ERROR", Message: err.Error()}
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 400 {
			return &APIError{Code: "HTTP_ERROR", Message: resp.Status}
		}
		return &APIError{Code: "DECODE_ERROR", Message: err.Error()}
	}

	// Dual-channel failure normalization: an error object or an explicit
	// success:false mean failure even on HTTP 200.
	if env.Error != nil {
		return &APIError{Code: env.Error.Code, Message: env.Error.Message}
	}
	if env.Success != nil && !*env.Success {
		return &APIError{Code: "UNKNOWN_ERROR", Message: "request failed"}
	}
	if resp.StatusCode >= 400 {
		return &APIError{Code: "HTTP_ERROR", Message: resp.Status}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return &APIError{Code: "DECODE_ERROR", Message: err.Error()}
		}
	}
	return nil
}
