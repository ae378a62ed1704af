// Package transport implements the HTTP request primitive every endpoint
// binding is built on: JSON encoding, bearer-token attachment, and the
// error-message extraction policy for non-2xx responses.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"recipeclient/pkg/auth"
	pkgerrors "recipeclient/pkg/errors"
)

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the request timeout of the underlying client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithThrottle paces requests through the given throttle. A nil throttle
// leaves requests unpaced.
func WithThrottle(t *Throttle) Option {
	return func(c *Client) { c.throttle = t }
}

// Client issues JSON requests against the recipe backend. The timeout of
// the embedded http.Client is the only timeout layer; callers do not add
// their own.
type Client struct {
	baseURL  string
	tokens   *auth.Keeper
	http     *http.Client
	throttle *Throttle
	log      *zap.Logger
}

// NewClient creates a transport bound to baseURL. The keeper supplies the
// bearer token for authenticated requests; requests go out without an
// Authorization header while it is empty.
func NewClient(baseURL string, tokens *auth.Keeper, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request performs an HTTP exchange. A non-nil body is JSON-encoded; a
// non-nil out receives the decoded JSON response. A 204 response is an
// empty success regardless of out.
func (c *Client) Request(ctx context.Context, method, path string, body, out any) error {
	if err := c.pace(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.NewTransportError("failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return pkgerrors.NewTransportError("failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachBearer(req)

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return pkgerrors.NewTransportError("network request failed", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return errorFromResponse(res)
	}
	if res.StatusCode == http.StatusNoContent || out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return pkgerrors.NewTransportError("failed to decode response", err)
	}
	return nil
}

// Download performs a bearer-authenticated GET and returns the raw body,
// bypassing JSON decoding. Used for the PDF endpoint.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	if err := c.pace(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, pkgerrors.NewTransportError("failed to build request", err)
	}
	c.attachBearer(req)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, pkgerrors.NewTransportError("network request failed", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, errorFromResponse(res)
	}
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, pkgerrors.NewTransportError("failed to read response", err)
	}
	return data, nil
}

func (c *Client) pace(ctx context.Context) error {
	if c.throttle == nil {
		return nil
	}
	if err := c.throttle.Wait(ctx); err != nil {
		return pkgerrors.NewTransportError("request cancelled while waiting for throttle", err)
	}
	return nil
}

func (c *Client) url(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

// attachBearer adds the Authorization header when a token is held and the
// caller has not set one already.
func (c *Client) attachBearer(req *http.Request) {
	if req.Header.Get("Authorization") != "" {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// errorFromResponse builds the error for a non-2xx response: the JSON
// "message" field when the body is JSON, else the raw body text, else a
// generic message carrying the status code.
func errorFromResponse(res *http.Response) error {
	raw, readErr := io.ReadAll(res.Body)
	if readErr != nil || len(bytes.TrimSpace(raw)) == 0 {
		return pkgerrors.NewAPIError(res.StatusCode, "")
	}

	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return pkgerrors.NewAPIError(res.StatusCode, envelope.Message)
	}
	return pkgerrors.NewAPIError(res.StatusCode, strings.TrimSpace(string(raw)))
}
