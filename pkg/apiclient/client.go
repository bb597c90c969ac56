// Package apiclient is a typed JSON client for the portfolio API. It
// normalizes non-2xx responses into *Error values carrying the HTTP status,
// the server's error message and any structured validation details.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Detail mirrors the server's field-level validation issue shape.
type Detail struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Error is returned for any non-2xx response.
type Error struct {
	Status  int
	Message string
	Details []Detail
}

func (e *Error) Error() string {
	return e.Message
}

// AsError returns err as *Error when it originated from an API response.
func AsError(err error) (*Error, bool) {
	apiErr, ok := err.(*Error)
	return apiErr, ok
}

type Options struct {
	HTTPClient *http.Client
	// Retry is the number of additional attempts made after a
	// transport-level failure. HTTP error statuses are never retried.
	Retry      int
	RetryDelay time.Duration
}

type Option func(*Options)

func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) { o.HTTPClient = c }
}

func WithRetry(count int, delay time.Duration) Option {
	return func(o *Options) {
		o.Retry = count
		o.RetryDelay = delay
	}
}

type Client struct {
	baseURL    string
	http       *http.Client
	retry      int
	retryDelay time.Duration
}

// New returns a client rooted at baseURL. The client keeps a cookie jar so
// the session cookie set by the login endpoint is replayed on subsequent
// requests.
func New(baseURL string, opts ...Option) *Client {
	options := &Options{
		RetryDelay: time.Second,
	}
	for _, opt := range opts {
		opt(options)
	}

	httpClient := options.HTTPClient
	if httpClient == nil {
		jar, _ := cookiejar.New(nil)
		httpClient = &http.Client{Jar: jar}
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       httpClient,
		retry:      options.Retry,
		retryDelay: options.RetryDelay,
	}
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return err
		}
	}

	resp, err := c.send(ctx, method, c.baseURL+path, payload, c.retry)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return handleResponse(resp, out)
}

func (c *Client) send(ctx context.Context, method, url string, payload []byte, retriesLeft int) (*http.Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if retriesLeft > 0 {
			select {
			case <-time.After(c.retryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			return c.send(ctx, method, url, payload, retriesLeft-1)
		}
		return nil, err
	}
	return resp, nil
}

func handleResponse(resp *http.Response, out any) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		}
		var envelope struct {
			Error   string   `json:"error"`
			Details []Detail `json:"details"`
		}
		if jsonErr := json.Unmarshal(raw, &envelope); jsonErr == nil {
			if envelope.Error != "" {
				apiErr.Message = envelope.Error
			}
			apiErr.Details = envelope.Details
		}
		return apiErr
	}

	// No-content or unparsable success bodies resolve without error.
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil
	}
	return nil
}
