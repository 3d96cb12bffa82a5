package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/orgdesk/orgdesk/pkg/id"
	"github.com/orgdesk/orgdesk/pkg/log"
)

// TokenProvider supplies the current access token. An empty string means no
// credential: the request goes out unauthenticated and protected endpoints
// reject it.
type TokenProvider interface {
	Token() string
}

// TokenFunc adapts a function to the TokenProvider interface.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// Client is the remote gateway for the organization-management service.
// It is the only component that talks to the network; every method maps to
// exactly one REST operation, takes a context, and returns a typed *Error
// on failure. No call is retried.
type Client struct {
	http   *resty.Client
	tokens TokenProvider
}

type Option func(*Client)

// WithTimeout sets a client-side timeout. Zero (the default) means a hung
// call hangs until the transport gives up.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.SetTimeout(d)
		}
	}
}

// WithHTTPClient swaps the underlying http.Client, used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = resty.NewWithClient(hc).SetBaseURL(c.http.BaseURL)
	}
}

// New creates a gateway client for the given base URL.
func New(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	c := &Client{
		http:   resty.New().SetBaseURL(baseURL),
		tokens: tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newRequest prepares a request with context, request id and, when a
// credential is available, bearer auth.
func (c *Client) newRequest(ctx context.Context) *resty.Request {
	req := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", id.RequestID()).
		SetHeader("Content-Type", "application/json")

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}
	return req
}

// apiMessage is the service's uniform body for confirmations and rejections.
type apiMessage struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (m apiMessage) text() string {
	if m.Message != "" {
		return m.Message
	}
	return m.Error
}

// netErr wraps a transport failure.
func netErr(op string, err error) *Error {
	log.Errorf("%s: request failed: %v", op, err)
	return &Error{Kind: KindNetwork, Op: op, Err: err}
}

// reject wraps a non-success response, classifying 401/403 as auth failures.
func reject(op string, resp *resty.Response) *Error {
	var body apiMessage
	_ = json.Unmarshal(resp.Body(), &body)

	kind := KindRejected
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		kind = KindAuth
	}

	log.Errorf("%s: rejected with status %d: %s", op, resp.StatusCode(), body.text())
	return &Error{
		Kind:       kind,
		Op:         op,
		StatusCode: resp.StatusCode(),
		Message:    body.text(),
	}
}

// confirm checks the response against the documented success status and
// returns the server's confirmation message. A command counts as successful
// only when the server says so, not merely when no transport error occurred.
func confirm(op string, resp *resty.Response, want int) (string, error) {
	if resp.StatusCode() != want {
		return "", reject(op, resp)
	}
	var body apiMessage
	_ = json.Unmarshal(resp.Body(), &body)
	return body.text(), nil
}

// decode checks for a 200 and unmarshals the response body into out.
func decode(op string, resp *resty.Response, out any) error {
	if resp.StatusCode() != http.StatusOK {
		return reject(op, resp)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &Error{Kind: KindRejected, Op: op, StatusCode: resp.StatusCode(), Message: "malformed response", Err: err}
	}
	return nil
}
