package client

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/guonaihong/gout"
	"github.com/guonaihong/gout/dataflow"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TokenSource supplies the current bearer token. An empty string means
// unauthenticated; the request is then sent without an Authorization header.
type TokenSource interface {
	Token() string
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: server returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// IsUnauthorized reports whether err is a 401 response.
func IsUnauthorized(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// Client talks to the ERP backend. All methods are safe for concurrent use.
type Client struct {
	baseURL string
	timeout time.Duration
	tokens  TokenSource

	// OnUnauthorized, when set, runs after any request answered with 401.
	// The session layer hooks it to force a logout.
	OnUnauthorized func()
}

// New creates a client for the backend at baseURL. tokens may be nil for a
// client that only calls the login and register endpoints.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		tokens:  tokens,
	}
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}

// headers builds the per-request header set. The login and register
// endpoints are anonymous; everything else carries the bearer token.
func (c *Client) headers(path string) gout.H {
	h := gout.H{"Content-Type": "application/json"}
	if c.tokens == nil {
		return h
	}
	if strings.HasPrefix(path, "/api/auth/login") || strings.HasPrefix(path, "/api/auth/register") {
		return h
	}
	if token := c.tokens.Token(); token != "" {
		h["Authorization"] = "Bearer " + token
	}
	return h
}

// do runs one request. body is JSON-encoded when non-nil; the response body
// is decoded into out when the status is 2xx and out is non-nil.
func (c *Client) do(method, path string, query gout.H, body, out interface{}) error {
	var (
		code int
		raw  []byte
	)
	g := gout.New()
	var df *dataflow.DataFlow
	switch method {
	case http.MethodGet:
		df = g.GET(c.url(path))
	case http.MethodPost:
		df = g.POST(c.url(path))
	case http.MethodPut:
		df = g.PUT(c.url(path))
	case http.MethodDelete:
		df = g.DELETE(c.url(path))
	default:
		return fmt.Errorf("api: unsupported method %s", method)
	}
	df = df.SetTimeout(c.timeout).SetHeader(c.headers(path))
	if query != nil {
		df = df.SetQuery(query)
	}
	if body != nil {
		df = df.SetJSON(body)
	}
	if err := df.BindBody(&raw).Code(&code).Do(); err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	if code >= http.StatusBadRequest {
		if code == http.StatusUnauthorized && c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		zap.L().Debug("api request failed",
			zap.String("method", method), zap.String("path", path), zap.Int("status", code))
		return &APIError{StatusCode: code, Message: errorMessage(raw)}
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api: decode %s %s: %w", method, path, err)
	}
	return nil
}

// errorMessage extracts a human-readable message from an error body. The
// backend answers either {"message": ...} or plain text.
func errorMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	msg := strings.TrimSpace(string(raw))
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

func (c *Client) get(path string, out interface{}) error {
	return c.do(http.MethodGet, path, nil, nil, out)
}

func (c *Client) post(path string, body, out interface{}) error {
	return c.do(http.MethodPost, path, nil, body, out)
}

func (c *Client) put(path string, body, out interface{}) error {
	return c.do(http.MethodPut, path, nil, body, out)
}

func (c *Client) delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil, nil)
}
