package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/common"
	"github.com/Adiitya15/The-Article-Hub-Frontend/internal/logging"
	"github.com/google/uuid"
)

// HTTPClient talks to the REST backend under <base>/api.
type HTTPClient struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized UnauthorizedHandler
	log            logging.Logger
	newRequestID   func() string
}

type Option func(*HTTPClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) { c.tokens = ts }
}

func WithUnauthorizedHandler(h UnauthorizedHandler) Option {
	return func(c *HTTPClient) { c.onUnauthorized = h }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid backend url %q", baseURL)
	}
	c := &HTTPClient{
		baseURL:      u.String() + "/api",
		http:         &http.Client{},
		log:          logging.Nop(),
		newRequestID: uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// SetUnauthorizedHandler installs the global 401 hook after construction.
func (c *HTTPClient) SetUnauthorizedHandler(h UnauthorizedHandler) {
	c.onUnauthorized = h
}

func (c *HTTPClient) endpoint(path string, p *ListParams) string {
	s := c.baseURL + path
	if p == nil {
		return s
	}
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if len(q) == 0 {
		return s
	}
	return s + "?" + q.Encode()
}

func (c *HTTPClient) doJSON(ctx context.Context, method, target string, in any) ([]byte, error) {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, method, target, body, "application/json")
}

// do sends one request and returns the body of a 2xx response.
func (c *HTTPClient) do(ctx context.Context, method, target string, body io.Reader, contentType string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	reqID := c.newRequestID()
	req.Header.Set(common.RequestIDHeaderName, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(ctx); tok != "" {
			req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		mapped := mapError(ctx, err)
		c.log.Debug(ctx, "request failed", "method", method, "path", req.URL.Path, "request_id", reqID, "error", err)
		return nil, mapped
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, mapError(ctx, err)
	}
	c.log.Debug(ctx, "request done",
		"method", method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", reqID,
		"elapsed", time.Since(started),
	)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return data, nil
	}

	rerr := &ResponseError{StatusCode: resp.StatusCode, Message: decodeMessage(data)}
	if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized(ctx)
	}
	return nil, rerr
}
