// Package httpclient is the console's client for the upstream REST backends.
// Each backend gets its own Client instance; cross-cutting behaviour such as
// credential injection is added through interceptors, the same way for every
// instance.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	NameAuth = "auth"
	NameCore = "core"
)

const maxErrorBody = 64 << 10

// Request describes one call before it is encoded. Body may be nil, a
// *FormData for multipart uploads, or any JSON-serializable value.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   any
}

type RequestInterceptor func(ctx context.Context, req *Request) error

type ResponseInterceptor func(ctx context.Context, resp *http.Response) error

type Config struct {
	Name      string
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
}

type Client struct {
	name          string
	baseURL       *url.URL
	http          *http.Client
	defaultHeader http.Header
	onRequest     []RequestInterceptor
	onResponse    []ResponseInterceptor
	logger        *zap.Logger
}

func New(cfg Config, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse %s base url: %w", cfg.Name, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("%s base url %q must be absolute", cfg.Name, cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.L()
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")

	return &Client{
		name:          cfg.Name,
		baseURL:       base,
		http:          &http.Client{Timeout: timeout, Transport: cfg.Transport},
		defaultHeader: header,
		logger:        logger.Named("httpclient." + cfg.Name),
	}, nil
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) UseRequest(i RequestInterceptor) {
	c.onRequest = append(c.onRequest, i)
}

func (c *Client) UseResponse(i ResponseInterceptor) {
	c.onResponse = append(c.onResponse, i)
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query}, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body}, out)
}

// Do runs the request interceptors, sends the request, runs the response
// interceptors and decodes a 2xx JSON body into out. It never retries.
func (c *Client) Do(ctx context.Context, req *Request, out any) error {
	if req.Header == nil {
		req.Header = http.Header{}
	}
	for k, v := range c.defaultHeader {
		if _, ok := req.Header[k]; !ok {
			req.Header[k] = append([]string(nil), v...)
		}
	}

	for _, intercept := range c.onRequest {
		if err := intercept(ctx, req); err != nil {
			return err
		}
	}

	httpReq, err := c.build(ctx, req)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err),
		)
		return &NetworkError{Method: req.Method, URL: httpReq.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("upstream response",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	for _, intercept := range c.onResponse {
		if err := intercept(ctx, resp); err != nil {
			return err
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{
			Method: req.Method,
			URL:    httpReq.URL.String(),
			Status: resp.StatusCode,
			Body:   body,
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("decode %s %s response: %w", req.Method, req.Path, err)
	}
	return nil
}

func (c *Client) build(ctx context.Context, req *Request) (*http.Request, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		u.RawQuery = req.Query.Encode()
	}

	var body io.Reader
	switch b := req.Body.(type) {
	case nil:
		req.Header.Del("Content-Type")
	case *FormData:
		reader, contentType, err := b.encode()
		if err != nil {
			return nil, fmt.Errorf("encode multipart body: %w", err)
		}
		body = reader
		req.Header.Set("Content-Type", contentType)
	case []byte:
		body = bytes.NewReader(b)
	default:
		payload, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode json body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	httpReq.Header = req.Header
	return httpReq, nil
}
