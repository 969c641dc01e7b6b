package integrations

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/metcollection/pkg/observability"
)

// Client provides shared HTTP functionality for collection API clients.
// It issues exactly one request per call: no caching, no retries.
//
// A Client holds only immutable configuration and is safe for concurrent use.
type Client struct {
	http   *http.Client
	api    string
	logger *log.Logger
}

// NewClient creates a Client for the named API. The name appears in every
// [StatusError] produced by this client (e.g. "MET API error: 404").
// A nil httpClient selects [NewHTTPClient], a nil logger discards output.
func NewClient(api string, httpClient *http.Client, logger *log.Logger) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		http:   httpClient,
		api:    api,
		logger: logger,
	}
}

// API returns the name used in status errors.
func (c *Client) API() string { return c.api }

// Get performs an HTTP GET request and JSON-decodes the response into v.
//
// A status outside 200-299 returns a [*StatusError] without reading the body.
// The whole body must be one JSON value; trailing data is a syntax error.
// Transport and decoding errors are returned as produced by net/http and
// encoding/json.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	hooks := observability.HTTP()
	path := req.URL.Path
	hooks.OnRequest(ctx, c.api, req.Method, path)

	c.logger.Debug("request", "method", req.Method, "url", url)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, c.api, req.Method, path, err)
		return nil, err
	}
	hooks.OnResponse(ctx, c.api, req.Method, path, resp.StatusCode, time.Since(start))
	c.logger.Debug("response", "status", resp.StatusCode, "url", url)

	if err := c.checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) checkStatus(code int) error {
	if code >= 200 && code <= 299 {
		return nil
	}
	return &StatusError{API: c.api, StatusCode: code}
}
