package met

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/metcollection/pkg/integrations"
)

// BaseURL is the root of the public collection API.
const BaseURL = "https://collectionapi.metmuseum.org/public/collection/v1"

// apiName prefixes every status error: "MET API error: 404".
const apiName = "MET API"

// Client provides access to the Metropolitan Museum of Art Collection API.
//
// Each method issues exactly one GET request and returns the decoded body.
// There is no caching, retrying or authentication.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// Option configures a [Client].
type Option func(*clientConfig)

type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(cfg *clientConfig) { cfg.httpClient = c }
}

// WithLogger logs each request and response status at debug level.
func WithLogger(l *log.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = l }
}

// WithBaseURL points the client at a mirror or test server instead of [BaseURL].
func WithBaseURL(u string) Option {
	return func(cfg *clientConfig) { cfg.baseURL = strings.TrimRight(u, "/") }
}

// NewClient creates a collection API client.
func NewClient(opts ...Option) *Client {
	cfg := clientConfig{baseURL: BaseURL}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Client{
		Client:  integrations.NewClient(apiName, cfg.httpClient, cfg.logger),
		baseURL: cfg.baseURL,
	}
}

// ListObjects returns the identifiers of every object in the collection.
//
// Returns:
//   - *[integrations.StatusError] for non-2xx responses
//   - a decoding error for malformed JSON
func (c *Client) ListObjects(ctx context.Context) (*ObjectSummaryList, error) {
	return get[ObjectSummaryList](ctx, c, "/objects")
}

// GetObject returns the record for one object. The id is not validated;
// unknown ids surface as a 404 [integrations.StatusError].
func (c *Client) GetObject(ctx context.Context, id int) (*ObjectDetails, error) {
	return get[ObjectDetails](ctx, c, "/objects/"+strconv.Itoa(id))
}

// ListDepartments returns all departments, unwrapped from the API's
// {"departments": [...]} envelope.
func (c *Client) ListDepartments(ctx context.Context) (DepartmentList, error) {
	resp, err := get[departmentsResponse](ctx, c, "/departments")
	if err != nil {
		return nil, err
	}
	return resp.Departments, nil
}

// Search returns the objects matching query. A nil opts sends only q.
// See [SearchOptions] for how filters are encoded.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) (*ObjectSummaryList, error) {
	return get[ObjectSummaryList](ctx, c, "/search?"+EncodeSearch(query, opts))
}

// get is the typed GET shared by every operation.
func get[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var v T
	if err := c.Get(ctx, c.baseURL+path, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
