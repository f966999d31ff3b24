package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultEndpoint = "https://en.wikipedia.org/w/api.php"

// Client wraps the MediaWiki action API for article lookups.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// Option 用于构造 Client 时扩展可选配置。
type Option func(*options)

type options struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
	hasTimeout bool
}

// WithHTTPClient 允许复用已有的 http.Client。
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// WithTimeout 设置客户端的请求超时时间。
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		if timeout > 0 {
			o.timeout = timeout
			o.hasTimeout = true
		}
	}
}

// WithEndpoint overrides the API URL, mainly for tests.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

func NewClient(opts ...Option) *Client {
	options := options{}
	for _, opt := range opts {
		opt(&options)
	}

	endpoint := options.endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if options.hasTimeout {
		httpClient.Timeout = options.timeout
	} else if httpClient.Timeout == 0 {
		httpClient.Timeout = 5 * time.Second
	}

	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// Search returns up to sentences sentences of the article matching query.
func (c *Client) Search(ctx context.Context, query string, sentences int) (*Extract, error) {
	if sentences <= 0 {
		sentences = 3
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("titles", query)
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("exsentences", strconv.Itoa(sentences))
	params.Set("redirects", "1")

	page, err := c.queryExtract(ctx, params)
	if err != nil {
		return nil, err
	}
	if page == nil || page.Extract == "" {
		return nil, fmt.Errorf("wikipedia: no article found for %q", query)
	}
	return &Extract{Title: page.Title, Text: page.Extract, Source: "Wikipedia"}, nil
}

// Summary returns the intro section of the page with the given title.
func (c *Client) Summary(ctx context.Context, pageTitle string) (*Extract, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("titles", pageTitle)
	params.Set("prop", "extracts")
	params.Set("explaintext", "1")
	params.Set("exintro", "1")
	params.Set("redirects", "1")

	page, err := c.queryExtract(ctx, params)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, fmt.Errorf("wikipedia: no article found for %q", pageTitle)
	}
	return &Extract{Title: page.Title, Text: page.Extract, Source: "Wikipedia"}, nil
}

func (c *Client) queryExtract(ctx context.Context, params url.Values) (*pageResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia: unexpected status %d", resp.StatusCode)
	}

	var payload queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("wikipedia: decode response: %w", err)
	}

	// pages is keyed by page id; "-1" means no match
	for id, page := range payload.Query.Pages {
		if strings.HasPrefix(id, "-") {
			continue
		}
		p := page
		return &p, nil
	}
	return nil, nil
}
