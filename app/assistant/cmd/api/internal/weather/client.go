package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultEndpoint = "https://api.openweathermap.org/data/2.5"

// Client talks to the OpenWeatherMap REST API.
type Client struct {
	endpoint   string
	apiKey     string
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

// WithEndpoint overrides the API base URL, mainly for tests.
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// NewClient creates an OpenWeatherMap client. An empty apiKey is allowed:
// the service can start without weather configured, and calls will fail
// with ErrNotConfigured instead.
func NewClient(apiKey string, opts ...Option) *Client {
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

	return &Client{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// CurrentWeather fetches the current conditions for a city, metric units.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*CurrentWeather, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	var payload currentResponse
	if err := c.get(ctx, "/weather", query, &payload); err != nil {
		return nil, err
	}

	result := &CurrentWeather{
		City:        payload.Name,
		Temperature: payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		result.Description = payload.Weather[0].Description
	}
	return result, nil
}

// Forecast fetches up to days of forecast for a city. The API returns 8
// entries per day at 3-hour steps; only the first 8 entries are kept, which
// mirrors what the assistant can usefully read back to a user.
func (c *Client) Forecast(ctx context.Context, city string, days int) (*Forecast, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if days <= 0 {
		days = 5
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")
	query.Set("cnt", strconv.Itoa(days*8))

	var payload forecastResponse
	if err := c.get(ctx, "/forecast", query, &payload); err != nil {
		return nil, err
	}

	entries := payload.List
	if len(entries) > 8 {
		entries = entries[:8]
	}

	result := &Forecast{City: payload.City.Name}
	for _, e := range entries {
		entry := ForecastEntry{
			Time:        e.DtTxt,
			Temperature: e.Main.Temp,
			Humidity:    e.Main.Humidity,
		}
		if len(e.Weather) > 0 {
			entry.Description = e.Weather[0].Description
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+path+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("weather: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("weather: %s", apiErr.Message)
		}
		return fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("weather: decode response: %w", err)
	}
	return nil
}

// ErrNotConfigured indicates the OpenWeatherMap API key is absent.
var ErrNotConfigured = errors.New("weather: openweather api key not configured")
