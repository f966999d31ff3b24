package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultAccountsEndpoint = "https://accounts.spotify.com"
	defaultAPIEndpoint      = "https://api.spotify.com"

	authScope = "user-read-playback-state user-modify-playback-state playlist-modify-public"
)

var (
	// ErrNotConfigured indicates spotify credentials are absent from config.
	ErrNotConfigured = errors.New("spotify: client credentials not configured")
	// ErrNotAuthenticated indicates no user has completed the OAuth flow yet.
	ErrNotAuthenticated = errors.New("spotify: not authenticated, visit /spotify/login first")
	// ErrNoActiveDevice indicates the user has no active playback device.
	ErrNoActiveDevice = errors.New("spotify: no active playback device")
)

// Client wraps the Spotify accounts and player APIs. The user token obtained
// from the OAuth callback is held in memory; token access is concurrency-safe
// since tool invocations run on independent request goroutines.
type Client struct {
	clientID     string
	clientSecret string
	redirectURI  string

	accountsEndpoint string
	apiEndpoint      string
	httpClient       *http.Client

	mu    sync.Mutex
	token *Token
}

// Option 用于构造 Client 时扩展可选配置。
type Option func(*options)

type options struct {
	accountsEndpoint string
	apiEndpoint      string
	httpClient       *http.Client
	timeout          time.Duration
	hasTimeout       bool
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

// WithEndpoints overrides the accounts and API base URLs, mainly for tests.
func WithEndpoints(accounts, api string) Option {
	return func(o *options) {
		o.accountsEndpoint = accounts
		o.apiEndpoint = api
	}
}

func NewClient(clientID, clientSecret, redirectURI string, opts ...Option) *Client {
	options := options{}
	for _, opt := range opts {
		opt(&options)
	}

	accounts := options.accountsEndpoint
	if accounts == "" {
		accounts = defaultAccountsEndpoint
	}
	api := options.apiEndpoint
	if api == "" {
		api = defaultAPIEndpoint
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if options.hasTimeout {
		httpClient.Timeout = options.timeout
	} else if httpClient.Timeout == 0 {
		httpClient.Timeout = 10 * time.Second
	}

	return &Client{
		clientID:         clientID,
		clientSecret:     clientSecret,
		redirectURI:      redirectURI,
		accountsEndpoint: strings.TrimRight(accounts, "/"),
		apiEndpoint:      strings.TrimRight(api, "/"),
		httpClient:       httpClient,
	}
}

// Configured reports whether OAuth credentials were supplied.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != "" && c.redirectURI != ""
}

// AuthURL builds the authorization-code redirect URL.
func (c *Client) AuthURL() (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	query := url.Values{}
	query.Set("response_type", "code")
	query.Set("client_id", c.clientID)
	query.Set("scope", authScope)
	query.Set("redirect_uri", c.redirectURI)
	return c.accountsEndpoint + "/authorize?" + query.Encode(), nil
}

// ExchangeCode trades an authorization code for a user token and stores it
// for subsequent player calls.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", c.redirectURI)

	token, err := c.requestToken(ctx, form)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
	return token, nil
}

func (c *Client) requestToken(ctx context.Context, form url.Values) (*Token, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.accountsEndpoint+"/api/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("spotify: build token request: %w", err)
	}
	basic := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("spotify: token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("spotify: token request failed with status %d: %s", resp.StatusCode, body)
	}

	var payload tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("spotify: decode token response: %w", err)
	}

	return &Token{
		AccessToken:  payload.AccessToken,
		RefreshToken: payload.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second),
	}, nil
}

// accessToken returns a valid access token, refreshing it when expired.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()

	if token == nil {
		return "", ErrNotAuthenticated
	}
	if time.Until(token.ExpiresAt) > time.Minute {
		return token.AccessToken, nil
	}
	if token.RefreshToken == "" {
		return "", ErrNotAuthenticated
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", token.RefreshToken)

	refreshed, err := c.requestToken(ctx, form)
	if err != nil {
		return "", err
	}
	if refreshed.RefreshToken == "" {
		refreshed.RefreshToken = token.RefreshToken
	}

	c.mu.Lock()
	c.token = refreshed
	c.mu.Unlock()
	return refreshed.AccessToken, nil
}

// PlaySong searches for the first track matching song and starts playback
// on the user's active device.
func (c *Client) PlaySong(ctx context.Context, song string) (*TrackInfo, error) {
	query := url.Values{}
	query.Set("q", song)
	query.Set("type", "track")
	query.Set("limit", "1")

	var search searchResponse
	if err := c.api(ctx, http.MethodGet, "/v1/search?"+query.Encode(), nil, &search); err != nil {
		return nil, err
	}
	if len(search.Tracks.Items) == 0 {
		return nil, fmt.Errorf("spotify: no track found for %q", song)
	}

	track := search.Tracks.Items[0]
	body := map[string]any{"uris": []string{track.URI}}
	if err := c.api(ctx, http.MethodPut, "/v1/me/player/play", body, nil); err != nil {
		return nil, err
	}
	return trackInfo(track), nil
}

func (c *Client) Pause(ctx context.Context) error {
	return c.api(ctx, http.MethodPut, "/v1/me/player/pause", nil, nil)
}

func (c *Client) Resume(ctx context.Context) error {
	return c.api(ctx, http.MethodPut, "/v1/me/player/play", nil, nil)
}

func (c *Client) NextTrack(ctx context.Context) error {
	return c.api(ctx, http.MethodPost, "/v1/me/player/next", nil, nil)
}

func (c *Client) PreviousTrack(ctx context.Context) error {
	return c.api(ctx, http.MethodPost, "/v1/me/player/previous", nil, nil)
}

// CurrentTrack returns what is currently playing, or nil when nothing is.
func (c *Client) CurrentTrack(ctx context.Context) (*TrackInfo, error) {
	var playing currentlyPlayingResponse
	if err := c.api(ctx, http.MethodGet, "/v1/me/player/currently-playing", nil, &playing); err != nil {
		return nil, err
	}
	if playing.Item == nil {
		return nil, nil
	}
	return trackInfo(*playing.Item), nil
}

func (c *Client) api(ctx context.Context, method, path string, body any, out any) error {
	access, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("spotify: encode request: %w", err)
		}
		reader = strings.NewReader(string(data))
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiEndpoint+path, reader)
	if err != nil {
		return fmt.Errorf("spotify: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+access)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spotify: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNoActiveDevice
	case resp.StatusCode == http.StatusNoContent:
		return nil
	case resp.StatusCode >= 300:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("spotify: status %d: %s", resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("spotify: decode response: %w", err)
	}
	return nil
}

func trackInfo(t trackItem) *TrackInfo {
	info := &TrackInfo{Name: t.Name, URI: t.URI}
	for _, a := range t.Artists {
		info.Artists = append(info.Artists, a.Name)
	}
	return info
}
