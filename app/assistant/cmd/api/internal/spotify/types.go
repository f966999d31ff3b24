package spotify

import "time"

// Token is a user OAuth token with its expiry.
type Token struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// TrackInfo is the simplified track payload handed back to the assistant.
type TrackInfo struct {
	Name    string   `json:"name"`
	Artists []string `json:"artists,omitempty"`
	URI     string   `json:"uri"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

type trackItem struct {
	Name    string `json:"name"`
	URI     string `json:"uri"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
}

type searchResponse struct {
	Tracks struct {
		Items []trackItem `json:"items"`
	} `json:"tracks"`
}

type currentlyPlayingResponse struct {
	Item *trackItem `json:"item"`
}
