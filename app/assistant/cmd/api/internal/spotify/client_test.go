package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, api http.HandlerFunc) *Client {
	t.Helper()

	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/token" {
			t.Errorf("accounts path = %s", r.URL.Path)
		}
		if user, pass, ok := r.BasicAuth(); !ok || user != "id" || pass != "secret" {
			t.Errorf("missing or wrong basic auth")
		}
		w.Write([]byte(`{"access_token": "at-123", "refresh_token": "rt-456", "expires_in": 3600}`))
	}))
	t.Cleanup(accounts.Close)

	apiSrv := httptest.NewServer(api)
	t.Cleanup(apiSrv.Close)

	return NewClient("id", "secret", "http://localhost/callback",
		WithEndpoints(accounts.URL, apiSrv.URL))
}

func TestAuthURL(t *testing.T) {
	c := NewClient("id", "secret", "http://localhost/callback")
	got, err := c.AuthURL()
	if err != nil {
		t.Fatalf("AuthURL: %v", err)
	}
	if !strings.Contains(got, "response_type=code") || !strings.Contains(got, "client_id=id") {
		t.Errorf("AuthURL = %q", got)
	}
}

func TestAuthURLUnconfigured(t *testing.T) {
	c := NewClient("", "", "")
	if _, err := c.AuthURL(); err != ErrNotConfigured {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}

func TestPlayerRequiresAuthentication(t *testing.T) {
	c := NewClient("id", "secret", "http://localhost/callback")
	if err := c.Pause(context.Background()); err != ErrNotAuthenticated {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
}

func TestExchangeCodeThenPlaySong(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/v1/search":
			if got := r.Header.Get("Authorization"); got != "Bearer at-123" {
				t.Errorf("Authorization = %q", got)
			}
			w.Write([]byte(`{"tracks": {"items": [
				{"name": "Paranoid Android", "uri": "spotify:track:abc", "artists": [{"name": "Radiohead"}]}
			]}}`))
		case r.URL.Path == "/v1/me/player/play" && r.Method == http.MethodPut:
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected call %s %s", r.Method, r.URL.Path)
		}
	})

	if _, err := c.ExchangeCode(context.Background(), "auth-code"); err != nil {
		t.Fatalf("ExchangeCode: %v", err)
	}

	track, err := c.PlaySong(context.Background(), "Paranoid Android")
	if err != nil {
		t.Fatalf("PlaySong: %v", err)
	}
	if track.Name != "Paranoid Android" || track.Artists[0] != "Radiohead" {
		t.Errorf("track = %+v", track)
	}
}

func TestNoActiveDevice(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	if _, err := c.ExchangeCode(context.Background(), "auth-code"); err != nil {
		t.Fatalf("ExchangeCode: %v", err)
	}
	if err := c.NextTrack(context.Background()); err != ErrNoActiveDevice {
		t.Fatalf("err = %v, want ErrNoActiveDevice", err)
	}
}
