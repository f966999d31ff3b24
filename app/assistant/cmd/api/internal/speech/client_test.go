package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTranscribe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transcribe" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.FormValue("language"); got != "en" {
			t.Errorf("language = %q", got)
		}
		if _, _, err := r.FormFile("file"); err != nil {
			t.Errorf("file part missing: %v", err)
		}
		w.Write([]byte(`{"text": "what is the weather in london", "language": "en", "duration": 2.4}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	got, err := c.Transcribe(context.Background(), "voice.wav", strings.NewReader("fake-audio"), "en")
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got.Text != "what is the weather in london" {
		t.Errorf("text = %q", got.Text)
	}
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	if _, err := NewClient("  "); err == nil {
		t.Fatal("expected error for empty endpoint")
	}
}

func TestNewClientAddsScheme(t *testing.T) {
	c, err := NewClient("localhost:9000")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.endpoint != "http://localhost:9000" {
		t.Errorf("endpoint = %q", c.endpoint)
	}
}
