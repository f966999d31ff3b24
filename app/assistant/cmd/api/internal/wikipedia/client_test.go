package wikipedia

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("titles") != "Alan Turing" || q.Get("exsentences") != "2" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{
			"query": {
				"pages": {
					"1208": {"title": "Alan Turing", "extract": "Alan Turing was a mathematician. He worked at Bletchley Park."}
				}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(WithEndpoint(srv.URL))
	got, err := c.Search(context.Background(), "Alan Turing", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got.Title != "Alan Turing" || got.Source != "Wikipedia" {
		t.Errorf("got %+v", got)
	}
}

func TestSearchNoArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"query": {"pages": {"-1": {"title": "zzzz"}}}}`))
	}))
	defer srv.Close()

	c := NewClient(WithEndpoint(srv.URL))
	if _, err := c.Search(context.Background(), "zzzz", 3); err == nil {
		t.Fatal("expected error when no article matches")
	}
}

func TestSummaryUsesIntro(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("exintro") != "1" {
			t.Errorf("exintro not set, query = %v", q)
		}
		w.Write([]byte(`{
			"query": {
				"pages": {
					"42": {"title": "Go (programming language)", "extract": "Go is a statically typed language."}
				}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(WithEndpoint(srv.URL))
	got, err := c.Summary(context.Background(), "Go (programming language)")
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if got.Text != "Go is a statically typed language." {
		t.Errorf("got %+v", got)
	}
}
