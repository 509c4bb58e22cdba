package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearchPlaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("countrycodes"); got != "sv" {
			t.Errorf("countrycodes = %q; want sv", got)
		}
		if got := r.Header.Get("User-Agent"); got != "sivarcasas/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		w.Write([]byte(`[
			{"display_name": "San Salvador, El Salvador", "lat": "13.6989", "lon": "-89.1914"},
			{"display_name": "broken", "lat": "x", "lon": "y"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "sivarcasas/1.0")
	hits, err := client.SearchPlaces(context.Background(), "San Salvador", 8)
	if err != nil {
		t.Fatalf("SearchPlaces() error = %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("got %d hits; want 1 (unparseable coordinates dropped)", len(hits))
	}
	if hits[0].Lat != 13.6989 || hits[0].Lon != -89.1914 {
		t.Errorf("coordinates = %v, %v", hits[0].Lat, hits[0].Lon)
	}
}

func TestReverse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"display_name": "Colonia Escalón, San Salvador, El Salvador",
			"address": {"suburb": "Colonia Escalón", "city": "San Salvador", "state": "San Salvador"}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	result, err := client.Reverse(context.Background(), 13.7, -89.24)
	if err != nil {
		t.Fatalf("Reverse() error = %v", err)
	}
	if got := result.Label(); got != "Colonia Escalón, San Salvador" {
		t.Errorf("Label() = %q; want %q", got, "Colonia Escalón, San Salvador")
	}
}

func TestSearchPlacesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	if _, err := client.SearchPlaces(context.Background(), "San Miguel", 8); err == nil {
		t.Fatal("SearchPlaces() error = nil; want error on non-success status")
	}
}
