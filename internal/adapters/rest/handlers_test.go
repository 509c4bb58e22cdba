package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

type nopLogger struct{}

func (nopLogger) Info(string, port.Fields)         {}
func (nopLogger) Warn(string, port.Fields)         {}
func (nopLogger) Error(string, error, port.Fields) {}
func (nopLogger) Debug(string, port.Fields)        {}
func (l nopLogger) WithFields(port.Fields) port.LoggerPort {
	return l
}

type fakeUseCases struct {
	listResult *domain.TagListingResult
	listErr    error

	topResult *domain.TopScoredResult
	topErr    error

	statsResult []domain.LocationStats
	statsErr    error

	places        []domain.PlaceHit
	neighborhoods []domain.Neighborhood
	reverseName   *string
}

func (f *fakeUseCases) Execute(ctx context.Context, tagToken string, query domain.ListingQuery) (*domain.TagListingResult, error) {
	return f.listResult, f.listErr
}

type fakeTopScored struct{ f *fakeUseCases }

func (t *fakeTopScored) Execute(ctx context.Context, slug string, listingType domain.ListingType, limit int) (*domain.TopScoredResult, error) {
	return t.f.topResult, t.f.topErr
}

type fakeStats struct{ f *fakeUseCases }

func (s *fakeStats) Execute(ctx context.Context, slug string) ([]domain.LocationStats, error) {
	return s.f.statsResult, s.f.statsErr
}

type fakePlaces struct{ f *fakeUseCases }

func (p *fakePlaces) Execute(ctx context.Context, query string) ([]domain.PlaceHit, error) {
	return p.f.places, nil
}

type fakeNeighborhoods struct{ f *fakeUseCases }

func (n *fakeNeighborhoods) Execute(ctx context.Context, query string) ([]domain.Neighborhood, error) {
	return n.f.neighborhoods, nil
}

type fakeReverse struct{ f *fakeUseCases }

func (r *fakeReverse) Execute(ctx context.Context, lat, lon float64) (*string, error) {
	return r.f.reverseName, nil
}

func newTestServer(f *fakeUseCases) http.Handler {
	handlers := NewCatalogHandlers(
		f,
		&fakeTopScored{f},
		&fakePlaces{f},
		&fakeNeighborhoods{f},
		&fakeReverse{f},
		&fakeStats{f},
	)
	server := NewServer("8080", "*", handlers, nopLogger{})
	return server.httpServer.Handler
}

func TestHandleListByTag(t *testing.T) {
	price := 95000.0
	score := 0.93
	f := &fakeUseCases{
		listResult: &domain.TagListingResult{
			Tag:  "Casas En Venta",
			Slug: "casas-en-venta",
			Listings: []*domain.Listing{
				{ExternalID: "123456789012345678", Title: "Casa", Price: &price, Score: &score, ListingType: domain.ListingTypeSale},
			},
			Page: domain.PageInfo{Total: 50, Limit: 24, Offset: 0, HasMore: true},
		},
	}

	rec := httptest.NewRecorder()
	newTestServer(f).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/listings/casas-en-venta", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	var resp TagListingsResponseDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Tag != "Casas En Venta" || !resp.Pagination.HasMore {
		t.Errorf("unexpected response: %+v", resp)
	}
	if resp.Listings[0].ID != "123456789012345678" {
		t.Errorf("listing id = %q", resp.Listings[0].ID)
	}
	if resp.Listings[0].Score == nil || *resp.Listings[0].Score != 0.93 {
		t.Errorf("listing score = %v; want 0.93", resp.Listings[0].Score)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation maps to 400", &domain.ValidationError{Field: "tag", Reason: "empty"}, http.StatusBadRequest},
		{"not found maps to 404", &domain.NotFoundError{Resource: "department", Key: "narnia"}, http.StatusNotFound},
		{"retrieval maps to 502", &domain.RetrievalError{Op: "FetchByTag", StatusCode: 500}, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeUseCases{listErr: tt.err}
			rec := httptest.NewRecorder()
			newTestServer(f).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/listings/casa", nil))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d; want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestRetrievalErrorHidesDetail(t *testing.T) {
	f := &fakeUseCases{listErr: &domain.RetrievalError{Op: "FetchByTag", StatusCode: 500}}
	rec := httptest.NewRecorder()
	newTestServer(f).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/listings/casa", nil))

	if strings.Contains(rec.Body.String(), "FetchByTag") {
		t.Errorf("response leaks internal detail: %s", rec.Body.String())
	}
}

func TestHandleReverseGeocode(t *testing.T) {
	name := "Colonia Escalón, San Salvador"
	f := &fakeUseCases{reverseName: &name}

	// "lng" is the documented parameter; "lon" stays as an alias for
	// older map clients.
	for _, target := range []string{
		"/api/v1/geocode/reverse?lat=13.7&lng=-89.2",
		"/api/v1/geocode/reverse?lat=13.7&lon=-89.2",
	} {
		rec := httptest.NewRecorder()
		newTestServer(f).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status = %d; want 200", target, rec.Code)
		}
		var resp ReverseGeocodeResponseDTO
		json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp.Name == nil || *resp.Name != name {
			t.Errorf("%s: name = %v; want %q", target, resp.Name, name)
		}
	}
}

func TestHandleReverseGeocodeNullName(t *testing.T) {
	f := &fakeUseCases{reverseName: nil}
	rec := httptest.NewRecorder()
	newTestServer(f).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/geocode/reverse?lat=0&lng=0", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != `{"name":null}` {
		t.Errorf("body = %s; want {\"name\":null}", body)
	}
}

func TestHandleReverseGeocodeMissingParams(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(&fakeUseCases{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/geocode/reverse?lat=13.7", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}

func TestHandleFilterSession(t *testing.T) {
	body := `{
		"basePath": "/san-salvador",
		"type": "all",
		"actions": [
			{"op": "setType", "value": "sale"},
			{"op": "toggleMunicipio", "value": "Santa Tecla"},
			{"op": "toggleMunicipio", "value": "Apopa"},
			{"op": "applyPrice", "min": 50000, "max": 1200000},
			{"op": "toggleCategory", "value": "Casa"}
		]
	}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/filters/chips", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newTestServer(&fakeUseCases{}).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200: %s", rec.Code, rec.Body.String())
	}
	var resp FilterSessionResponseDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	wantIDs := []string{"muni:Apopa", "muni:Santa Tecla", "price", "cat:Casa"}
	if len(resp.Chips) != len(wantIDs) {
		t.Fatalf("got %d chips; want %d: %+v", len(resp.Chips), len(wantIDs), resp.Chips)
	}
	for i, want := range wantIDs {
		if resp.Chips[i].ID != want {
			t.Errorf("chip[%d].ID = %q; want %q", i, resp.Chips[i].ID, want)
		}
	}
	if resp.PriceLabel != "$50K - $1.2M" {
		t.Errorf("PriceLabel = %q; want %q", resp.PriceLabel, "$50K - $1.2M")
	}
	if resp.VisiblePath != "/san-salvador/venta" {
		t.Errorf("VisiblePath = %q", resp.VisiblePath)
	}
	if !resp.HasActiveFilters || resp.ActiveCount != 4 {
		t.Errorf("ActiveCount = %d, HasActiveFilters = %v", resp.ActiveCount, resp.HasActiveFilters)
	}
}

func TestHandleFilterSessionRejectsUnknownOp(t *testing.T) {
	body := `{"basePath": "/la-libertad", "actions": [{"op": "explode"}]}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/filters/chips", strings.NewReader(body))
	newTestServer(&fakeUseCases{}).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", rec.Code)
	}
}
