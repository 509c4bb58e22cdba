package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

type fakeGeocoder struct {
	hits    []domain.PlaceHit
	reverse *domain.ReverseGeocode
	err     error
	calls   int
}

func (f *fakeGeocoder) SearchPlaces(_ context.Context, _ string, _ int) ([]domain.PlaceHit, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

func (f *fakeGeocoder) Reverse(_ context.Context, _, _ float64) (*domain.ReverseGeocode, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.reverse, nil
}

type fakeLocations struct {
	hits  []domain.Neighborhood
	err   error
	calls int
}

func (f *fakeLocations) SearchNeighborhoods(_ context.Context, _ string, _ int) ([]domain.Neighborhood, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.hits, nil
}

func TestSearchPlacesShortQueryShortCircuits(t *testing.T) {
	geo := &fakeGeocoder{hits: []domain.PlaceHit{{DisplayName: "San Salvador"}}}
	uc := NewSearchPlacesUseCase(geo)

	for _, q := range []string{"", "S", "Sa", "  Sa  "} {
		hits, err := uc.Execute(context.Background(), q)
		if err != nil || len(hits) != 0 {
			t.Errorf("Execute(%q) = %v, %v; want empty, nil", q, hits, err)
		}
	}
	if geo.calls != 0 {
		t.Errorf("upstream called %d times for short queries; want 0", geo.calls)
	}

	hits, err := uc.Execute(context.Background(), "San")
	if err != nil || len(hits) != 1 {
		t.Errorf("Execute(\"San\") = %v, %v; want one hit", hits, err)
	}
}

func TestSearchPlacesUpstreamFailureDegradesToEmpty(t *testing.T) {
	uc := NewSearchPlacesUseCase(&fakeGeocoder{err: errors.New("timeout")})

	hits, err := uc.Execute(context.Background(), "Santa Tecla")
	if err != nil {
		t.Fatalf("Execute() error = %v; availability-first endpoints must not error", err)
	}
	if len(hits) != 0 {
		t.Errorf("hits = %v; want empty", hits)
	}
}

func TestSearchNeighborhoodsShortQueryShortCircuits(t *testing.T) {
	locs := &fakeLocations{hits: []domain.Neighborhood{{Name: "Colonia Escalón"}}}
	uc := NewSearchNeighborhoodsUseCase(locs)

	if hits, _ := uc.Execute(context.Background(), "E"); len(hits) != 0 || locs.calls != 0 {
		t.Error("single-char query must short-circuit to empty without upstream call")
	}
	if hits, _ := uc.Execute(context.Background(), "Es"); len(hits) != 1 {
		t.Errorf("two-char query should search; got %v", hits)
	}
}

func TestReverseGeocodeDerivesLabel(t *testing.T) {
	geo := &fakeGeocoder{reverse: &domain.ReverseGeocode{
		Suburb: "Colonia Escalón", City: "San Salvador", State: "San Salvador",
	}}
	uc := NewReverseGeocodeUseCase(geo)

	name, err := uc.Execute(context.Background(), 13.70, -89.24)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if name == nil || *name != "Colonia Escalón, San Salvador" {
		t.Errorf("name = %v; want Colonia Escalón, San Salvador", name)
	}
}

func TestReverseGeocodeFailureReturnsNilName(t *testing.T) {
	uc := NewReverseGeocodeUseCase(&fakeGeocoder{err: errors.New("boom")})

	name, err := uc.Execute(context.Background(), 13.70, -89.24)
	if err != nil {
		t.Fatalf("Execute() error = %v; failures must degrade to nil name", err)
	}
	if name != nil {
		t.Errorf("name = %q; want nil", *name)
	}
}

func TestReverseGeocodeMemoizesPerCell(t *testing.T) {
	geo := &fakeGeocoder{reverse: &domain.ReverseGeocode{City: "Santa Tecla", State: "La Libertad"}}
	uc := NewReverseGeocodeUseCase(geo)

	// Two calls for effectively the same point hit upstream once.
	if _, err := uc.Execute(context.Background(), 13.6769, -89.2797); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Execute(context.Background(), 13.6769, -89.2797); err != nil {
		t.Fatal(err)
	}
	if geo.calls != 1 {
		t.Errorf("upstream called %d times; want 1", geo.calls)
	}
}
