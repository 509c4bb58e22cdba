package port

import (
	"context"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
)

// GeocoderPort is the boundary to the third-party geocoding provider.
type GeocoderPort interface {
	SearchPlaces(ctx context.Context, query string, limit int) ([]domain.PlaceHit, error)
	Reverse(ctx context.Context, lat, lon float64) (*domain.ReverseGeocode, error)
}

// LocationsStorePort searches the residential-areas dataset (colonias
// and neighborhoods imported from the location pipeline).
type LocationsStorePort interface {
	SearchNeighborhoods(ctx context.Context, query string, limit int) ([]domain.Neighborhood, error)
}
