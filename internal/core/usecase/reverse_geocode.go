package usecase

import (
	"context"
	"sync"

	"github.com/mmcloughlin/geohash"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

// reverseCachePrecision groups nearby coordinates into one cache cell
// (precision 7 is roughly a city block).
const reverseCachePrecision = 7

// ReverseGeocodeUseCase derives a human place label for a coordinate.
// Upstream failures degrade to a nil name rather than an error. Results
// are memoized per geohash cell because map interactions hammer the same
// area repeatedly.
type ReverseGeocodeUseCase struct {
	geocoder port.GeocoderPort

	mu    sync.Mutex
	cache map[string]*string
}

func NewReverseGeocodeUseCase(geocoder port.GeocoderPort) *ReverseGeocodeUseCase {
	return &ReverseGeocodeUseCase{
		geocoder: geocoder,
		cache:    make(map[string]*string),
	}
}

func (uc *ReverseGeocodeUseCase) Execute(ctx context.Context, lat, lon float64) (*string, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	cell := geohash.EncodeWithPrecision(lat, lon, reverseCachePrecision)
	uc.mu.Lock()
	if name, ok := uc.cache[cell]; ok {
		uc.mu.Unlock()
		return name, nil
	}
	uc.mu.Unlock()

	geo, err := uc.geocoder.Reverse(ctx, lat, lon)
	if err != nil {
		logger.Error("Reverse geocoding failed, degrading to nil name", err, port.Fields{
			"use_case": "ReverseGeocode",
			"lat":      lat,
			"lon":      lon,
		})
		return nil, nil
	}

	var name *string
	if label := geo.Label(); label != "" {
		name = &label
	}

	uc.mu.Lock()
	uc.cache[cell] = name
	uc.mu.Unlock()
	return name, nil
}
