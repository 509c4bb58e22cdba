package usecase

import (
	"context"
	"strings"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/constants"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

const placeSearchLimit = 8

// SearchPlacesUseCase runs free-text place search. Availability is
// favored over correctness here: an upstream failure degrades to an
// empty list, never an error to the caller.
type SearchPlacesUseCase struct {
	geocoder port.GeocoderPort
}

func NewSearchPlacesUseCase(geocoder port.GeocoderPort) *SearchPlacesUseCase {
	return &SearchPlacesUseCase{geocoder: geocoder}
}

func (uc *SearchPlacesUseCase) Execute(ctx context.Context, query string) ([]domain.PlaceHit, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	query = strings.TrimSpace(query)
	if len([]rune(query)) < constants.MinPlaceQueryLen {
		return []domain.PlaceHit{}, nil
	}

	hits, err := uc.geocoder.SearchPlaces(ctx, query, placeSearchLimit)
	if err != nil {
		logger.Error("Place search upstream failed, returning empty result", err, port.Fields{
			"use_case": "SearchPlaces",
			"query":    query,
		})
		return []domain.PlaceHit{}, nil
	}
	return hits, nil
}
