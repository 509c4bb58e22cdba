package usecase

import (
	"context"
	"strings"

	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/constants"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/contextkeys"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/domain"
	"github.com/chivocasa42-sys/sivarcasas-sub001/internal/core/port"
)

const neighborhoodSearchLimit = 12

// SearchNeighborhoodsUseCase searches the residential-areas dataset.
// Same availability-first policy as place search.
type SearchNeighborhoodsUseCase struct {
	locations port.LocationsStorePort
}

func NewSearchNeighborhoodsUseCase(locations port.LocationsStorePort) *SearchNeighborhoodsUseCase {
	return &SearchNeighborhoodsUseCase{locations: locations}
}

func (uc *SearchNeighborhoodsUseCase) Execute(ctx context.Context, query string) ([]domain.Neighborhood, error) {
	logger := contextkeys.LoggerFromContext(ctx)

	query = strings.TrimSpace(query)
	if len([]rune(query)) < constants.MinNeighborhoodQueryLen {
		return []domain.Neighborhood{}, nil
	}

	hits, err := uc.locations.SearchNeighborhoods(ctx, query, neighborhoodSearchLimit)
	if err != nil {
		logger.Error("Neighborhood search failed, returning empty result", err, port.Fields{
			"use_case": "SearchNeighborhoods",
			"query":    query,
		})
		return []domain.Neighborhood{}, nil
	}
	return hits, nil
}
